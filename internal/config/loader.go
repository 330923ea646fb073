package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".htmlcheck"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .htmlcheck configuration file.
type File struct {
	// Reference is the path to a replacement reference document.
	// Relative paths are resolved against the config file's directory.
	Reference string `yaml:"reference,omitempty"`

	// MaxInputSize is the input size cap in bytes.
	MaxInputSize int64 `yaml:"maxInputSize,omitempty"`

	// Concurrency is the number of inputs analyzed in parallel.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified by
// the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	// Resolve the reference path relative to the config file location,
	// so a checked-in .htmlcheck works regardless of the working directory.
	if cf.Reference != "" && !filepath.IsAbs(cf.Reference) {
		cf.Reference = filepath.Join(filepath.Dir(path), cf.Reference)
	}

	return &cf, nil
}

// Apply copies the file's settings onto cfg, leaving flag-provided values
// alone: a file setting only takes effect where cfg still holds the
// corresponding zero-or-default value.
func (cf *File) Apply(cfg *Config) {
	if cf.Reference != "" && cfg.ReferenceFile == "" {
		cfg.ReferenceFile = cf.Reference
	}
	if cf.MaxInputSize > 0 && cfg.MaxInputSize == DefaultMaxInputSize {
		cfg.MaxInputSize = cf.MaxInputSize
	}
	if cf.Concurrency > 0 && cfg.Concurrency == DefaultConcurrency {
		cfg.Concurrency = cf.Concurrency
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .htmlcheck in the current directory
//  3. Look for .htmlcheck in the user's home directory
//  4. Look for .htmlcheck in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), DefaultConfigFile))

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
