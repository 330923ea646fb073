// Package config provides configuration management for htmlcheck.
//
// Configuration comes from three layers, strongest first: CLI flags, a
// YAML configuration file (.htmlcheck), and package defaults. The file is
// discovered in the current directory, the home directory, and the XDG
// config directory, in that order. The Config struct is populated once in
// the CLI layer and passed through the application by value reference;
// there is no global configuration state.
package config
