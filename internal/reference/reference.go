// Package reference provides the baseline HTML document that every
// analysis compares against.
//
// The Bootstrap grid layout ships embedded in the binary so the tool works
// with zero setup. The reference is data, not behavior: core packages
// receive it as a plain string argument, and Load substitutes a different
// document (for custom assignments, or for tests) without touching any
// analysis logic.
package reference

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed layout.html
var layout string

// Default returns the embedded reference layout.
func Default() string {
	return layout
}

// Load reads a replacement reference document from path.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided reference path is intentional
	if err != nil {
		return "", fmt.Errorf("failed to load reference document: %w", err)
	}
	return string(data), nil
}
