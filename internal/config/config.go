// Package config loads and validates the lensgen.yaml file that drives
// lens generation: which packages and types to derive lenses for, and
// where the generated files go.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the config schema version this tool understands.
const CurrentVersion = "1"

// File represents the root of a lensgen.yaml generation config.
type File struct {
	// Version of the config schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Targets lists the packages to generate lenses for.
	Targets []Target `yaml:"targets"`
}

// Target defines lens generation for one package.
type Target struct {
	// Package is a standard Go package pattern (e.g., "./examples/contact").
	Package string `yaml:"package"`

	// Types restricts generation to the named structs. When empty, every
	// exported struct in the package gets lenses.
	Types []string `yaml:"types,omitempty"`

	// OutputDir is the directory generated files are written to.
	OutputDir string `yaml:"output_dir"`

	// OutputPackage is the package name of the generated files. When empty
	// (or equal to the analyzed package's name) lenses are generated into
	// the struct's own package and need no source import.
	OutputPackage string `yaml:"output_package,omitempty"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a config File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}
