package config

import (
	"errors"
	"fmt"
	"go/token"

	"lens-generator/internal/common"
)

// Validate checks a parsed config for problems and returns all of them
// joined, with enough context to locate each one in the file.
func (f *File) Validate() error {
	var errs []error

	if f.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported config version %q (want %q)", f.Version, CurrentVersion))
	}

	if common.IsEmpty(f.Targets) {
		errs = append(errs, errors.New("at least one target is required"))
	}

	for i, target := range f.Targets {
		errs = append(errs, target.validate(i)...)
	}

	return errors.Join(errs...)
}

func (t *Target) validate(index int) []error {
	var errs []error

	if t.Package == "" {
		errs = append(errs, fmt.Errorf("target[%d]: package is required", index))
	}

	if t.OutputDir == "" {
		errs = append(errs, fmt.Errorf("target[%d] (%s): output_dir is required", index, t.Package))
	}

	if t.OutputPackage != "" && !token.IsIdentifier(t.OutputPackage) {
		errs = append(errs, fmt.Errorf("target[%d] (%s): output_package %q is not a valid Go identifier",
			index, t.Package, t.OutputPackage))
	}

	seen := make(map[string]struct{}, len(t.Types))
	for _, typeName := range t.Types {
		if !token.IsIdentifier(typeName) {
			errs = append(errs, fmt.Errorf("target[%d] (%s): type %q is not a valid Go identifier",
				index, t.Package, typeName))
		}

		if _, ok := seen[typeName]; ok {
			errs = append(errs, fmt.Errorf("target[%d] (%s): type %q listed twice", index, t.Package, typeName))
		}
		seen[typeName] = struct{}{}
	}

	return errs
}
