// Package options provides shared utilities for option validation across packages.
package options

import (
	"io/fs"

	"github.com/variantform/variantform/source"
	"github.com/variantform/variantform/vferrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the error message when no source is specified.
// multiSourceMsg is the error message when multiple sources are specified.
// Returns a *vferrors.ConfigError if zero or more than one input source is specified.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &vferrors.ConfigError{Option: "source", Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &vferrors.ConfigError{Option: "source", Message: multiSourceMsg}
	}

	return nil
}

// ProjectSource returns the project filesystem selected by a WithSource or
// WithProjectDir option pair. Exactly one of fsys and dir must be set.
func ProjectSource(fsys fs.FS, dir *string) (fs.FS, error) {
	if err := ValidateSingleInputSource(
		"must specify a project source (use WithSource or WithProjectDir)",
		"must specify exactly one project source",
		fsys != nil, dir != nil,
	); err != nil {
		return nil, err
	}
	if fsys != nil {
		return fsys, nil
	}
	return source.Dir(*dir), nil
}
