// Package vferrors provides structured error types for the variantform library.
//
// Import path: github.com/variantform/variantform/vferrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish a malformed manifest from a traversal attempt or
// a missing base file without matching on message text.
//
// # Error Types
//
//   - [ManifestError]: .variantform.yaml is absent or has the wrong shape
//   - [SurfaceError]: a single surface entry is invalid
//   - [NameError]: a variant name is not allowed
//   - [PathError]: a surface path or glob could escape the project root
//   - [BaseMissingError]: a declared surface has no base file
//   - [ShapeError]: a merge operand is not an object/mapping
//   - [VariantNotFoundError]: the variant directory does not exist
//   - [ParseError]: JSON/YAML content could not be parsed
//   - [ResourceLimitError]: a nesting or depth limit was exceeded
//   - [ConfigError]: invalid options passed to a package entry point
//
// # Sentinel Errors
//
// Each type matches one or more sentinels with errors.Is():
//
//   - [ErrManifestMissing], [ErrManifestMalformed]: [ManifestError]
//   - [ErrInvalidSurface]: [SurfaceError] (which also unwraps to [ErrUnsafePath]
//     when the entry's path was rejected)
//   - [ErrInvalidName]: [NameError]
//   - [ErrUnsafePath]: [PathError]
//   - [ErrBaseMissing]: [BaseMissingError]
//   - [ErrOverrideNotObject], [ErrNotAMapping]: [ShapeError]
//   - [ErrVariantNotFound]: [VariantNotFoundError]
//   - [ErrParse]: [ParseError]
//   - [ErrResourceLimit]: [ResourceLimitError]
//   - [ErrConfig]: [ConfigError]
//
// # Usage
//
//	results, err := project.Resolve("acme", "")
//	if errors.Is(err, vferrors.ErrBaseMissing) {
//	    // a surface was declared but its base file was deleted
//	}
//
//	var pathErr *vferrors.PathError
//	if errors.As(err, &pathErr) {
//	    fmt.Println("rejected path:", pathErr.Path)
//	}
//
// Validation findings (stale keys, extraneous files, ...) are not errors; the
// validator package accumulates them as issues.
package vferrors
