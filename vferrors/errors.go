package vferrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrManifestMissing indicates .variantform.yaml does not exist.
	ErrManifestMissing = errors.New("manifest missing")

	// ErrManifestMalformed indicates the manifest is not a mapping with a surfaces sequence.
	ErrManifestMalformed = errors.New("manifest malformed")

	// ErrInvalidSurface indicates a surface entry failed validation.
	ErrInvalidSurface = errors.New("invalid surface")

	// ErrInvalidName indicates a variant name was rejected.
	ErrInvalidName = errors.New("invalid variant name")

	// ErrUnsafePath indicates a path or glob that could escape the project root.
	ErrUnsafePath = errors.New("unsafe path")

	// ErrBaseMissing indicates a declared surface has no base file.
	ErrBaseMissing = errors.New("base file missing")

	// ErrOverrideNotObject indicates a JSON merge override whose top level is not an object.
	ErrOverrideNotObject = errors.New("override is not an object")

	// ErrNotAMapping indicates a YAML merge operand whose top level is not a mapping.
	ErrNotAMapping = errors.New("not a mapping")

	// ErrVariantNotFound indicates the variant directory does not exist.
	ErrVariantNotFound = errors.New("variant not found")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// ManifestError represents a missing or structurally invalid .variantform.yaml.
type ManifestError struct {
	// Path is the manifest location, usually ".variantform.yaml"
	Path string
	// Missing is true when the manifest file does not exist
	Missing bool
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ManifestError) Error() string {
	msg := "manifest malformed"
	if e.Missing {
		msg = "manifest missing"
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ManifestError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrManifestMissing when Missing is set and ErrManifestMalformed otherwise.
func (e *ManifestError) Is(target error) bool {
	if e.Missing {
		return target == ErrManifestMissing
	}
	return target == ErrManifestMalformed
}

// SurfaceError represents an invalid entry in the manifest's surfaces list.
type SurfaceError struct {
	// Index is the zero-based position of the entry in the surfaces list
	Index int
	// Path is the entry's path, when it was readable
	Path string
	// Field names the offending field ("path", "format", "strategy"), if any
	Field string
	// Message describes the violation
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SurfaceError) Error() string {
	msg := fmt.Sprintf("invalid surface at index %d", e.Index)
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SurfaceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SurfaceError) Is(target error) bool {
	return target == ErrInvalidSurface
}

// NameError represents a rejected variant name.
type NameError struct {
	// Name is the rejected name
	Name string
	// Message describes the rule that was violated
	Message string
}

// Error returns a human-readable error message.
func (e *NameError) Error() string {
	msg := fmt.Sprintf("invalid variant name %q", e.Name)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *NameError) Is(target error) bool {
	return target == ErrInvalidName
}

// PathError represents a surface path or glob pattern that was rejected as unsafe.
type PathError struct {
	// Path is the rejected path or pattern
	Path string
	// IsGlob is true when Path was validated as a glob pattern
	IsGlob bool
	// Message describes the violation
	Message string
}

// Error returns a human-readable error message.
func (e *PathError) Error() string {
	kind := "path"
	if e.IsGlob {
		kind = "glob pattern"
	}
	msg := fmt.Sprintf("unsafe %s %q", kind, e.Path)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PathError) Is(target error) bool {
	return target == ErrUnsafePath
}

// BaseMissingError represents a declared surface whose base file does not exist.
type BaseMissingError struct {
	// Path is the surface path that has no base file
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *BaseMissingError) Error() string {
	msg := "base file missing: " + e.Path
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *BaseMissingError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *BaseMissingError) Is(target error) bool {
	return target == ErrBaseMissing
}

// Operand values for ShapeError.
const (
	OperandBase     = "base"
	OperandOverride = "override"
)

// ShapeError represents a merge operand with the wrong top-level shape.
type ShapeError struct {
	// Path is the surface path, when known
	Path string
	// Format is "json" or "yaml"
	Format string
	// Operand is OperandBase or OperandOverride
	Operand string
	// Actual describes the value that was found (e.g., "array", "string")
	Actual string
}

// Error returns a human-readable error message.
func (e *ShapeError) Error() string {
	var msg string
	if e.Format == "json" {
		msg = "override must be a JSON object"
	} else {
		msg = e.Operand + " must be a YAML mapping"
	}
	if e.Actual != "" {
		msg += ", got " + e.Actual
	}
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	return msg
}

// Is reports whether target matches this error type.
// JSON shape errors match ErrOverrideNotObject; YAML shape errors match ErrNotAMapping.
func (e *ShapeError) Is(target error) bool {
	if e.Format == "json" {
		return target == ErrOverrideNotObject
	}
	return target == ErrNotAMapping
}

// VariantNotFoundError represents a variant with no directory under variants/.
type VariantNotFoundError struct {
	// Variant is the requested variant name
	Variant string
}

// Error returns a human-readable error message.
func (e *VariantNotFoundError) Error() string {
	return fmt.Sprintf("variant %q not found", e.Variant)
}

// Is reports whether target matches this error type.
func (e *VariantNotFoundError) Is(target error) bool {
	return target == ErrVariantNotFound
}

// ParseError represents a failure to parse JSON or YAML content.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Format is "json" or "yaml"
	Format string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg = e.Format + " " + msg
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "nesting_depth", "alias_depth", "scan_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
