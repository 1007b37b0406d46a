// Package issues provides the issue type accumulated by a validation run.
package issues

import (
	"fmt"

	"github.com/variantform/variantform/internal/severity"
)

// Kind classifies a validation issue.
type Kind string

const (
	// KindStaleKey marks an override key absent from the current base.
	KindStaleKey Kind = "stale_key"
	// KindParseError marks an override that cannot be parsed in its surface's format.
	KindParseError Kind = "parse_error"
	// KindExtraneousFile marks a variant file that matches no declared surface.
	KindExtraneousFile Kind = "extraneous_file"
	// KindInvalidShape marks a merge override that is not an object.
	KindInvalidShape Kind = "invalid_shape"
	// KindEmptyFile marks an override with no content.
	KindEmptyFile Kind = "empty_file"
)

// Kinds lists every issue kind.
var Kinds = []Kind{KindStaleKey, KindParseError, KindExtraneousFile, KindInvalidShape, KindEmptyFile}

// Severity returns the severity an issue of this kind is reported with.
func (k Kind) Severity() severity.Severity {
	switch k {
	case KindStaleKey, KindEmptyFile:
		return severity.SeverityWarning
	default:
		return severity.SeverityError
	}
}

// Issue represents a single problem found in a variant.
type Issue struct {
	// Kind classifies the issue
	Kind Kind `json:"kind" yaml:"kind"`
	// Variant is the variant the issue was found in
	Variant string `json:"variant" yaml:"variant"`
	// Surface is the file path relative to the variant directory
	Surface string `json:"surface,omitempty" yaml:"surface,omitempty"`
	// Key is the offending key for stale_key issues, dot-separated when nested
	Key string `json:"key,omitempty" yaml:"key,omitempty"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity is derived from Kind
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Line is the 1-based line number in the override file (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Column is the 1-based column number in the override file (0 if unknown)
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
}

// New creates an issue with the severity of its kind.
func New(kind Kind, variant, surface, message string) Issue {
	return Issue{
		Kind:     kind,
		Variant:  variant,
		Surface:  surface,
		Message:  message,
		Severity: kind.Severity(),
	}
}

// String returns a formatted string representation of the issue.
// Uses "✗" for Error severity and "⚠" for Warning severity.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%s %s [%s]: %s", symbol, i.Location(), i.Kind, i.Message)
}

// Location returns "variant/surface:line:column", dropping the parts that
// are unknown.
func (i Issue) Location() string {
	loc := i.Variant
	if i.Surface != "" {
		loc += "/" + i.Surface
	}
	if i.Line > 0 {
		loc += fmt.Sprintf(":%d:%d", i.Line, i.Column)
	}
	return loc
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}
