// Package severity provides severity level constants for validation issues.
//
// The validator package re-exports both levels:
//   - SeverityError: defects that make a variant inconsistent with its project
//   - SeverityWarning: drift that resolves cleanly but should be addressed
package severity

import "fmt"

// Severity indicates the severity level of a validation issue.
type Severity int

const (
	// SeverityError indicates a defect: an extraneous file, an unparsable
	// override, or an override of the wrong shape.
	SeverityError Severity = iota

	// SeverityWarning indicates drift that does not prevent resolution, such as
	// a stale key or an empty replace override.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity as its string form.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes "error" or "warning".
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return fmt.Errorf("severity: unknown level %q", text)
	}
	return nil
}
