package validator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"

	"github.com/variantform/variantform/internal/issues"
	"github.com/variantform/variantform/internal/layout"
	"github.com/variantform/variantform/internal/severity"
	"github.com/variantform/variantform/mergepatch"
	"github.com/variantform/variantform/source"
	"github.com/variantform/variantform/surface"
	"github.com/variantform/variantform/vferrors"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a defect that makes a variant inconsistent
	SeverityError = severity.SeverityError
	// SeverityWarning indicates drift that still resolves
	SeverityWarning = severity.SeverityWarning
)

// Issue represents a single validation issue
type Issue = issues.Issue

// IssueKind classifies a validation issue
type IssueKind = issues.Kind

const (
	KindStaleKey       = issues.KindStaleKey
	KindParseError     = issues.KindParseError
	KindExtraneousFile = issues.KindExtraneousFile
	KindInvalidShape   = issues.KindInvalidShape
	KindEmptyFile      = issues.KindEmptyFile
)

// IssueKinds returns every issue kind in reporting order.
func IssueKinds() []IssueKind {
	return slices.Clone(issues.Kinds)
}

// ValidationResult contains the results of validating every variant of a project
type ValidationResult struct {
	// Valid is true only if no issue of any severity was found
	Valid bool `json:"valid" yaml:"valid"`
	// Issues lists every issue, ordered by variant, then file, then key
	Issues []Issue `json:"issues" yaml:"issues"`
	// ErrorCount is the number of error-severity issues
	ErrorCount int `json:"errorCount" yaml:"errorCount"`
	// WarningCount is the number of warning-severity issues
	WarningCount int `json:"warningCount" yaml:"warningCount"`
	// VariantCount is the number of variants checked
	VariantCount int `json:"variantCount" yaml:"variantCount"`
	// FileCount is the number of variant files checked
	FileCount int `json:"fileCount" yaml:"fileCount"`
}

// Errors returns the error-severity issues.
func (r *ValidationResult) Errors() []Issue {
	return r.bySeverity(SeverityError)
}

// Warnings returns the warning-severity issues.
func (r *ValidationResult) Warnings() []Issue {
	return r.bySeverity(SeverityWarning)
}

func (r *ValidationResult) bySeverity(s Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

func (r *ValidationResult) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
	switch issue.Severity {
	case SeverityError:
		r.ErrorCount++
	case SeverityWarning:
		r.WarningCount++
	}
}

// Validator checks variants for consistency with their project
type Validator struct {
	// StaleKeyMode selects how stale keys are detected. The zero value is
	// StaleKeysRecursive.
	StaleKeyMode StaleKeyMode
	// Logger receives debug records. Nil means slog.Default().
	Logger *slog.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{StaleKeyMode: StaleKeysRecursive}
}

func (v *Validator) logger() *slog.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return slog.Default()
}

// Validate checks every file of every variant in fsys. A nil manifest is
// loaded from fsys. A project without a variants directory is valid.
func (v *Validator) Validate(fsys fs.FS, manifest *surface.Manifest) (*ValidationResult, error) {
	if manifest == nil {
		m, err := surface.LoadManifest(fsys)
		if err != nil {
			return nil, err
		}
		manifest = m
	}

	variants, err := layout.Variants(fsys, v.Logger)
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}

	result := &ValidationResult{Issues: []Issue{}, VariantCount: len(variants)}
	for _, variant := range variants {
		files, err := layout.VariantFiles(fsys, variant, v.Logger)
		if err != nil {
			return nil, fmt.Errorf("validator: %w", err)
		}
		for _, file := range files {
			result.FileCount++
			s, ok := manifest.Surfaces.Match(file)
			if !ok {
				result.add(issues.New(KindExtraneousFile, variant, file,
					fmt.Sprintf("file %q does not match any declared surface", file)))
				continue
			}

			override, err := fs.ReadFile(fsys, layout.OverridePath(variant, file))
			if err != nil {
				return nil, fmt.Errorf("validator: read override %s: %w", file, err)
			}
			var base []byte
			if s.Strategy == surface.StrategyMerge {
				data, found, err := source.ReadOptional(fsys, file)
				if err != nil {
					return nil, fmt.Errorf("validator: read base %s: %w", file, err)
				}
				if found {
					base = data
				} else {
					v.logger().Debug("base missing, skipping stale keys", "variant", variant, "surface", file)
				}
			}

			s.Path = file
			for _, issue := range v.CheckOverride(variant, s, base, override) {
				result.add(issue)
			}
		}
	}

	result.Valid = len(result.Issues) == 0
	return result, nil
}

// CheckOverride validates a single override against its base content. base
// is only consulted for merge surfaces; nil means the base is absent. The
// returned issues carry s.Path as their surface.
func (v *Validator) CheckOverride(variant string, s surface.Surface, base, override []byte) []Issue {
	// Blank content is empty_file for every strategy and format, ahead of any
	// parsing, so a blank merge override never surfaces as parse_error.
	if len(bytes.TrimSpace(override)) == 0 {
		return []Issue{issues.New(KindEmptyFile, variant, s.Path, "override file is empty")}
	}
	if !s.Format.Structured() {
		return nil
	}

	parsed, err := parse(s.Format, override)
	if err != nil {
		issue := issues.New(KindParseError, variant, s.Path,
			fmt.Sprintf("cannot parse override as %s: %s", s.Format, parseMessage(err)))
		var pe *vferrors.ParseError
		if errors.As(err, &pe) {
			issue.Line, issue.Column = pe.Line, pe.Column
		}
		return []Issue{issue}
	}
	if s.Strategy != surface.StrategyMerge {
		return nil
	}

	if parsed.Kind() != mergepatch.KindObject {
		return []Issue{issues.New(KindInvalidShape, variant, s.Path,
			fmt.Sprintf("override must be an object for the merge strategy, got %s; use the replace strategy for non-object overrides", parsed.Kind()))}
	}

	if base == nil {
		return nil
	}
	baseValue, err := parse(s.Format, base)
	if err != nil || baseValue.Kind() != mergepatch.KindObject {
		v.logger().Debug("base not an object, skipping stale keys", "variant", variant, "surface", s.Path)
		return nil
	}

	var stale []string
	if v.StaleKeyMode == StaleKeysTopLevel {
		stale = mergepatch.MissingKeys(baseValue, parsed)
	} else {
		stale = mergepatch.MissingKeyPaths(baseValue, parsed)
	}
	out := make([]Issue, 0, len(stale))
	for _, key := range stale {
		issue := issues.New(KindStaleKey, variant, s.Path,
			fmt.Sprintf("override key %q does not exist in base %q", key, s.Path))
		issue.Key = key
		out = append(out, issue)
	}
	return out
}

func parse(format surface.Format, data []byte) (mergepatch.Value, error) {
	if format == surface.FormatYAML {
		return mergepatch.ParseYAML(data)
	}
	return mergepatch.ParseJSON(data)
}

// parseMessage drops the location prefix of a ParseError; the issue carries
// line and column separately.
func parseMessage(err error) string {
	var pe *vferrors.ParseError
	if !errors.As(err, &pe) {
		return err.Error()
	}
	switch {
	case pe.Message != "" && pe.Cause != nil:
		return pe.Message + ": " + pe.Cause.Error()
	case pe.Message != "":
		return pe.Message
	case pe.Cause != nil:
		return pe.Cause.Error()
	}
	return err.Error()
}
