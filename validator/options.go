package validator

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/variantform/variantform/internal/options"
	"github.com/variantform/variantform/surface"
	"github.com/variantform/variantform/vferrors"
)

// StaleKeyMode selects how stale override keys are detected.
type StaleKeyMode int

const (
	// StaleKeysRecursive compares nested keys as dot-separated paths.
	StaleKeysRecursive StaleKeyMode = iota
	// StaleKeysTopLevel compares top-level keys only.
	StaleKeysTopLevel
)

// String returns "recursive" or "top-level".
func (m StaleKeyMode) String() string {
	switch m {
	case StaleKeysRecursive:
		return "recursive"
	case StaleKeysTopLevel:
		return "top-level"
	default:
		return "unknown"
	}
}

// ParseStaleKeyMode parses the String form of a StaleKeyMode.
func ParseStaleKeyMode(s string) (StaleKeyMode, error) {
	switch s {
	case "recursive":
		return StaleKeysRecursive, nil
	case "top-level", "toplevel":
		return StaleKeysTopLevel, nil
	default:
		return 0, &vferrors.ConfigError{Option: "stale-keys", Value: s, Message: "expected recursive or top-level"}
	}
}

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	fsys       fs.FS
	projectDir *string

	manifest     *surface.Manifest
	staleKeyMode StaleKeyMode
	logger       *slog.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, fs.FS, error) {
	cfg := &validateConfig{
		staleKeyMode: StaleKeysRecursive,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, nil, err
		}
	}

	fsys, err := options.ProjectSource(cfg.fsys, cfg.projectDir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, fsys, nil
}

// WithSource specifies the project content as an fs.FS rooted at the project root
func WithSource(fsys fs.FS) Option {
	return func(cfg *validateConfig) error {
		if fsys == nil {
			return &vferrors.ConfigError{Option: "WithSource", Message: "source cannot be nil"}
		}
		cfg.fsys = fsys
		return nil
	}
}

// WithProjectDir specifies a project directory on disk
func WithProjectDir(dir string) Option {
	return func(cfg *validateConfig) error {
		if dir == "" {
			return &vferrors.ConfigError{Option: "WithProjectDir", Message: "project directory cannot be empty"}
		}
		cfg.projectDir = &dir
		return nil
	}
}

// WithManifest supplies an already-parsed manifest
func WithManifest(m *surface.Manifest) Option {
	return func(cfg *validateConfig) error {
		if m == nil {
			return &vferrors.ConfigError{Option: "WithManifest", Message: "manifest cannot be nil"}
		}
		cfg.manifest = m
		return nil
	}
}

// WithStaleKeyMode selects recursive or top-level stale key detection
// Default: StaleKeysRecursive
func WithStaleKeyMode(mode StaleKeyMode) Option {
	return func(cfg *validateConfig) error {
		if mode != StaleKeysRecursive && mode != StaleKeysTopLevel {
			return &vferrors.ConfigError{Option: "WithStaleKeyMode", Value: int(mode), Message: "unknown stale key mode"}
		}
		cfg.staleKeyMode = mode
		return nil
	}
}

// WithLogger sets the logger for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = logger
		return nil
	}
}

// ValidateWithOptions validates a project using functional options.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithProjectDir("."),
//	    validator.WithStaleKeyMode(validator.StaleKeysTopLevel),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, fsys, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := &Validator{
		StaleKeyMode: cfg.staleKeyMode,
		Logger:       cfg.logger,
	}
	return v.Validate(fsys, cfg.manifest)
}
