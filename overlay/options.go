package overlay

import (
	"io/fs"
	"log/slog"

	"github.com/variantform/variantform/internal/options"
	"github.com/variantform/variantform/surface"
	"github.com/variantform/variantform/vferrors"
)

// Option is a function that configures a resolve operation.
type Option func(*resolveConfig) error

// resolveConfig holds configuration for a resolve operation.
type resolveConfig struct {
	// Project source (exactly one must be set)
	fsys       fs.FS
	projectDir *string

	manifest      *surface.Manifest
	variant       string
	surfaceFilter string
	logger        *slog.Logger
	maxDepth      int
}

// WithSource specifies the project content as an fs.FS rooted at the project root.
func WithSource(fsys fs.FS) Option {
	return func(cfg *resolveConfig) error {
		if fsys == nil {
			return &vferrors.ConfigError{Option: "WithSource", Message: "source cannot be nil"}
		}
		cfg.fsys = fsys
		return nil
	}
}

// WithProjectDir specifies a project directory on disk.
func WithProjectDir(dir string) Option {
	return func(cfg *resolveConfig) error {
		if dir == "" {
			return &vferrors.ConfigError{Option: "WithProjectDir", Message: "project directory cannot be empty"}
		}
		cfg.projectDir = &dir
		return nil
	}
}

// WithManifest supplies an already-parsed manifest instead of reading it from the project.
func WithManifest(m *surface.Manifest) Option {
	return func(cfg *resolveConfig) error {
		if m == nil {
			return &vferrors.ConfigError{Option: "WithManifest", Message: "manifest cannot be nil"}
		}
		cfg.manifest = m
		return nil
	}
}

// WithVariant selects the variant to resolve. Required.
func WithVariant(name string) Option {
	return func(cfg *resolveConfig) error {
		cfg.variant = name
		return nil
	}
}

// WithSurface restricts resolution to one expanded surface path.
func WithSurface(path string) Option {
	return func(cfg *resolveConfig) error {
		cfg.surfaceFilter = path
		return nil
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *resolveConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithMaxDepth bounds glob expansion to n directory levels.
func WithMaxDepth(n int) Option {
	return func(cfg *resolveConfig) error {
		if n < 1 {
			return &vferrors.ConfigError{Option: "WithMaxDepth", Value: n, Message: "depth must be at least 1"}
		}
		cfg.maxDepth = n
		return nil
	}
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts ...Option) (*resolveConfig, fs.FS, error) {
	cfg := &resolveConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, nil, err
		}
	}

	fsys, err := options.ProjectSource(cfg.fsys, cfg.projectDir)
	if err != nil {
		return nil, nil, err
	}
	if cfg.variant == "" {
		return nil, nil, &vferrors.ConfigError{Option: "WithVariant", Message: "variant is required"}
	}
	return cfg, fsys, nil
}

// ResolveWithOptions resolves a variant using functional options.
//
// Example:
//
//	result, err := overlay.ResolveWithOptions(
//	    overlay.WithProjectDir("."),
//	    overlay.WithVariant("acme"),
//	)
func ResolveWithOptions(opts ...Option) (*ResolveResult, error) {
	cfg, fsys, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	r := &Resolver{Logger: cfg.logger, MaxDepth: cfg.maxDepth}
	return r.Resolve(fsys, cfg.manifest, cfg.variant, cfg.surfaceFilter)
}
