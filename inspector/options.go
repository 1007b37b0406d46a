package inspector

import (
	"io/fs"
	"log/slog"

	"github.com/variantform/variantform/internal/options"
	"github.com/variantform/variantform/surface"
	"github.com/variantform/variantform/vferrors"
)

// Option is a function that configures an inspection.
type Option func(*inspectConfig) error

type inspectConfig struct {
	// Project source (exactly one must be set)
	fsys       fs.FS
	projectDir *string

	manifest     *surface.Manifest
	logger       *slog.Logger
	includePatch bool
	maxDepth     int
}

// WithSource specifies the project content as an fs.FS rooted at the project root.
func WithSource(fsys fs.FS) Option {
	return func(cfg *inspectConfig) error {
		if fsys == nil {
			return &vferrors.ConfigError{Option: "WithSource", Message: "source cannot be nil"}
		}
		cfg.fsys = fsys
		return nil
	}
}

// WithProjectDir specifies a project directory on disk.
func WithProjectDir(dir string) Option {
	return func(cfg *inspectConfig) error {
		if dir == "" {
			return &vferrors.ConfigError{Option: "WithProjectDir", Message: "project directory cannot be empty"}
		}
		cfg.projectDir = &dir
		return nil
	}
}

// WithManifest supplies an already-parsed manifest.
func WithManifest(m *surface.Manifest) Option {
	return func(cfg *inspectConfig) error {
		if m == nil {
			return &vferrors.ConfigError{Option: "WithManifest", Message: "manifest cannot be nil"}
		}
		cfg.manifest = m
		return nil
	}
}

// WithPatch enables patch text on diff entries.
func WithPatch(enabled bool) Option {
	return func(cfg *inspectConfig) error {
		cfg.includePatch = enabled
		return nil
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *inspectConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithMaxDepth bounds glob expansion to n directory levels.
func WithMaxDepth(n int) Option {
	return func(cfg *inspectConfig) error {
		if n < 1 {
			return &vferrors.ConfigError{Option: "WithMaxDepth", Value: n, Message: "depth must be at least 1"}
		}
		cfg.maxDepth = n
		return nil
	}
}

func applyOptions(opts ...Option) (*Inspector, *surface.Manifest, fs.FS, error) {
	cfg := &inspectConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, nil, nil, err
		}
	}
	fsys, err := options.ProjectSource(cfg.fsys, cfg.projectDir)
	if err != nil {
		return nil, nil, nil, err
	}
	ins := &Inspector{Logger: cfg.logger, IncludePatch: cfg.includePatch, MaxDepth: cfg.maxDepth}
	return ins, cfg.manifest, fsys, nil
}

// StatusWithOptions reports variant status using functional options.
func StatusWithOptions(opts ...Option) ([]VariantStatus, error) {
	ins, manifest, fsys, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return ins.Status(fsys, manifest)
}

// DiffWithOptions lists the surfaces variant overrides using functional options.
//
// Example:
//
//	result, err := inspector.DiffWithOptions("acme",
//	    inspector.WithProjectDir("."),
//	    inspector.WithPatch(true),
//	)
func DiffWithOptions(variant string, opts ...Option) (*DiffResult, error) {
	ins, manifest, fsys, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return ins.Diff(fsys, manifest, variant)
}
