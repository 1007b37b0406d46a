package variantform

import (
	"io/fs"
	"log/slog"

	"github.com/variantform/variantform/inspector"
	"github.com/variantform/variantform/internal/layout"
	"github.com/variantform/variantform/overlay"
	"github.com/variantform/variantform/pathspec"
	"github.com/variantform/variantform/source"
	"github.com/variantform/variantform/surface"
	"github.com/variantform/variantform/validator"
	"github.com/variantform/variantform/vferrors"
)

// Project gives collaborators the operations of one variantform project.
// It is safe for concurrent use; every call works on a fresh read of the
// content source.
type Project struct {
	fsys         fs.FS
	logger       *slog.Logger
	maxDepth     int
	staleKeyMode validator.StaleKeyMode
	patches      bool
}

// ProjectOption configures a Project.
type ProjectOption func(*Project) error

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) ProjectOption {
	return func(p *Project) error {
		p.logger = logger
		return nil
	}
}

// WithMaxDepth bounds glob expansion to n directory levels.
func WithMaxDepth(n int) ProjectOption {
	return func(p *Project) error {
		if n < 1 {
			return &vferrors.ConfigError{Option: "WithMaxDepth", Value: n, Message: "depth must be at least 1"}
		}
		p.maxDepth = n
		return nil
	}
}

// WithStaleKeyMode selects how Validate detects stale keys.
func WithStaleKeyMode(mode validator.StaleKeyMode) ProjectOption {
	return func(p *Project) error {
		if mode != validator.StaleKeysRecursive && mode != validator.StaleKeysTopLevel {
			return &vferrors.ConfigError{Option: "WithStaleKeyMode", Value: int(mode), Message: "unknown stale key mode"}
		}
		p.staleKeyMode = mode
		return nil
	}
}

// WithDiffPatches makes Diff include base-to-resolved patches.
func WithDiffPatches(enabled bool) ProjectOption {
	return func(p *Project) error {
		p.patches = enabled
		return nil
	}
}

// Open returns a Project reading content from fsys, which must be rooted at
// the project root. The manifest is not read until an operation needs it.
func Open(fsys fs.FS, opts ...ProjectOption) (*Project, error) {
	if fsys == nil {
		return nil, &vferrors.ConfigError{Option: "source", Message: "source cannot be nil"}
	}
	p := &Project{fsys: fsys, staleKeyMode: validator.StaleKeysRecursive}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// OpenDir opens the project rooted at dir on disk. Reads cannot escape dir,
// even through symlinks.
func OpenDir(dir string, opts ...ProjectOption) (*Project, error) {
	if dir == "" {
		return nil, &vferrors.ConfigError{Option: "dir", Message: "project directory cannot be empty"}
	}
	return Open(source.Dir(dir), opts...)
}

// FS returns the project's content source.
func (p *Project) FS() fs.FS {
	return p.fsys
}

// Manifest loads and validates the project manifest.
func (p *Project) Manifest() (*surface.Manifest, error) {
	return surface.LoadManifest(p.fsys)
}

// ExpandSurfaces returns the declared surfaces with glob patterns expanded
// against the current base tree.
func (p *Project) ExpandSurfaces() (surface.Set, error) {
	m, err := p.Manifest()
	if err != nil {
		return nil, err
	}
	return surface.ExpandWithOptions(p.fsys, m.Surfaces, surface.ExpandOptions{
		MaxDepth: p.maxDepth,
		Logger:   p.logger,
	})
}

// Variants returns the names of the project's variants, sorted.
func (p *Project) Variants() ([]string, error) {
	return layout.Variants(p.fsys, p.logger)
}

// Resolve returns the effective content of variant's surfaces, or of the one
// surface whose expanded path equals surfaceFilter when it is non-empty.
func (p *Project) Resolve(variant, surfaceFilter string) (*overlay.ResolveResult, error) {
	r := &overlay.Resolver{Logger: p.logger, MaxDepth: p.maxDepth}
	return r.Resolve(p.fsys, nil, variant, surfaceFilter)
}

// Diff lists the surfaces variant overrides and the keys each override sets.
func (p *Project) Diff(variant string) (*inspector.DiffResult, error) {
	ins := &inspector.Inspector{Logger: p.logger, MaxDepth: p.maxDepth, IncludePatch: p.patches}
	return ins.Diff(p.fsys, nil, variant)
}

// Status partitions each variant's files into overrides and violations.
func (p *Project) Status() ([]inspector.VariantStatus, error) {
	ins := &inspector.Inspector{Logger: p.logger, MaxDepth: p.maxDepth}
	return ins.Status(p.fsys, nil)
}

// Validate checks every variant for consistency with the manifest and the
// current base files.
func (p *Project) Validate() (*validator.ValidationResult, error) {
	v := &validator.Validator{StaleKeyMode: p.staleKeyMode, Logger: p.logger}
	return v.Validate(p.fsys, nil)
}

// Preview resolves override against the current base content of surfacePath
// without writing anything, and checks it as validation would. surfacePath
// must match a declared surface. A nil override previews the base content.
// variant only labels the returned issues and may be empty.
//
// An override that validation reports an error for is not resolved; the
// returned Preview then has a nil Result.
func (p *Project) Preview(variant, surfacePath string, override []byte) (*Preview, error) {
	if variant != "" {
		if err := pathspec.ValidateVariantName(variant); err != nil {
			return nil, err
		}
	}
	if err := pathspec.ValidateSurfacePath(surfacePath); err != nil {
		return nil, err
	}
	m, err := p.Manifest()
	if err != nil {
		return nil, err
	}
	s, ok := m.Surfaces.Match(surfacePath)
	if !ok {
		return nil, &vferrors.ConfigError{Option: "surface", Value: surfacePath, Message: "path does not match any declared surface"}
	}
	s.Path = surfacePath

	base, found, err := source.ReadOptional(p.fsys, surfacePath)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &vferrors.BaseMissingError{Path: surfacePath}
	}

	preview := &Preview{Issues: []validator.Issue{}}
	if override != nil {
		v := &validator.Validator{StaleKeyMode: p.staleKeyMode, Logger: p.logger}
		checkBase := base
		if s.Strategy != surface.StrategyMerge {
			checkBase = nil
		}
		preview.Issues = append(preview.Issues, v.CheckOverride(variant, s, checkBase, override)...)
		for _, issue := range preview.Issues {
			if issue.Severity == validator.SeverityError {
				return preview, nil
			}
		}
	}

	result, err := overlay.Preview(s, base, override)
	if err != nil {
		return nil, err
	}
	preview.Result = &result
	return preview, nil
}

// Preview is the outcome of [Project.Preview].
type Preview struct {
	// Result is the resolved surface, or nil when the override has errors.
	Result *overlay.SurfaceResult `json:"result,omitempty"`
	// Issues lists what validation would report for the override.
	Issues []validator.Issue `json:"issues"`
}
