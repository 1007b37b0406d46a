package overlay

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/variantform/variantform/internal/layout"
	"github.com/variantform/variantform/mergepatch"
	"github.com/variantform/variantform/pathspec"
	"github.com/variantform/variantform/source"
	"github.com/variantform/variantform/surface"
	"github.com/variantform/variantform/vferrors"
)

// Resolver produces the effective content of a variant's surfaces.
type Resolver struct {
	// Logger receives debug records. Nil means slog.Default().
	Logger *slog.Logger

	// MaxDepth bounds glob expansion. Zero means the default of ten levels.
	MaxDepth int
}

// NewResolver creates a new Resolver with default settings.
func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Resolve resolves every surface of variant, or only the surface whose
// expanded path equals surfaceFilter when it is non-empty. A filter that
// matches nothing yields an empty result.
//
// A nil manifest is loaded from fsys. Structural problems are returned as
// errors: an invalid name, a missing variant directory, a missing base file,
// or a merge that cannot be performed.
func (r *Resolver) Resolve(fsys fs.FS, manifest *surface.Manifest, variant, surfaceFilter string) (*ResolveResult, error) {
	if err := pathspec.ValidateVariantName(variant); err != nil {
		return nil, err
	}
	if surfaceFilter != "" {
		if err := pathspec.ValidateSurfacePath(surfaceFilter); err != nil {
			return nil, err
		}
	}
	if manifest == nil {
		m, err := surface.LoadManifest(fsys)
		if err != nil {
			return nil, err
		}
		manifest = m
	}

	exists, err := layout.HasVariant(fsys, variant)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	if !exists {
		return nil, &vferrors.VariantNotFoundError{Variant: variant}
	}

	surfaces, err := surface.ExpandWithOptions(fsys, manifest.Surfaces, surface.ExpandOptions{
		MaxDepth: r.MaxDepth,
		Logger:   r.Logger,
	})
	if err != nil {
		return nil, err
	}

	result := &ResolveResult{Variant: variant, Surfaces: []SurfaceResult{}}
	for _, s := range surfaces {
		if surfaceFilter != "" && s.Path != surfaceFilter {
			continue
		}
		in, err := readInput(fsys, variant, s)
		if err != nil {
			return nil, err
		}
		res, err := ResolveSurface(in)
		if err != nil {
			return nil, err
		}
		r.logger().Debug("resolved surface",
			"variant", variant, "surface", s.Path, "strategy", s.Strategy, "has_override", res.HasOverride)
		result.Surfaces = append(result.Surfaces, res)
	}
	return result, nil
}

// readInput fetches the base and optional override of s.
func readInput(fsys fs.FS, variant string, s surface.Surface) (Input, error) {
	base, err := fs.ReadFile(fsys, s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Input{}, &vferrors.BaseMissingError{Path: s.Path}
		}
		return Input{}, fmt.Errorf("overlay: read base %s: %w", s.Path, err)
	}
	override, found, err := source.ReadOptional(fsys, layout.OverridePath(variant, s.Path))
	if err != nil {
		return Input{}, fmt.Errorf("overlay: read override %s: %w", s.Path, err)
	}
	return Input{Surface: s, Base: base, Override: override, HasOverride: found}, nil
}

// BlankOverride reports whether override contributes nothing to s. A replace
// override is blank only when it has no bytes at all, since any other content
// becomes the resolved file. A merge override is also blank when it is only
// whitespace.
func BlankOverride(s surface.Surface, override []byte) bool {
	if len(override) == 0 {
		return true
	}
	return s.Strategy != surface.StrategyReplace && len(bytes.TrimSpace(override)) == 0
}

// ResolveSurface combines one surface's base and override:
//
//   - no override: the base, unchanged
//   - a blank override (see [BlankOverride]): the base, with HasOverride set
//   - replace: the override, unchanged, whitespace included
//   - merge: an RFC 7396 merge of the override into the base
//
// ResolveSurface performs no I/O.
func ResolveSurface(in Input) (SurfaceResult, error) {
	s := in.Surface
	res := SurfaceResult{
		Surface:     s.Path,
		Format:      s.Format,
		Strategy:    s.Strategy,
		HasOverride: in.HasOverride,
	}

	switch {
	case !in.HasOverride || BlankOverride(s, in.Override):
		res.Content = string(in.Base)
	case s.Strategy == surface.StrategyReplace:
		res.Content = string(in.Override)
	case s.Format == surface.FormatJSON:
		out, err := mergepatch.MergeJSON(in.Base, in.Override)
		if err != nil {
			return SurfaceResult{}, annotate(err, s.Path)
		}
		res.Content = string(out)
	case s.Format == surface.FormatYAML:
		out, err := mergepatch.MergeYAML(in.Base, in.Override)
		if err != nil {
			return SurfaceResult{}, annotate(err, s.Path)
		}
		res.Content = string(out)
	default:
		return SurfaceResult{}, &vferrors.ConfigError{
			Option:  "strategy",
			Value:   s.Strategy,
			Message: fmt.Sprintf("%s surface %s cannot be merged", s.Format, s.Path),
		}
	}
	return res, nil
}

// annotate records the surface path on merge errors.
func annotate(err error, path string) error {
	var shapeErr *vferrors.ShapeError
	if errors.As(err, &shapeErr) {
		shapeErr.Path = path
		return shapeErr
	}
	var parseErr *vferrors.ParseError
	if errors.As(err, &parseErr) {
		parseErr.Path = path
		return parseErr
	}
	return fmt.Errorf("overlay: %s: %w", path, err)
}

// Preview resolves inline content for a single surface without touching any
// filesystem. A nil override means the variant has no override file.
func Preview(s surface.Surface, base, override []byte) (SurfaceResult, error) {
	if !s.Format.IsValid() {
		return SurfaceResult{}, &vferrors.ConfigError{Option: "format", Value: s.Format, Message: "unknown format"}
	}
	if s.Strategy == "" {
		s.Strategy = surface.DefaultStrategy(s.Format)
	}
	if !s.Strategy.IsValid() {
		return SurfaceResult{}, &vferrors.ConfigError{Option: "strategy", Value: s.Strategy, Message: "unknown strategy"}
	}
	return ResolveSurface(Input{Surface: s, Base: base, Override: override, HasOverride: override != nil})
}
