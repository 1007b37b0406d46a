package overlay

import (
	"github.com/variantform/variantform/surface"
)

// Input is one surface with its already-fetched base and override content.
type Input struct {
	// Surface is the concrete (expanded) surface being resolved.
	Surface surface.Surface

	// Base is the content at the surface path in the project root.
	Base []byte

	// Override is the variant's content for the surface. Ignored unless HasOverride is set.
	Override []byte

	// HasOverride reports whether the variant has an override file for the surface.
	HasOverride bool
}

// SurfaceResult is the effective content of one surface for one variant.
type SurfaceResult struct {
	// Surface is the concrete surface path.
	Surface string `json:"surface" yaml:"surface"`

	// Format is the surface's declared format.
	Format surface.Format `json:"format" yaml:"format"`

	// Strategy is the surface's effective strategy.
	Strategy surface.Strategy `json:"strategy" yaml:"strategy"`

	// Content is the resolved content.
	Content string `json:"content" yaml:"content"`

	// HasOverride reports whether an override file was present, even an empty one.
	HasOverride bool `json:"hasOverride" yaml:"hasOverride"`
}

// ResolveResult contains the resolved surfaces of a variant.
type ResolveResult struct {
	// Variant is the resolved variant name.
	Variant string `json:"variant" yaml:"variant"`

	// Surfaces holds one entry per expanded surface, in expansion order.
	Surfaces []SurfaceResult `json:"surfaces" yaml:"surfaces"`
}

// OverrideCount returns the number of surfaces that had an override file.
func (r *ResolveResult) OverrideCount() int {
	n := 0
	for _, s := range r.Surfaces {
		if s.HasOverride {
			n++
		}
	}
	return n
}

// Find returns the result for the given surface path.
func (r *ResolveResult) Find(path string) (SurfaceResult, bool) {
	for _, s := range r.Surfaces {
		if s.Surface == path {
			return s, true
		}
	}
	return SurfaceResult{}, false
}
