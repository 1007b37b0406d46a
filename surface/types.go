package surface

import (
	"github.com/variantform/variantform/pathspec"
)

// Format is the content type of a surface.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSS      Format = "css"
	FormatCode     Format = "code"
	FormatMarkdown Format = "markdown"
	FormatAsset    Format = "asset"
	FormatTemplate Format = "template"
	FormatText     Format = "text"
)

// Formats lists every supported format in declaration order.
var Formats = []Format{
	FormatJSON, FormatYAML, FormatCSS, FormatCode,
	FormatMarkdown, FormatAsset, FormatTemplate, FormatText,
}

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// Structured reports whether content of this format can be parsed and merged.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// Strategy selects how an override combines with its base.
type Strategy string

// Supported strategies.
const (
	// StrategyMerge applies the override as an RFC 7396 merge patch.
	StrategyMerge Strategy = "merge"
	// StrategyReplace uses the override verbatim.
	StrategyReplace Strategy = "replace"
)

// IsValid reports whether s is a supported strategy.
func (s Strategy) IsValid() bool {
	return s == StrategyMerge || s == StrategyReplace
}

// DefaultStrategy returns merge for structured formats and replace otherwise.
func DefaultStrategy(f Format) Strategy {
	if f.Structured() {
		return StrategyMerge
	}
	return StrategyReplace
}

// Surface is one declared customizable file or glob of files.
type Surface struct {
	Path     string   `yaml:"path" json:"path"`
	Format   Format   `yaml:"format" json:"format"`
	Strategy Strategy `yaml:"strategy" json:"strategy"`
}

// IsGlob reports whether the surface path is a glob pattern.
func (s Surface) IsGlob() bool {
	return pathspec.IsGlob(s.Path)
}

// Set is an ordered list of surfaces.
type Set []Surface

// Match returns the first surface whose path or pattern matches filePath.
func (set Set) Match(filePath string) (Surface, bool) {
	for _, s := range set {
		if pathspec.Match(filePath, s.Path) {
			return s, true
		}
	}
	return Surface{}, false
}

// Paths returns the declared paths in order.
func (set Set) Paths() []string {
	paths := make([]string, len(set))
	for i, s := range set {
		paths[i] = s.Path
	}
	return paths
}

// Manifest is the parsed content of .variantform.yaml.
type Manifest struct {
	Surfaces Set `yaml:"surfaces" json:"surfaces"`
}
