package surface

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v4"

	"github.com/variantform/variantform/internal/layout"
	"github.com/variantform/variantform/pathspec"
	"github.com/variantform/variantform/vferrors"
)

// entryValidate checks the field rules of a manifest entry.
// Initialized in init() with the surface path rule.
var entryValidate *validator.Validate

func init() {
	entryValidate = validator.New(validator.WithRequiredStructEnabled())
	_ = entryValidate.RegisterValidation("surfacepath", validateSurfacePath)
}

// validateSurfacePath applies the path safety rules, using the glob variant
// for patterns.
func validateSurfacePath(fl validator.FieldLevel) bool {
	return checkPath(fl.Field().String()) == nil
}

func checkPath(p string) error {
	if pathspec.IsGlob(p) {
		return pathspec.ValidateGlobPattern(p)
	}
	return pathspec.ValidateSurfacePath(p)
}

// rawEntry is one surfaces[] item before defaults are applied.
// Field order is the order in which violations are reported.
type rawEntry struct {
	Path     string `validate:"required,surfacepath"`
	Format   string `validate:"required,oneof=json yaml css code markdown asset template text"`
	Strategy string `validate:"omitempty,oneof=merge replace"`
}

// LoadManifest reads and parses the manifest at the root of fsys.
func LoadManifest(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, layout.ManifestFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &vferrors.ManifestError{Path: layout.ManifestFile, Missing: true}
		}
		return nil, fmt.Errorf("surface: read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		var me *vferrors.ManifestError
		if errors.As(err, &me) && me.Path == "" {
			me.Path = layout.ManifestFile
		}
		return nil, err
	}
	return m, nil
}

// ParseManifest parses manifest YAML and validates every surface entry,
// stopping at the first invalid one.
func ParseManifest(data []byte) (*Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &vferrors.ManifestError{Message: "invalid YAML", Cause: err}
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, &vferrors.ManifestError{Message: "must be a mapping with a 'surfaces' sequence"}
	}

	list := mappingValue(root, "surfaces")
	if list == nil {
		return nil, &vferrors.ManifestError{Message: "missing 'surfaces'"}
	}
	if list.Kind != yaml.SequenceNode {
		return nil, &vferrors.ManifestError{Message: "'surfaces' must be a sequence"}
	}

	m := &Manifest{Surfaces: make(Set, 0, len(list.Content))}
	for i, item := range list.Content {
		s, err := parseEntry(i, resolveAlias(item))
		if err != nil {
			return nil, err
		}
		m.Surfaces = append(m.Surfaces, s)
	}
	return m, nil
}

func parseEntry(index int, n *yaml.Node) (Surface, error) {
	if n.Kind != yaml.MappingNode {
		return Surface{}, &vferrors.SurfaceError{Index: index, Message: "entry must be a mapping"}
	}

	var raw rawEntry
	var err error
	if raw.Path, err = stringField(n, "path", true); err != nil {
		return Surface{}, &vferrors.SurfaceError{Index: index, Field: "path", Message: err.Error()}
	}
	if raw.Format, err = stringField(n, "format", true); err != nil {
		return Surface{}, &vferrors.SurfaceError{Index: index, Path: raw.Path, Field: "format", Message: err.Error()}
	}
	if raw.Strategy, err = stringField(n, "strategy", false); err != nil {
		return Surface{}, &vferrors.SurfaceError{Index: index, Path: raw.Path, Field: "strategy", Message: err.Error()}
	}

	// Safe paths are stored in canonical form so "./a.json", "x//a.json" and
	// "x/./a.json" address the same files as their cleaned spelling. Unsafe
	// ones are left untouched for the validator to report.
	if raw.Path != "" && pathspec.ValidateSurfacePath(raw.Path) == nil {
		raw.Path = path.Clean(raw.Path)
		if raw.Path == "." {
			return Surface{}, &vferrors.SurfaceError{Index: index, Path: raw.Path, Field: "path", Message: "path must name a location inside the project, not the root itself"}
		}
	}

	if err := entryValidate.Struct(raw); err != nil {
		return Surface{}, entryError(index, raw, err)
	}

	s := Surface{Path: raw.Path, Format: Format(raw.Format), Strategy: Strategy(raw.Strategy)}
	if s.Strategy == "" {
		s.Strategy = DefaultStrategy(s.Format)
	}
	if s.Strategy == StrategyMerge && !s.Format.Structured() {
		return Surface{}, &vferrors.SurfaceError{
			Index:   index,
			Path:    s.Path,
			Field:   "strategy",
			Message: fmt.Sprintf("strategy %q is only allowed for json and yaml surfaces, not %q", s.Strategy, s.Format),
		}
	}
	return s, nil
}

// entryError converts the first validator failure into a SurfaceError.
func entryError(index int, raw rawEntry, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &vferrors.SurfaceError{Index: index, Path: raw.Path, Cause: err}
	}
	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	se := &vferrors.SurfaceError{Index: index, Path: raw.Path, Field: field}
	switch fe.Tag() {
	case "required":
		se.Message = "is required"
	case "surfacepath":
		se.Cause = checkPath(raw.Path)
	case "oneof":
		se.Message = fmt.Sprintf("unknown %s %q (expected one of: %s)", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		se.Message = fe.Error()
	}
	return se
}

// stringField returns the string value of key in mapping n. A present value
// must be a YAML string; an absent one is an error only when required.
func stringField(n *yaml.Node, key string, required bool) (string, error) {
	v := mappingValue(n, key)
	if v == nil {
		if required {
			return "", errors.New("is required")
		}
		return "", nil
	}
	if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!str" {
		return "", fmt.Errorf("must be a string, got %s", describeNode(v))
	}
	return v.Value, nil
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolveAlias(n.Content[i+1])
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for depth := 0; n.Kind == yaml.AliasNode && n.Alias != nil && depth < 100; depth++ {
		n = n.Alias
	}
	return n
}

func describeNode(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	}
	switch n.ShortTag() {
	case "!!null":
		return "null"
	case "!!bool":
		return "boolean"
	case "!!int", "!!float":
		return "number"
	}
	return n.ShortTag()
}

// Marshal renders the manifest as YAML with an explicit strategy on every entry.
func (m *Manifest) Marshal() ([]byte, error) {
	out, err := yaml.Dump(m, yaml.WithIndent(2), yaml.WithCompactSeqIndent(false))
	if err != nil {
		return nil, fmt.Errorf("surface: encode manifest: %w", err)
	}
	return out, nil
}
