package inspector

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/variantform/variantform/internal/layout"
	"github.com/variantform/variantform/mergepatch"
	"github.com/variantform/variantform/overlay"
	"github.com/variantform/variantform/pathspec"
	"github.com/variantform/variantform/source"
	"github.com/variantform/variantform/surface"
	"github.com/variantform/variantform/vferrors"
)

// Inspector computes status and diff reports.
type Inspector struct {
	// Logger receives debug records. Nil means slog.Default().
	Logger *slog.Logger
	// IncludePatch adds a base-to-resolved patch to each diff entry.
	IncludePatch bool
	// MaxDepth bounds glob expansion. Zero means the default of ten levels.
	MaxDepth int
}

// New creates a new Inspector with default settings.
func New() *Inspector {
	return &Inspector{}
}

func (ins *Inspector) logger() *slog.Logger {
	if ins.Logger != nil {
		return ins.Logger
	}
	return slog.Default()
}

func loadManifest(fsys fs.FS, manifest *surface.Manifest) (*surface.Manifest, error) {
	if manifest != nil {
		return manifest, nil
	}
	return surface.LoadManifest(fsys)
}

// Status partitions every variant's files into overrides and violations,
// matching against the declared surface patterns. Variants are sorted by
// name. A project without a variants directory yields an empty slice.
func (ins *Inspector) Status(fsys fs.FS, manifest *surface.Manifest) ([]VariantStatus, error) {
	manifest, err := loadManifest(fsys, manifest)
	if err != nil {
		return nil, err
	}
	variants, err := layout.Variants(fsys, ins.Logger)
	if err != nil {
		return nil, fmt.Errorf("inspector: %w", err)
	}

	statuses := make([]VariantStatus, 0, len(variants))
	for _, name := range variants {
		files, err := layout.VariantFiles(fsys, name, ins.Logger)
		if err != nil {
			return nil, fmt.Errorf("inspector: %w", err)
		}
		st := VariantStatus{Name: name, Overrides: []string{}, Violations: []string{}}
		for _, f := range files {
			if _, ok := manifest.Surfaces.Match(f); ok {
				st.Overrides = append(st.Overrides, f)
			} else {
				st.Violations = append(st.Violations, f)
			}
		}
		st.OverrideCount = len(st.Overrides)
		statuses = append(statuses, st)
	}
	return statuses, nil
}

// Diff lists the surfaces variant overrides. For structured surfaces the
// override is parsed and its top-level keys reported; an override that parses
// to a non-object, and any override of an unstructured surface, is reported as
// [EntireFile]. Surfaces whose override is blank (see [overlay.BlankOverride])
// or an empty object are omitted.
// An unparsable merge override is a *vferrors.ParseError; an unparsable replace
// override is reported as [EntireFile].
func (ins *Inspector) Diff(fsys fs.FS, manifest *surface.Manifest, variant string) (*DiffResult, error) {
	if err := pathspec.ValidateVariantName(variant); err != nil {
		return nil, err
	}
	manifest, err := loadManifest(fsys, manifest)
	if err != nil {
		return nil, err
	}
	exists, err := layout.HasVariant(fsys, variant)
	if err != nil {
		return nil, fmt.Errorf("inspector: %w", err)
	}
	if !exists {
		return nil, &vferrors.VariantNotFoundError{Variant: variant}
	}

	surfaces, err := surface.ExpandWithOptions(fsys, manifest.Surfaces, surface.ExpandOptions{
		MaxDepth: ins.MaxDepth,
		Logger:   ins.Logger,
	})
	if err != nil {
		return nil, err
	}

	result := &DiffResult{Variant: variant, Entries: []DiffEntry{}}
	for _, s := range surfaces {
		override, found, err := source.ReadOptional(fsys, layout.OverridePath(variant, s.Path))
		if err != nil {
			return nil, fmt.Errorf("inspector: read override %s: %w", s.Path, err)
		}
		if !found || overlay.BlankOverride(s, override) {
			continue
		}
		keys, err := overrideKeys(s, override)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			ins.logger().Debug("override sets no keys", "variant", variant, "surface", s.Path)
			continue
		}
		entry := DiffEntry{Surface: s.Path, OverrideKeys: keys}
		if ins.IncludePatch {
			if err := ins.addPatch(fsys, s, override, &entry); err != nil {
				return nil, err
			}
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

func overrideKeys(s surface.Surface, override []byte) ([]string, error) {
	if !s.Format.Structured() {
		return []string{EntireFile}, nil
	}
	var v mergepatch.Value
	var err error
	if s.Format == surface.FormatYAML {
		v, err = mergepatch.ParseYAML(override)
	} else {
		v, err = mergepatch.ParseJSON(override)
	}
	if err != nil {
		if s.Strategy == surface.StrategyReplace {
			return []string{EntireFile}, nil
		}
		var pe *vferrors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = s.Path
		}
		return nil, err
	}
	if _, ok := v.(*mergepatch.Object); !ok {
		return []string{EntireFile}, nil
	}
	return mergepatch.TopLevelKeys(v), nil
}

func (ins *Inspector) addPatch(fsys fs.FS, s surface.Surface, override []byte, entry *DiffEntry) error {
	base, found, err := source.ReadOptional(fsys, s.Path)
	if err != nil {
		return fmt.Errorf("inspector: read base %s: %w", s.Path, err)
	}
	if !found {
		return &vferrors.BaseMissingError{Path: s.Path}
	}
	res, err := overlay.ResolveSurface(overlay.Input{Surface: s, Base: base, Override: override, HasOverride: true})
	if err != nil {
		return err
	}
	entry.Patch, entry.Additions, entry.Deletions = buildPatch(s.Path, string(base), res.Content)
	return nil
}
