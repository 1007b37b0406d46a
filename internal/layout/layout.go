// Package layout holds the on-disk conventions of a variantform project and
// enumerates variants and their override files.
package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/variantform/variantform/pathspec"
	"github.com/variantform/variantform/source"
)

const (
	// ManifestFile is the project manifest, relative to the project root.
	ManifestFile = ".variantform.yaml"
	// VariantsDir holds one directory per variant.
	VariantsDir = "variants"
	// Placeholder keeps otherwise empty directories under version control.
	Placeholder = ".gitkeep"
	// MaxScanDepth bounds directory recursion during expansion and enumeration.
	MaxScanDepth = 10
)

// VariantDir returns the directory of the named variant.
func VariantDir(variant string) string {
	return path.Join(VariantsDir, variant)
}

// OverridePath returns where variant stores its override for surfacePath.
func OverridePath(variant, surfacePath string) string {
	return path.Join(VariantsDir, variant, surfacePath)
}

// IsPlaceholder reports whether name is a placeholder file at any depth.
func IsPlaceholder(name string) bool {
	return path.Base(name) == Placeholder
}

// Variants returns the sorted names of variant directories. A project without
// a variants directory has no variants. Directories whose names are not valid
// variant names are skipped.
func Variants(fsys fs.FS, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := fs.ReadDir(fsys, VariantsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("layout: read %s: %w", VariantsDir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := pathspec.ValidateVariantName(e.Name()); err != nil {
			logger.Debug("ignoring directory with invalid variant name", "dir", e.Name())
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// HasVariant reports whether the variant directory exists.
func HasVariant(fsys fs.FS, variant string) (bool, error) {
	ok, err := source.IsDir(fsys, VariantDir(variant))
	if err != nil {
		return false, fmt.Errorf("layout: stat variant %s: %w", variant, err)
	}
	return ok, nil
}

// VariantFiles returns the files stored under variant, relative to the
// variant directory and sorted. Placeholder files are excluded.
func VariantFiles(fsys fs.FS, variant string, logger *slog.Logger) ([]string, error) {
	dir := VariantDir(variant)
	files, err := source.ListFiles(fsys, dir, source.ListOptions{
		MaxDepth: MaxScanDepth,
		Logger:   logger,
		Skip: func(name string, d fs.DirEntry) bool {
			return !d.IsDir() && IsPlaceholder(name)
		},
	})
	if err != nil {
		return nil, err
	}
	rel := make([]string, len(files))
	for i, f := range files {
		rel[i] = strings.TrimPrefix(f, dir+"/")
	}
	return rel, nil
}
