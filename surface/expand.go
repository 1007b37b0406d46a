package surface

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/variantform/variantform/internal/layout"
	"github.com/variantform/variantform/pathspec"
	"github.com/variantform/variantform/source"
)

// ExpandOptions configures Expand.
type ExpandOptions struct {
	// MaxDepth bounds directory recursion below the project root.
	// Zero means layout.MaxScanDepth.
	MaxDepth int
	// Logger receives debug records about the scan. Nil means slog.Default().
	Logger *slog.Logger
}

// Expand replaces every glob surface in set with one concrete surface per
// matching base file, sorted by path. Non-glob surfaces pass through. A path
// produced by more than one entry is kept once, at its first position.
//
// The variants directory and the manifest are never matched. Glob patterns are
// validated before the tree is scanned.
func Expand(fsys fs.FS, set Set) (Set, error) {
	return ExpandWithOptions(fsys, set, ExpandOptions{})
}

// ExpandWithOptions is Expand with explicit options.
func ExpandWithOptions(fsys fs.FS, set Set, opts ExpandOptions) (Set, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = layout.MaxScanDepth
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	expanded := make(Set, 0, len(set))
	seen := make(map[string]bool, len(set))
	add := func(s Surface) {
		if seen[s.Path] {
			return
		}
		seen[s.Path] = true
		expanded = append(expanded, s)
	}

	for _, s := range set {
		if !s.IsGlob() {
			add(s)
			continue
		}
		if err := pathspec.ValidateGlobPattern(s.Path); err != nil {
			return nil, err
		}
		matches, err := globFiles(fsys, s.Path, maxDepth, logger)
		if err != nil {
			return nil, err
		}
		logger.Debug("expanded surface", "pattern", s.Path, "matches", len(matches))
		for _, m := range matches {
			add(Surface{Path: m, Format: s.Format, Strategy: s.Strategy})
		}
	}
	return expanded, nil
}

// globFiles lists base files matching pattern. The scan starts at the
// pattern's static directory prefix rather than the project root.
func globFiles(fsys fs.FS, pattern string, maxDepth int, logger *slog.Logger) ([]string, error) {
	base, _ := doublestar.SplitPattern(pattern)
	base = path.Clean(base)
	if base == layout.VariantsDir || strings.HasPrefix(base, layout.VariantsDir+"/") {
		return nil, nil
	}
	if base != "." {
		baseDepth := strings.Count(base, "/") + 1
		if baseDepth > maxDepth {
			logger.Debug("pattern base is beyond scan depth", "pattern", pattern, "max_depth", maxDepth)
			return nil, nil
		}
		maxDepth -= baseDepth
		if isDir, err := source.IsDir(fsys, base); err != nil || !isDir {
			return nil, err
		}
	}

	files, err := source.ListFiles(fsys, base, source.ListOptions{
		MaxDepth: maxDepth,
		Logger:   logger,
		Skip:     skipNonBase,
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("surface: expand %s: %w", pattern, err)
	}

	var matches []string
	for _, f := range files {
		if pathspec.Match(f, pattern) {
			matches = append(matches, f)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// skipNonBase excludes the variants tree and the manifest from base scans.
func skipNonBase(name string, d fs.DirEntry) bool {
	if d.IsDir() {
		return name == layout.VariantsDir
	}
	return name == layout.ManifestFile
}
