package surface

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantform/variantform/internal/testutil"
	"github.com/variantform/variantform/vferrors"
)

func TestExpand(t *testing.T) {
	fsys := testutil.NewProjectFS(t, testutil.With(testutil.SampleProject(), map[string]string{
		"locales/sub/fr.json": `{"hello":"Bonjour"}`,
		"locales/readme.md":   "docs",
	}))
	m, err := LoadManifest(fsys)
	require.NoError(t, err)

	expanded, err := Expand(fsys, m.Surfaces)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"config/features.json",
		"config/settings.yaml",
		"theme/brand.css",
		"locales/de.json",
		"locales/en.json",
	}, expanded.Paths())
	for _, s := range expanded[3:] {
		assert.Equal(t, FormatJSON, s.Format)
		assert.Equal(t, StrategyReplace, s.Strategy)
	}
}

func TestExpandDoubleStar(t *testing.T) {
	fsys := testutil.NewProjectFS(t, map[string]string{
		"features.json":               "{}",
		"config/a.json":               "{}",
		"config/deep/b.json":          "{}",
		"config/deep/c.yaml":          "a: 1",
		"variants/acme/config/x.json": "{}",
		"variants/acme/features.json": "{}",
		".variantform.yaml":           "surfaces: []",
	})

	t.Run("root double star matches root files and skips variants", func(t *testing.T) {
		got, err := Expand(fsys, Set{{Path: "**/*.json", Format: FormatJSON, Strategy: StrategyMerge}})
		require.NoError(t, err)
		assert.Equal(t, []string{"config/a.json", "config/deep/b.json", "features.json"}, got.Paths())
	})

	t.Run("prefixed double star matches zero dirs", func(t *testing.T) {
		got, err := Expand(fsys, Set{{Path: "config/**/*.json", Format: FormatJSON, Strategy: StrategyMerge}})
		require.NoError(t, err)
		assert.Equal(t, []string{"config/a.json", "config/deep/b.json"}, got.Paths())
	})

	t.Run("single star stays in one directory", func(t *testing.T) {
		got, err := Expand(fsys, Set{{Path: "config/*.json", Format: FormatJSON, Strategy: StrategyMerge}})
		require.NoError(t, err)
		assert.Equal(t, []string{"config/a.json"}, got.Paths())
	})

	t.Run("manifest never matches", func(t *testing.T) {
		got, err := Expand(fsys, Set{{Path: "*.yaml", Format: FormatYAML, Strategy: StrategyMerge}})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("glob inside variants tree matches nothing", func(t *testing.T) {
		got, err := Expand(fsys, Set{{Path: "variants/**/*.json", Format: FormatJSON, Strategy: StrategyMerge}})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing base directory", func(t *testing.T) {
		got, err := Expand(fsys, Set{{Path: "nowhere/*.json", Format: FormatJSON, Strategy: StrategyMerge}})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestExpandKeepsFirstDeclaration(t *testing.T) {
	fsys := testutil.NewProjectFS(t, map[string]string{
		"config/a.json": "{}",
		"config/b.json": "{}",
	})
	set := Set{
		{Path: "config/b.json", Format: FormatJSON, Strategy: StrategyMerge},
		{Path: "config/*.json", Format: FormatJSON, Strategy: StrategyReplace},
	}
	got, err := Expand(fsys, set)
	require.NoError(t, err)
	assert.Equal(t, Set{
		{Path: "config/b.json", Format: FormatJSON, Strategy: StrategyMerge},
		{Path: "config/a.json", Format: FormatJSON, Strategy: StrategyReplace},
	}, got)
}

func TestExpandNonGlobPassesThrough(t *testing.T) {
	fsys := testutil.NewProjectFS(t, map[string]string{})
	set := Set{{Path: "missing.json", Format: FormatJSON, Strategy: StrategyMerge}}
	got, err := Expand(fsys, set)
	require.NoError(t, err)
	assert.Equal(t, set, got)
}

func TestExpandRejectsUnsafeGlob(t *testing.T) {
	fsys := testutil.NewProjectFS(t, map[string]string{"a.json": "{}"})
	_, err := Expand(fsys, Set{{Path: "../*.json", Format: FormatJSON, Strategy: StrategyMerge}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, vferrors.ErrUnsafePath))
}

func TestExpandDepthBound(t *testing.T) {
	segments := make([]string, 12)
	for i := range segments {
		segments[i] = fmt.Sprintf("d%d", i)
	}
	files := map[string]string{}
	for depth := 1; depth <= len(segments); depth++ {
		files[strings.Join(segments[:depth], "/")+"/f.json"] = "{}"
	}
	fsys := testutil.NewProjectFS(t, files)

	got, err := Expand(fsys, Set{{Path: "**/*.json", Format: FormatJSON, Strategy: StrategyMerge}})
	require.NoError(t, err)
	assert.Len(t, got, 10, "files more than ten directories deep are not scanned")

	got, err = ExpandWithOptions(fsys, Set{{Path: "d0/**/*.json", Format: FormatJSON, Strategy: StrategyMerge}}, ExpandOptions{MaxDepth: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"d0/d1/d2/f.json", "d0/d1/f.json", "d0/f.json"}, got.Paths())
}

func TestSetMatch(t *testing.T) {
	set := Set{
		{Path: "config/features.json", Format: FormatJSON, Strategy: StrategyMerge},
		{Path: "config/*.json", Format: FormatJSON, Strategy: StrategyReplace},
	}

	s, ok := set.Match("config/features.json")
	require.True(t, ok)
	assert.Equal(t, StrategyMerge, s.Strategy)

	s, ok = set.Match("config/other.json")
	require.True(t, ok)
	assert.Equal(t, StrategyReplace, s.Strategy)

	_, ok = set.Match("config/deep/other.json")
	assert.False(t, ok)
}

func TestFormatAndStrategy(t *testing.T) {
	assert.True(t, FormatMarkdown.IsValid())
	assert.False(t, Format("toml").IsValid())
	assert.True(t, FormatYAML.Structured())
	assert.False(t, FormatTemplate.Structured())
	assert.Equal(t, StrategyReplace, DefaultStrategy(FormatAsset))
	assert.True(t, StrategyReplace.IsValid())
	assert.False(t, Strategy("deep").IsValid())
}
