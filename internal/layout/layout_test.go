package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantform/variantform/internal/testutil"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "variants/acme", VariantDir("acme"))
	assert.Equal(t, "variants/acme/config/a.json", OverridePath("acme", "config/a.json"))
	assert.True(t, IsPlaceholder(".gitkeep"))
	assert.True(t, IsPlaceholder("config/.gitkeep"))
	assert.False(t, IsPlaceholder("config/x.gitkeep"))
}

func TestVariants(t *testing.T) {
	t.Run("sorted directories only", func(t *testing.T) {
		fsys := testutil.NewProjectFS(t, testutil.With(testutil.SampleProject(), map[string]string{
			"variants/README.md":       "not a variant",
			"variants/.hidden/x.json":  "{}",
			"variants/Beta-2/.gitkeep": "",
		}))
		names, err := Variants(fsys, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Beta-2", "acme", "globex"}, names)
	})

	t.Run("no variants directory", func(t *testing.T) {
		fsys := testutil.NewProjectFS(t, map[string]string{".variantform.yaml": "surfaces: []\n"})
		names, err := Variants(fsys, nil)
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestHasVariant(t *testing.T) {
	fsys := testutil.NewProjectFS(t, testutil.SampleProject())

	ok, err := HasVariant(fsys, "acme")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasVariant(fsys, "initech")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVariantFiles(t *testing.T) {
	fsys := testutil.NewProjectFS(t, testutil.With(testutil.SampleProject(), map[string]string{
		"variants/acme/config/.gitkeep": "",
	}))

	files, err := VariantFiles(fsys, "acme", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"config/features.json", "config/settings.yaml", "theme/brand.css"}, files)
}
