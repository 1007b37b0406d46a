package commands

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantform/variantform/inspector"
	"github.com/variantform/variantform/vferrors"
)

func TestSetupDiffFlags(t *testing.T) {
	fs, flags := SetupDiffFlags()

	assert.False(t, flags.Patch)
	assert.Equal(t, FormatText, flags.Format)

	require.NoError(t, fs.Parse([]string{"--patch", "--format", "yaml", "acme"}))
	assert.True(t, flags.Patch)
	assert.Equal(t, "yaml", flags.Format)
	assert.Equal(t, "acme", fs.Arg(0))
}

func TestHandleDiff_NoArgs(t *testing.T) {
	captureOutput(t)
	assert.Error(t, HandleDiff([]string{}))
}

func TestHandleDiff_Text(t *testing.T) {
	dir := sampleProjectDir(t)
	stdout, _ := captureOutput(t)

	require.NoError(t, HandleDiff([]string{"-C", dir, "acme"}))

	out := stdout.String()
	assert.Contains(t, out, "acme overrides 3 surfaces:")
	assert.Contains(t, out, "config/features.json  time_tracking, max_projects")
	assert.Contains(t, out, "config/settings.yaml  app")
	assert.Contains(t, out, "theme/brand.css  "+inspector.EntireFile)
	assert.NotContains(t, out, "+++", "patches are opt-in")
}

func TestHandleDiff_Patch(t *testing.T) {
	dir := sampleProjectDir(t)
	stdout, _ := captureOutput(t)

	require.NoError(t, HandleDiff([]string{"-C", dir, "acme", "--patch"}))

	out := stdout.String()
	assert.Contains(t, out, "--- theme/brand.css")
	assert.Contains(t, out, "+++ theme/brand.css")
	assert.Contains(t, out, "@@")
	assert.Contains(t, out, "+1 -1")
}

func TestHandleDiff_JSON(t *testing.T) {
	dir := sampleProjectDir(t)
	stdout, _ := captureOutput(t)

	require.NoError(t, HandleDiff([]string{"-C", dir, "globex", "--format", "json"}))

	var result inspector.DiffResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, "globex", result.Variant)
	surfaces := make([]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		surfaces = append(surfaces, e.Surface)
	}
	assert.Contains(t, surfaces, "theme/brand.css", "a whitespace replace override still counts")
	assert.Contains(t, surfaces, "config/features.json")
}

func TestHandleDiff_NoOverrides(t *testing.T) {
	dir := sampleProjectDir(t)
	stdout, _ := captureOutput(t)
	require.NoError(t, CreateVariant(afero.NewBasePathFs(afero.NewOsFs(), dir), "initech"))

	require.NoError(t, HandleDiff([]string{"-C", dir, "initech"}))
	assert.Equal(t, "initech inherits every surface from base\n", stdout.String())
}

func TestHandleDiff_UnknownVariant(t *testing.T) {
	dir := sampleProjectDir(t)
	captureOutput(t)

	err := HandleDiff([]string{"-C", dir, "initech"})
	assert.ErrorIs(t, err, vferrors.ErrVariantNotFound)
}
