package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantform/variantform/internal/testutil"
	"github.com/variantform/variantform/validator"
)

func TestSetupValidateFlags(t *testing.T) {
	fs, flags := SetupValidateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.False(t, flags.TopLevelKeys)
		assert.False(t, flags.Quiet)
		assert.Equal(t, FormatText, flags.Format)
	})

	t.Run("parse flags", func(t *testing.T) {
		require.NoError(t, fs.Parse([]string{"--top-level-keys", "-q", "--format", "json"}))
		assert.True(t, flags.TopLevelKeys)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "json", flags.Format)
	})
}

func TestHandleValidate_Help(t *testing.T) {
	captureOutput(t)
	assert.NoError(t, HandleValidate([]string{"--help"}))
}

func TestHandleValidate_InvalidFormat(t *testing.T) {
	captureOutput(t)
	assert.Error(t, HandleValidate([]string{"--format", "invalid"}))
}

func TestHandleValidate_IssuesFound(t *testing.T) {
	dir := sampleProjectDir(t)
	stdout, _ := captureOutput(t)

	err := HandleValidate([]string{"-C", dir})
	require.ErrorIs(t, err, ErrIssuesFound)

	out := stdout.String()
	assert.Contains(t, out, "Checked 8 files in 2 variants")
	assert.Contains(t, out, "[invalid_shape]")
	assert.Contains(t, out, "[parse_error]")
	assert.Contains(t, out, "[extraneous_file]")
	assert.Contains(t, out, "[stale_key]")
	assert.Contains(t, out, "[empty_file]")
	assert.Contains(t, out, "Stale Key:")
	assert.Contains(t, out, "Extraneous File:")
	assert.Contains(t, out, "✗ 3 errors, 2 warnings")
}

func TestHandleValidate_JSON(t *testing.T) {
	dir := sampleProjectDir(t)
	stdout, _ := captureOutput(t)

	err := HandleValidate([]string{"-C", dir, "--format", "json", "--top-level-keys"})
	require.ErrorIs(t, err, ErrIssuesFound)

	var result validator.ValidationResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, 3, result.ErrorCount)
	assert.Equal(t, 2, result.WarningCount)
	assert.Equal(t, 2, result.VariantCount)
}

func TestHandleValidate_Quiet(t *testing.T) {
	dir := sampleProjectDir(t)
	stdout, _ := captureOutput(t)

	err := HandleValidate([]string{"-C", dir, "-q"})
	assert.ErrorIs(t, err, ErrIssuesFound)
	assert.Empty(t, stdout.String())
}

func TestHandleValidate_Clean(t *testing.T) {
	files := testutil.Without(testutil.SampleProject(),
		"variants/globex/config/features.json",
		"variants/globex/config/settings.yaml",
		"variants/globex/theme/brand.css",
		"variants/globex/locales/en.json",
		"variants/globex/notes.txt",
	)
	dir := testutil.WriteTempProject(t, files)
	stdout, _ := captureOutput(t)

	require.NoError(t, HandleValidate([]string{"-C", dir}))
	assert.Contains(t, stdout.String(), "Checked 3 files in 1 variant\n")
	assert.Contains(t, stdout.String(), "✓ No issues found")
}

func TestKindTitle(t *testing.T) {
	tests := map[validator.IssueKind]string{
		validator.KindStaleKey:       "Stale Key",
		validator.KindParseError:     "Parse Error",
		validator.KindExtraneousFile: "Extraneous File",
		validator.KindInvalidShape:   "Invalid Shape",
		validator.KindEmptyFile:      "Empty File",
	}
	for kind, want := range tests {
		assert.Equal(t, want, KindTitle(kind))
	}
}
