package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/variantform/variantform/validator"
)

// clearVariantformEnv clears all VARIANTFORM_* env vars to isolate tests from the ambient environment.
func clearVariantformEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VARIANTFORM_PROJECT", "VARIANTFORM_MAX_DEPTH",
		"VARIANTFORM_DIFF_PATCH", "VARIANTFORM_STALE_KEYS",
		"VARIANTFORM_VALIDATE_LIMIT", "VARIANTFORM_MAX_LIMIT",
		"VARIANTFORM_MAX_INLINE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearVariantformEnv(t)

	c := loadConfig()

	assert.Equal(t, ".", c.Project)
	assert.Equal(t, 10, c.MaxDepth)
	assert.False(t, c.DiffPatch)
	assert.Equal(t, validator.StaleKeysRecursive, c.StaleKeys)
	assert.Equal(t, 100, c.ValidateLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(1<<20), c.MaxInlineSize)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearVariantformEnv(t)
	t.Setenv("VARIANTFORM_PROJECT", "/srv/app")
	t.Setenv("VARIANTFORM_MAX_DEPTH", "4")
	t.Setenv("VARIANTFORM_DIFF_PATCH", "true")
	t.Setenv("VARIANTFORM_STALE_KEYS", "top-level")
	t.Setenv("VARIANTFORM_VALIDATE_LIMIT", "20")

	c := loadConfig()

	assert.Equal(t, "/srv/app", c.Project)
	assert.Equal(t, 4, c.MaxDepth)
	assert.True(t, c.DiffPatch)
	assert.Equal(t, validator.StaleKeysTopLevel, c.StaleKeys)
	assert.Equal(t, 20, c.ValidateLimit)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearVariantformEnv(t)
	t.Setenv("VARIANTFORM_MAX_DEPTH", "-3")
	t.Setenv("VARIANTFORM_DIFF_PATCH", "sometimes")
	t.Setenv("VARIANTFORM_STALE_KEYS", "deep")
	t.Setenv("VARIANTFORM_VALIDATE_LIMIT", "many")

	c := loadConfig()

	assert.Equal(t, 10, c.MaxDepth)
	assert.False(t, c.DiffPatch)
	assert.Equal(t, validator.StaleKeysRecursive, c.StaleKeys)
	assert.Equal(t, 100, c.ValidateLimit)
}
