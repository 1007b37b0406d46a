package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath(t *testing.T) {
	osFs := afero.NewOsFs()

	t.Run("existing file accepted", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "features.json")
		require.NoError(t, os.WriteFile(target, []byte("{}"), 0o600))

		got, err := SanitizeOutputPath(osFs, target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("returns absolute path from relative", func(t *testing.T) {
		got, err := SanitizeOutputPath(osFs, "resolved.yaml")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})

	t.Run("dot-dot components are cleaned", func(t *testing.T) {
		tmpDir := t.TempDir()
		got, err := SanitizeOutputPath(osFs, filepath.Join(tmpDir, "sub", "..", "out.json"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "out.json"), got)
	})

	t.Run("new file in existing directory accepted", func(t *testing.T) {
		tmpDir := t.TempDir()
		newFile := filepath.Join(tmpDir, "newfile.yaml")

		got, err := SanitizeOutputPath(osFs, newFile)
		require.NoError(t, err)
		assert.Equal(t, newFile, got)
	})

	t.Run("symlink target rejected", func(t *testing.T) {
		tmpDir := t.TempDir()
		realFile := filepath.Join(tmpDir, "real.yaml")
		linkFile := filepath.Join(tmpDir, "link.yaml")
		require.NoError(t, os.WriteFile(realFile, []byte("test"), 0o600))
		require.NoError(t, os.Symlink(realFile, linkFile))

		_, err := SanitizeOutputPath(osFs, linkFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})

	t.Run("directory rejected", func(t *testing.T) {
		_, err := SanitizeOutputPath(osFs, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "directory")
	})

	t.Run("empty path rejected", func(t *testing.T) {
		_, err := SanitizeOutputPath(osFs, "")
		require.Error(t, err)
	})
}

func TestSanitizeOutputPath_MemFs(t *testing.T) {
	mem := afero.NewMemMapFs()
	abs, err := filepath.Abs("out/resolved.json")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(mem, abs, []byte("{}"), 0o644))

	got, err := SanitizeOutputPath(mem, "out/resolved.json")
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}
