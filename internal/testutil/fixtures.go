// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/variantform/variantform/source"
)

// SampleManifest declares one surface of each interesting kind.
const SampleManifest = `surfaces:
  - path: config/features.json
    format: json
  - path: config/settings.yaml
    format: yaml
  - path: theme/brand.css
    format: css
  - path: locales/*.json
    format: json
    strategy: replace
`

// SampleProject returns the files of a small project with two variants.
// "acme" is consistent; "globex" carries one defect of every kind.
func SampleProject() map[string]string {
	return map[string]string{
		".variantform.yaml":    SampleManifest,
		"config/features.json": `{"kanban": true, "gantt": true, "time_tracking": false, "max_projects": 10}`,
		"config/settings.yaml": "app:\n  name: Tracker\n  port: 8080\nlog: info\n",
		"theme/brand.css":      ":root { --primary: #000; }\n",
		"locales/en.json":      `{"hello": "Hello"}`,
		"locales/de.json":      `{"hello": "Hallo"}`,
		"variants/.gitkeep":    "",

		"variants/acme/.gitkeep":             "",
		"variants/acme/config/features.json": `{"time_tracking": true, "max_projects": 50}`,
		"variants/acme/config/settings.yaml": "app:\n  name: Acme Tracker\n",
		"variants/acme/theme/brand.css":      ":root { --primary: #e11; }\n",

		"variants/globex/config/features.json": `{"kanban": false, "removed_key": true}`,
		"variants/globex/config/settings.yaml": "- not\n- a mapping\n",
		"variants/globex/theme/brand.css":      "   \n",
		"variants/globex/locales/en.json":      `{"hello": `,
		"variants/globex/notes.txt":            "stray file",
	}
}

// NewMemFs writes files into a fresh in-memory afero filesystem.
// Keys are slash-separated paths relative to the project root.
func NewMemFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	mem := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(mem, name, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", name, err)
		}
	}
	return mem
}

// NewProjectFS returns files as a read-only fs.FS.
func NewProjectFS(t *testing.T, files map[string]string) fs.FS {
	t.Helper()
	return source.Afero(NewMemFs(t, files))
}

// WriteTempProject writes files under a temporary directory and returns it.
// The directory is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempProject(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	base := afero.NewBasePathFs(afero.NewOsFs(), dir)
	for name, content := range files {
		if err := base.MkdirAll(filepath.Dir(filepath.FromSlash(name)), 0o755); err != nil {
			t.Fatalf("Failed to create fixture directory for %s: %v", name, err)
		}
		if err := afero.WriteFile(base, filepath.FromSlash(name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", name, err)
		}
	}
	return dir
}

// With returns a copy of files with overrides applied. An empty string value
// keeps the file with empty content; use Without to remove files.
func With(files map[string]string, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(files)+len(overrides))
	for k, v := range files {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Without returns a copy of files with the named entries removed.
func Without(files map[string]string, names ...string) map[string]string {
	out := make(map[string]string, len(files))
	for k, v := range files {
		out[k] = v
	}
	for _, n := range names {
		delete(out, n)
	}
	return out
}
