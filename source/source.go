// Package source provides the content capability the resolution engine reads
// through: an io/fs.FS rooted at a project directory.
//
// [Dir] serves a directory on disk and resolves every name with
// github.com/cyphar/filepath-securejoin, so a symlink inside the project
// cannot redirect a read outside it. [Afero] adapts any afero.Fs, which
// covers in-memory projects in tests and remote-backed filesystems.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/spf13/afero"
)

// Dir returns a read-only fs.FS for the directory tree rooted at root.
func Dir(root string) fs.FS {
	return &dirFS{root: root}
}

// Afero returns an fs.FS backed by fsys.
func Afero(fsys afero.Fs) fs.FS {
	return afero.NewIOFS(fsys)
}

type dirFS struct {
	root string
}

var (
	_ fs.ReadFileFS = (*dirFS)(nil)
	_ fs.ReadDirFS  = (*dirFS)(nil)
	_ fs.StatFS     = (*dirFS)(nil)
)

func (d *dirFS) resolve(op, name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	full, err := securejoin.SecureJoin(d.root, name)
	if err != nil {
		return "", &fs.PathError{Op: op, Path: name, Err: err}
	}
	return full, nil
}

func (d *dirFS) Open(name string) (fs.File, error) {
	full, err := d.resolve("open", name)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

func (d *dirFS) ReadFile(name string) ([]byte, error) {
	full, err := d.resolve("read", name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(full)
}

func (d *dirFS) ReadDir(name string) ([]fs.DirEntry, error) {
	full, err := d.resolve("readdir", name)
	if err != nil {
		return nil, err
	}
	return os.ReadDir(full)
}

func (d *dirFS) Stat(name string) (fs.FileInfo, error) {
	full, err := d.resolve("stat", name)
	if err != nil {
		return nil, err
	}
	return os.Stat(full)
}

// ReadOptional reads name from fsys. A missing file is reported as
// found=false with a nil error.
func ReadOptional(fsys fs.FS, name string) (data []byte, found bool, err error) {
	data, err = fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// IsDir reports whether name exists in fsys and is a directory.
func IsDir(fsys fs.FS, name string) (bool, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// ListOptions controls ListFiles.
type ListOptions struct {
	// MaxDepth is the deepest directory level below dir that is entered.
	// Zero lists only the files directly in dir.
	MaxDepth int
	// Skip excludes an entry (and, for directories, everything below it).
	// name is relative to the root of fsys.
	Skip func(name string, d fs.DirEntry) bool
	// Logger receives debug records for directories cut off by MaxDepth.
	Logger *slog.Logger
}

// ListFiles returns the names of all non-directory entries below dir,
// relative to the root of fsys, sorted lexicographically.
func ListFiles(fsys fs.FS, dir string, opts ListOptions) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	dir = path.Clean(dir)

	var files []string
	err := fs.WalkDir(fsys, dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name == dir {
			return nil
		}
		if opts.Skip != nil && opts.Skip(name, d) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if depthBelow(dir, name) > opts.MaxDepth {
				logger.Debug("skipping directory beyond scan depth", "dir", name, "max_depth", opts.MaxDepth)
				return fs.SkipDir
			}
			return nil
		}
		files = append(files, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("source: list %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// depthBelow returns how many directory levels name sits below dir.
// A direct child directory has depth 1.
func depthBelow(dir, name string) int {
	rel := name
	if dir != "." {
		rel = strings.TrimPrefix(name, dir+"/")
	}
	return strings.Count(rel, "/") + 1
}
