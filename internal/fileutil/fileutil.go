// Package fileutil holds the permission modes used when the CLI writes files.
package fileutil

import "os"

// ReadableByAll is the mode for files written into a project (manifest,
// placeholders, resolved surfaces). They are committed and read by tools.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the mode for directories created inside a project.
const DirReadableByAll os.FileMode = 0o755
