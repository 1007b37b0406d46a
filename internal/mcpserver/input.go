package mcpserver

import (
	"github.com/variantform/variantform"
)

// openProject opens the project rooted at dir, or at cfg.Project when dir is
// empty, applying server defaults before extra. Every tool call reads the
// project afresh.
func openProject(dir string, extra ...variantform.ProjectOption) (*variantform.Project, error) {
	if dir == "" {
		dir = cfg.Project
	}
	opts := []variantform.ProjectOption{
		variantform.WithMaxDepth(cfg.MaxDepth),
		variantform.WithStaleKeyMode(cfg.StaleKeys),
	}
	opts = append(opts, extra...)
	return variantform.OpenDir(dir, opts...)
}
