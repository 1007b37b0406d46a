package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/variantform/variantform/surface"
)

type surfacesInput struct {
	Project string `json:"project,omitempty" jsonschema:"Project root directory containing .variantform.yaml (default: VARIANTFORM_PROJECT)"`
	Expand  bool   `json:"expand,omitempty"  jsonschema:"Expand glob patterns into the concrete base files they match"`
}

type surfaceSummary struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	Strategy string `json:"strategy"`
	Glob     bool   `json:"glob,omitempty"`
}

type surfacesOutput struct {
	Count    int              `json:"count"`
	Surfaces []surfaceSummary `json:"surfaces"`
}

func handleSurfaces(_ context.Context, _ *mcp.CallToolRequest, input surfacesInput) (*mcp.CallToolResult, surfacesOutput, error) {
	p, err := openProject(input.Project)
	if err != nil {
		return errResult(err), surfacesOutput{}, nil
	}

	var set surface.Set
	if input.Expand {
		set, err = p.ExpandSurfaces()
	} else {
		var m *surface.Manifest
		m, err = p.Manifest()
		if m != nil {
			set = m.Surfaces
		}
	}
	if err != nil {
		return errResult(err), surfacesOutput{}, nil
	}

	output := surfacesOutput{Count: len(set), Surfaces: make([]surfaceSummary, 0, len(set))}
	for _, s := range set {
		output.Surfaces = append(output.Surfaces, surfaceSummary{
			Path:     s.Path,
			Format:   string(s.Format),
			Strategy: string(s.Strategy),
			Glob:     s.IsGlob(),
		})
	}
	return nil, output, nil
}
