package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveInput struct {
	Project string `json:"project,omitempty" jsonschema:"Project root directory containing .variantform.yaml (default: VARIANTFORM_PROJECT)"`
	Variant string `json:"variant"           jsonschema:"Variant name (a directory under variants/)"`
	Surface string `json:"surface,omitempty" jsonschema:"Resolve only this concrete surface path"`
}

type resolvedSurface struct {
	Surface     string `json:"surface"`
	Format      string `json:"format"`
	Strategy    string `json:"strategy"`
	HasOverride bool   `json:"has_override"`
	Content     string `json:"content"`
}

type resolveOutput struct {
	Variant       string            `json:"variant"`
	OverrideCount int               `json:"override_count"`
	Surfaces      []resolvedSurface `json:"surfaces"`
}

func handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	p, err := openProject(input.Project)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	result, err := p.Resolve(input.Variant, input.Surface)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	output := resolveOutput{
		Variant:       result.Variant,
		OverrideCount: result.OverrideCount(),
		Surfaces:      make([]resolvedSurface, 0, len(result.Surfaces)),
	}
	for _, s := range result.Surfaces {
		output.Surfaces = append(output.Surfaces, resolvedSurface{
			Surface:     s.Surface,
			Format:      string(s.Format),
			Strategy:    string(s.Strategy),
			HasOverride: s.HasOverride,
			Content:     s.Content,
		})
	}
	return nil, output, nil
}
