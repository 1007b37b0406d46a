package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type statusInput struct {
	Project string `json:"project,omitempty" jsonschema:"Project root directory containing .variantform.yaml (default: VARIANTFORM_PROJECT)"`
}

type variantStatus struct {
	Name          string   `json:"name"`
	OverrideCount int      `json:"override_count"`
	Overrides     []string `json:"overrides"`
	Violations    []string `json:"violations"`
}

type statusOutput struct {
	VariantCount int             `json:"variant_count"`
	Variants     []variantStatus `json:"variants"`
}

func handleStatus(_ context.Context, _ *mcp.CallToolRequest, input statusInput) (*mcp.CallToolResult, statusOutput, error) {
	p, err := openProject(input.Project)
	if err != nil {
		return errResult(err), statusOutput{}, nil
	}
	statuses, err := p.Status()
	if err != nil {
		return errResult(err), statusOutput{}, nil
	}

	output := statusOutput{VariantCount: len(statuses), Variants: make([]variantStatus, 0, len(statuses))}
	for _, s := range statuses {
		output.Variants = append(output.Variants, variantStatus{
			Name:          s.Name,
			OverrideCount: s.OverrideCount,
			Overrides:     s.Overrides,
			Violations:    s.Violations,
		})
	}
	return nil, output, nil
}
