package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/variantform/variantform"
)

type diffInput struct {
	Project string `json:"project,omitempty" jsonschema:"Project root directory containing .variantform.yaml (default: VARIANTFORM_PROJECT)"`
	Variant string `json:"variant"           jsonschema:"Variant name (a directory under variants/)"`
	Patch   *bool  `json:"patch,omitempty"   jsonschema:"Include a text patch from base to resolved content"`
}

type diffEntry struct {
	Surface      string   `json:"surface"`
	OverrideKeys []string `json:"override_keys"`
	Patch        string   `json:"patch,omitempty"`
	Additions    int      `json:"additions,omitempty"`
	Deletions    int      `json:"deletions,omitempty"`
}

type diffOutput struct {
	Variant string      `json:"variant"`
	Count   int         `json:"count"`
	Entries []diffEntry `json:"entries"`
}

func handleDiff(_ context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	patch := cfg.DiffPatch
	if input.Patch != nil {
		patch = *input.Patch
	}

	p, err := openProject(input.Project, variantform.WithDiffPatches(patch))
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}
	result, err := p.Diff(input.Variant)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	output := diffOutput{
		Variant: result.Variant,
		Count:   len(result.Entries),
		Entries: make([]diffEntry, 0, len(result.Entries)),
	}
	for _, e := range result.Entries {
		output.Entries = append(output.Entries, diffEntry{
			Surface:      e.Surface,
			OverrideKeys: e.OverrideKeys,
			Patch:        e.Patch,
			Additions:    e.Additions,
			Deletions:    e.Deletions,
		})
	}
	return nil, output, nil
}
