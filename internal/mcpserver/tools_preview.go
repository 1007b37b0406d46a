package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type previewInput struct {
	Project string  `json:"project,omitempty" jsonschema:"Project root directory containing .variantform.yaml (default: VARIANTFORM_PROJECT)"`
	Surface string  `json:"surface"           jsonschema:"Concrete surface path relative to the project root"`
	Variant string  `json:"variant,omitempty" jsonschema:"Variant name used to label issues"`
	Content *string `json:"content,omitempty" jsonschema:"Override content to preview; omit to preview the base content"`
}

type previewOutput struct {
	Surface     string          `json:"surface"`
	Resolved    bool            `json:"resolved"`
	HasOverride bool            `json:"has_override"`
	Content     string          `json:"content,omitempty"`
	Issues      []validateIssue `json:"issues,omitempty"`
}

func handlePreview(_ context.Context, _ *mcp.CallToolRequest, input previewInput) (*mcp.CallToolResult, previewOutput, error) {
	var override []byte
	if input.Content != nil {
		// Enforce inline content size limit.
		if int64(len(*input.Content)) > cfg.MaxInlineSize {
			return errResult(fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; set VARIANTFORM_MAX_INLINE_SIZE to increase",
				len(*input.Content), cfg.MaxInlineSize)), previewOutput{}, nil
		}
		override = []byte(*input.Content)
	}

	p, err := openProject(input.Project)
	if err != nil {
		return errResult(err), previewOutput{}, nil
	}
	preview, err := p.Preview(input.Variant, input.Surface, override)
	if err != nil {
		return errResult(err), previewOutput{}, nil
	}

	output := previewOutput{Surface: input.Surface}
	if len(preview.Issues) > 0 {
		output.Issues = toValidateIssues(preview.Issues)
	}
	if preview.Result != nil {
		output.Resolved = true
		output.HasOverride = preview.Result.HasOverride
		output.Content = preview.Result.Content
	}
	return nil, output, nil
}
