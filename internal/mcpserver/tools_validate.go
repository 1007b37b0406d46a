package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/variantform/variantform"
	"github.com/variantform/variantform/validator"
)

type validateInput struct {
	Project   string `json:"project,omitempty"    jsonschema:"Project root directory containing .variantform.yaml (default: VARIANTFORM_PROJECT)"`
	StaleKeys string `json:"stale_keys,omitempty" jsonschema:"Stale key detection: recursive (dot paths, default) or top-level"`
	Offset    int    `json:"offset,omitempty"     jsonschema:"Skip the first N issues (for pagination)"`
	Limit     int    `json:"limit,omitempty"      jsonschema:"Maximum number of issues to return (default 100)"`
}

type validateIssue struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Variant  string `json:"variant"`
	Surface  string `json:"surface,omitempty"`
	Key      string `json:"key,omitempty"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	VariantCount int             `json:"variant_count"`
	FileCount    int             `json:"file_count"`
	Returned     int             `json:"returned"`
	Issues       []validateIssue `json:"issues,omitempty"`
}

func toValidateIssues(in []validator.Issue) []validateIssue {
	out := make([]validateIssue, 0, len(in))
	for _, i := range in {
		out = append(out, validateIssue{
			Kind:     string(i.Kind),
			Severity: i.Severity.String(),
			Variant:  i.Variant,
			Surface:  i.Surface,
			Key:      i.Key,
			Message:  i.Message,
			Line:     i.Line,
			Column:   i.Column,
		})
	}
	return out
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted.
	mode := cfg.StaleKeys
	if input.StaleKeys != "" {
		m, err := validator.ParseStaleKeyMode(input.StaleKeys)
		if err != nil {
			return errResult(err), validateOutput{}, nil
		}
		mode = m
	}

	p, err := openProject(input.Project, variantform.WithStaleKeyMode(mode))
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}
	result, err := p.Validate()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        result.Valid,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		VariantCount: result.VariantCount,
		FileCount:    result.FileCount,
	}
	output.Issues = paginate(toValidateIssues(result.Issues), input.Offset, input.Limit)
	output.Returned = len(output.Issues)
	return nil, output, nil
}
