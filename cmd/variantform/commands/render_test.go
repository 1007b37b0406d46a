package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	headers := []string{"VARIANT", "OVERRIDES", "VIOLATIONS"}
	rows := [][]string{
		{"acme", "3", "0"},
		{"globex-enterprise", "4", "1"},
	}

	RenderSummaryTable(&buf, headers, rows, false)

	want := "VARIANT            OVERRIDES  VIOLATIONS\n" +
		"acme               3          0\n" +
		"globex-enterprise  4          1\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderSummaryTable_Quiet(t *testing.T) {
	var buf bytes.Buffer
	RenderSummaryTable(&buf, []string{"PATH", "FORMAT"}, [][]string{{"a.json", "json"}, {"b.css", "css"}}, true)
	assert.Equal(t, "a.json\tjson\nb.css\tcss\n", buf.String())
}

func TestRenderSummaryTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderSummaryTable(&buf, []string{"PATH"}, nil, false)
	assert.Empty(t, buf.String())
}
