package severity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"error level", SeverityError, "error"},
		{"warning level", SeverityWarning, "warning"},

		// Edge cases: Invalid severity values
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.severity.String()
			assert.Equal(t, tt.expected, result, "Severity(%d).String() = %q, want %q", tt.severity, result, tt.expected)
		})
	}
}

// TestSeverityStringConsistency verifies that all defined severity levels
// return non-empty, lowercase strings without whitespace.
func TestSeverityStringConsistency(t *testing.T) {
	for _, sev := range []Severity{SeverityError, SeverityWarning} {
		str := sev.String()
		assert.NotEmpty(t, str)
		assert.Equal(t, strings.ToLower(str), str)
		assert.NotContains(t, str, " ")
	}
}

func TestSeverityText(t *testing.T) {
	data, err := json.Marshal(map[string]Severity{"level": SeverityWarning})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level": "warning"}`, string(data))

	var decoded struct {
		Level Severity `json:"level"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"level": "error"}`), &decoded))
	assert.Equal(t, SeverityError, decoded.Level)

	var s Severity
	assert.Error(t, s.UnmarshalText([]byte("critical")))
}
