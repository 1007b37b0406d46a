package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"single arg", "variant %s\n", []any{"acme"}, "variant acme\n"},
		{"no args", "no variants\n", nil, "no variants\n"},
		{"mixed args", "%s: %d overrides, valid=%v", []any{"globex", 4, false}, "globex: 4 overrides, valid=false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(failingWriter{}, "lost %s", "output")
	})
}
