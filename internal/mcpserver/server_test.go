package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		offset int
		limit  int
		want   []int
	}{
		{name: "default limit returns all when under 100", offset: 0, limit: 0, want: []int{0, 1, 2, 3, 4}},
		{name: "explicit limit", offset: 0, limit: 2, want: []int{0, 1}},
		{name: "offset only", offset: 2, limit: 0, want: []int{2, 3, 4}},
		{name: "offset and limit", offset: 1, limit: 2, want: []int{1, 2}},
		{name: "offset at end", offset: 5, limit: 0, want: nil},
		{name: "negative offset", offset: -1, limit: 0, want: nil},
		{name: "limit beyond end", offset: 3, limit: 10, want: []int{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(items, tt.offset, tt.limit))
		})
	}
}

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))
	assert.Equal(t, "open <path>: no such file",
		sanitizeError(errors.New("open /home/user/project/.variantform.yaml: no such file")))
	assert.Equal(t, `variant "acme" not found`, sanitizeError(errors.New(`variant "acme" not found`)))
}

func TestErrResult(t *testing.T) {
	res := errResult(errors.New("boom"))
	assert.True(t, res.IsError)
	assert.Len(t, res.Content, 1)
}
