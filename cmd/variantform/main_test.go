package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"valiate", "validate"},
		{"validat", "validate"},
		{"reslove", "resolve"},
		{"resolv", "resolve"},
		{"stauts", "status"},
		{"dif", "diff"},
		{"surface", "surfaces"},
		{"crate", "create"},
		{"ini", "init"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"validatation", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("diff", "diff"))
	assert.Equal(t, 1, editDistance("dif", "diff"))
	assert.Equal(t, 2, editDistance("stauts", "status"))
	assert.Equal(t, 4, editDistance("", "init"))
}

func TestRun_ExitCodes(t *testing.T) {
	assert.Equal(t, 1, run(nil), "no command")
	assert.Equal(t, 0, run([]string{"help"}))
	assert.Equal(t, 0, run([]string{"version"}))
	assert.Equal(t, 1, run([]string{"bogus"}))
	assert.Equal(t, 0, run([]string{"resolve", "--help"}))
	assert.Equal(t, 1, run([]string{"resolve"}), "missing variant")
}
