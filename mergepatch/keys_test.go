package mergepatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopLevelKeys(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, TopLevelKeys(mustJSON(t, `{"b":{"x":1},"a":2}`)))
	assert.Nil(t, TopLevelKeys(mustJSON(t, `[1]`)))
	assert.Equal(t, []string{}, TopLevelKeys(mustJSON(t, `{}`)))
}

func TestKeyPaths(t *testing.T) {
	v := mustJSON(t, `{"a":{"b":1,"c":{"d":2}},"e":[{"f":3}]}`)
	assert.Equal(t, []string{"a", "a.b", "a.c", "a.c.d", "e"}, KeyPaths(v))
}

func TestMissingKeys(t *testing.T) {
	base := mustJSON(t, `{"a":1}`)
	override := mustJSON(t, `{"a":2,"removed_key":true}`)
	assert.Equal(t, []string{"removed_key"}, MissingKeys(base, override))
	assert.Nil(t, MissingKeys(mustJSON(t, `[1]`), override))
	assert.Nil(t, MissingKeys(base, mustJSON(t, `"x"`)))
}

func TestMissingKeyPaths(t *testing.T) {
	base := mustJSON(t, `{"theme":{"primary":"#000"},"limits":{"max":1},"flag":true}`)
	override := mustJSON(t, `{"theme":{"primary":"#f00","accent":"#0f0"},"gone":{"x":1},"flag":{"nested":true}}`)

	// "gone" is reported once; "flag" is a scalar in base so nothing beneath it is stale.
	assert.Equal(t, []string{"theme.accent", "gone"}, MissingKeyPaths(base, override))
}
