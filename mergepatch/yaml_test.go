package mergepatch

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantform/variantform/vferrors"
)

func mustYAML(t *testing.T, s string) Value {
	t.Helper()
	v, err := ParseYAML([]byte(s))
	require.NoError(t, err)
	return v
}

func TestParseYAML(t *testing.T) {
	t.Run("mapping order and scalar types", func(t *testing.T) {
		v := mustYAML(t, "zeta: 1\nalpha: true\nmid: ~\nname: app\nratio: 0.5\nhex: 0x1F\nquoted: '10'\n")
		assert.Equal(t, `{"zeta":1,"alpha":true,"mid":null,"name":"app","ratio":0.5,"hex":31,"quoted":"10"}`, compactJSON(t, v))
	})

	t.Run("empty document is null", func(t *testing.T) {
		assert.Equal(t, Null{}, mustYAML(t, ""))
		assert.Equal(t, Null{}, mustYAML(t, "# only a comment\n"))
	})

	t.Run("non-string keys become strings", func(t *testing.T) {
		v := mustYAML(t, "1: one\ntrue: yes\n")
		assert.Equal(t, []string{"1", "true"}, TopLevelKeys(v))
	})

	t.Run("aliases and merge keys", func(t *testing.T) {
		v := mustYAML(t, `defaults: &defaults
  adapter: postgres
  host: localhost
development:
  <<: *defaults
  host: dev.local
  database: dev
`)
		dev, ok := v.(*Object).Get("development")
		require.True(t, ok)
		assert.Equal(t, `{"adapter":"postgres","host":"dev.local","database":"dev"}`, compactJSON(t, dev))
	})

	t.Run("explicit key before merge key wins", func(t *testing.T) {
		v := mustYAML(t, "base: &b\n  a: 1\n  b: 2\nchild:\n  a: 9\n  <<: *b\n")
		child, _ := v.(*Object).Get("child")
		assert.Equal(t, `{"a":9,"b":2}`, compactJSON(t, child))
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := ParseYAML([]byte("a: [1, 2\nb: c"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, vferrors.ErrParse))
	})

	t.Run("alias bomb is bounded", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("a0: &a0 [x, x, x, x, x, x, x, x, x, x]\n")
		for i := 1; i < 9; i++ {
			refs := strings.TrimSuffix(strings.Repeat(fmt.Sprintf("*a%d, ", i-1), 10), ", ")
			fmt.Fprintf(&b, "a%d: &a%d [%s]\n", i, i, refs)
		}
		_, err := ParseYAML([]byte(b.String()))
		require.Error(t, err)
		assert.True(t, errors.Is(err, vferrors.ErrResourceLimit))
	})
}

func TestMarshalYAML(t *testing.T) {
	t.Run("flat mapping", func(t *testing.T) {
		out, err := MarshalYAML(mustJSON(t, `{"name":"app","port":8080,"debug":false,"note":null}`))
		require.NoError(t, err)
		assert.Equal(t, "name: app\nport: 8080\ndebug: false\nnote: null\n", string(out))
	})

	t.Run("strings that look like other types are quoted", func(t *testing.T) {
		out, err := MarshalYAML(mustJSON(t, `{"a":"true","b":"10"}`))
		require.NoError(t, err)
		back := mustYAML(t, string(out))
		assert.Equal(t, `{"a":"true","b":"10"}`, compactJSON(t, back))
	})

	t.Run("round trip keeps structure", func(t *testing.T) {
		src := mustJSON(t, `{"list":[1,"two",{"three":3}],"nested":{"deep":{"x":1.5}},"empty":{},"none":[],"multi":"line one\nline two"}`)
		out, err := MarshalYAML(src)
		require.NoError(t, err)
		assert.True(t, Equal(src, mustYAML(t, string(out))), "round trip mismatch:\n%s", out)
		assert.Contains(t, string(out), "multi: |-\n")
	})

	t.Run("long strings are not wrapped", func(t *testing.T) {
		long := strings.Repeat("word ", 40)
		out, err := MarshalYAML(mustJSON(t, `{"text":"`+long+`end"}`))
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(out), "\n"))
	})
}

func TestMergeYAML(t *testing.T) {
	t.Run("nested merge keeps base order", func(t *testing.T) {
		base := []byte("name: app\nport: 80\nfeatures:\n  a: true\n  b: false\n")
		override := []byte("port: 8080\nfeatures:\n  b: true\n  c: true\n")

		out, err := MergeYAML(base, override)
		require.NoError(t, err)
		assert.Equal(t, "name: app\nport: 8080\nfeatures:\n  a: true\n  b: true\n  c: true\n", string(out))
	})

	t.Run("null deletes key", func(t *testing.T) {
		out, err := MergeYAML([]byte("a: 1\nb: 2\n"), []byte("a: ~\n"))
		require.NoError(t, err)
		assert.Equal(t, "b: 2\n", string(out))
	})

	t.Run("base not a mapping", func(t *testing.T) {
		_, err := MergeYAML([]byte("- a\n- b\n"), []byte("a: 1\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, vferrors.ErrNotAMapping))
		var shapeErr *vferrors.ShapeError
		require.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, vferrors.OperandBase, shapeErr.Operand)
	})

	t.Run("override not a mapping", func(t *testing.T) {
		_, err := MergeYAML([]byte("a: 1\n"), []byte("just a string\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, vferrors.ErrNotAMapping))
		var shapeErr *vferrors.ShapeError
		require.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, vferrors.OperandOverride, shapeErr.Operand)
		assert.Equal(t, "string", shapeErr.Actual)
	})
}
