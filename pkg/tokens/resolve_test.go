package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_LiteralPassThrough(t *testing.T) {
	tree := Tree{"color": map[string]any{"brand": map[string]any{"value": "#fff"}}}

	literals := []string{
		"#ff0077",
		"16px",
		"plain text",
		"",
		"{unclosed",
		"not.a.ref}",
		"{}", // empty braces do not match the reference pattern
	}

	for _, s := range literals {
		got, err := Resolve(s, tree)
		require.NoError(t, err, "literal %q", s)
		assert.Equal(t, s, got)
	}
}

func TestResolve_Direct(t *testing.T) {
	tree := Tree{"color": map[string]any{"brand": map[string]any{"value": "#fff"}}}

	got, err := Resolve("{color.brand}", tree)
	require.NoError(t, err)
	assert.Equal(t, "#fff", got)
}

func TestResolve_Chained(t *testing.T) {
	tree := Tree{"color": map[string]any{
		"base":   map[string]any{"value": "#000"},
		"linked": map[string]any{"value": "{color.base}"},
	}}

	got, err := Resolve("{color.linked}", tree)
	require.NoError(t, err)
	assert.Equal(t, "#000", got)
}

func TestResolve_WhitespaceAroundReference(t *testing.T) {
	tree := Tree{"color": map[string]any{"brand": map[string]any{"value": "#fff"}}}

	got, err := Resolve("  { color.brand }  ", tree)
	require.NoError(t, err)
	assert.Equal(t, "#fff", got)
}

func TestResolve_CycleDetection(t *testing.T) {
	tree := Tree{
		"a": map[string]any{"value": "{b}"},
		"b": map[string]any{"value": "{a}"},
	}

	_, err := Resolve("{a}", tree)
	require.Error(t, err)

	var circErr *CircularReferenceError
	require.ErrorAs(t, err, &circErr)
	assert.Contains(t, []string{"a", "b"}, circErr.Key)
	assert.Contains(t, err.Error(), circErr.Key)
}

func TestResolve_SelfReference(t *testing.T) {
	tree := Tree{"a": map[string]any{"value": "{a}"}}

	_, err := Resolve("{a}", tree)

	var circErr *CircularReferenceError
	require.ErrorAs(t, err, &circErr)
	assert.Equal(t, "a", circErr.Key)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestResolve_MissingPathWithHint(t *testing.T) {
	tree := Tree{"color": map[string]any{
		"brand": map[string]any{"value": "#fff"},
		"base":  map[string]any{"value": "#000"},
	}}

	_, err := Resolve("{color.missing}", tree)
	require.Error(t, err)

	var pathErr *PathNotFoundError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "color.missing", pathErr.Path)
	assert.Equal(t, "color.missing", pathErr.Ref)
	assert.Equal(t, []string{"base", "brand"}, pathErr.Available)

	msg := err.Error()
	assert.Contains(t, msg, "color.missing")
	assert.Contains(t, msg, "brand")
	assert.Contains(t, msg, "base")
}

func TestResolve_MissingRootSegment(t *testing.T) {
	tree := Tree{"color": map[string]any{"brand": map[string]any{"value": "#fff"}}}

	_, err := Resolve("{spacing.md}", tree)

	var pathErr *PathNotFoundError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "spacing", pathErr.Path)
	assert.Equal(t, "spacing.md", pathErr.Ref)
	assert.Equal(t, []string{"color"}, pathErr.Available)
}

func TestResolve_DescendIntoScalar(t *testing.T) {
	// "brand" terminates at a leaf; descending further must fail
	// without a key hint, since the cursor is not an object.
	tree := Tree{"color": map[string]any{"brand": map[string]any{"value": "#fff"}}}

	_, err := Resolve("{color.brand.value.deep}", tree)

	var pathErr *PathNotFoundError
	require.ErrorAs(t, err, &pathErr)
	assert.Empty(t, pathErr.Available)
}

func TestResolve_KeyHintBound(t *testing.T) {
	siblings := map[string]any{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		siblings[k] = map[string]any{"value": "#000"}
	}
	tree := Tree{"color": siblings}

	_, err := Resolve("{color.zz}", tree)

	var pathErr *PathNotFoundError
	require.ErrorAs(t, err, &pathErr)
	assert.Len(t, pathErr.Available, 10)
}

func TestResolve_InvalidLeaf(t *testing.T) {
	cases := []struct {
		name string
		tree Tree
	}{
		{"numeric value", Tree{"a": map[string]any{"value": 1}}},
		{"missing value", Tree{"a": map[string]any{"description": "no value"}}},
		{"nil value", Tree{"a": map[string]any{"value": nil}}},
		{"scalar node", Tree{"a": "#fff"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve("{a}", tc.tree)

			var argErr *InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Contains(t, err.Error(), `"a"`)
		})
	}
}

func TestResolve_NilTree(t *testing.T) {
	_, err := Resolve("{a}", nil)

	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)

	// Even a literal ref is rejected: argument validation runs first.
	_, err = Resolve("literal", nil)
	require.ErrorAs(t, err, &argErr)
}

func TestResolve_IdempotentOnLiterals(t *testing.T) {
	tree := Tree{"color": map[string]any{"brand": map[string]any{"value": "#fff"}}}

	first, err := Resolve("#abcdef", tree)
	require.NoError(t, err)
	second, err := Resolve(first, tree)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_DoesNotMutateTree(t *testing.T) {
	tree := Tree{"color": map[string]any{
		"base":   map[string]any{"value": "#000"},
		"linked": map[string]any{"value": "{color.base}"},
	}}
	snapshot := Clone(tree)

	_, err := Resolve("{color.linked}", tree)
	require.NoError(t, err)
	_, _ = Resolve("{color.nope}", tree)

	assert.Equal(t, map[string]any(snapshot), map[string]any(tree))
}

func TestResolve_LongChain(t *testing.T) {
	tree := Tree{
		"a": map[string]any{"value": "{b}"},
		"b": map[string]any{"value": "{c}"},
		"c": map[string]any{"value": "{d}"},
		"d": map[string]any{"value": "end"},
	}

	got, err := Resolve("{a}", tree)
	require.NoError(t, err)
	assert.Equal(t, "end", got)
}

func TestResolve_TreeTypedSubtrees(t *testing.T) {
	// Caller-built literals may nest Tree instead of map[string]any.
	tree := Tree{"color": Tree{"brand": Tree{"value": "#fff"}}}

	got, err := Resolve("{color.brand}", tree)
	require.NoError(t, err)
	assert.Equal(t, "#fff", got)
}

func TestIsReference(t *testing.T) {
	assert.True(t, IsReference("{color.brand}"))
	assert.True(t, IsReference("  {color.brand}  "))
	assert.False(t, IsReference("#fff"))
	assert.False(t, IsReference("{}"))
	assert.False(t, IsReference("color.brand"))
}
