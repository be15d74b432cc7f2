package tokens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	tree, err := ParseJSON([]byte(`{
		"color": {
			"brand": {"value": "#fff", "description": "brand white"}
		}
	}`))
	require.NoError(t, err)

	got, err := tree.Resolve("{color.brand}")
	require.NoError(t, err)
	assert.Equal(t, "#fff", got)
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	tree, err := ParseYAML([]byte(`
color:
  base:
    value: "#000"
  linked:
    value: "{color.base}"
`))
	require.NoError(t, err)

	got, err := tree.Resolve("{color.linked}")
	require.NoError(t, err)
	assert.Equal(t, "#000", got)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "tokens.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"a":{"value":"1"}}`), 0644))
	yamlPath := filepath.Join(dir, "tokens.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("b:\n  value: \"2\"\n"), 0644))

	jt, err := Load(jsonPath)
	require.NoError(t, err)
	v, err := jt.Resolve("{a}")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	yt, err := Load(yamlPath)
	require.NoError(t, err)
	v, err = yt.Resolve("{b}")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	_, err = Load(filepath.Join(dir, "tokens.toml"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base, err := ParseJSON([]byte(`{
		"color": {
			"brand": {"value": "#fff"},
			"base":  {"value": "#000"}
		}
	}`))
	require.NoError(t, err)

	override, err := ParseJSON([]byte(`{
		"color": {
			"brand": {"value": "#f0f"}
		},
		"spacing": {
			"md": {"value": "16px"}
		}
	}`))
	require.NoError(t, err)

	merged, err := Merge(base, override)
	require.NoError(t, err)

	v, err := merged.Resolve("{color.brand}")
	require.NoError(t, err)
	assert.Equal(t, "#f0f", v, "later document wins")

	v, err = merged.Resolve("{color.base}")
	require.NoError(t, err)
	assert.Equal(t, "#000", v, "untouched siblings survive the merge")

	v, err = merged.Resolve("{spacing.md}")
	require.NoError(t, err)
	assert.Equal(t, "16px", v)

	// Inputs are not mutated.
	v, err = base.Resolve("{color.brand}")
	require.NoError(t, err)
	assert.Equal(t, "#fff", v)
}

func TestClone_Independent(t *testing.T) {
	tree := Tree{"color": map[string]any{"brand": map[string]any{"value": "#fff"}}}
	clone := Clone(tree)

	brand := clone["color"].(map[string]any)["brand"].(map[string]any)
	brand["value"] = "#000"

	v, err := tree.Resolve("{color.brand}")
	require.NoError(t, err)
	assert.Equal(t, "#fff", v)
}

func TestGet(t *testing.T) {
	tree := Tree{"color": map[string]any{"brand": map[string]any{"value": "#fff"}}}

	node, ok := tree.Get("color", "brand")
	require.True(t, ok)
	assert.True(t, IsLeaf(node))

	_, ok = tree.Get("color", "missing")
	assert.False(t, ok)
}

func TestWalk_Order(t *testing.T) {
	tree := Tree{
		"spacing": map[string]any{"md": map[string]any{"value": "16px"}},
		"color": map[string]any{
			"brand": map[string]any{"value": "#fff"},
			"base":  map[string]any{"value": "#000"},
		},
	}

	var paths []string
	Walk(tree, func(path string, _ map[string]any) {
		paths = append(paths, path)
	})

	assert.Equal(t, []string{"color.base", "color.brand", "spacing.md"}, paths)
}

func TestAsLeaf(t *testing.T) {
	leaf, ok := AsLeaf(map[string]any{
		"value":       "#fff",
		"type":        "color",
		"description": "brand white",
	})
	require.True(t, ok)
	assert.Equal(t, "#fff", leaf.Value)
	assert.Equal(t, "color", leaf.Type)
	assert.Equal(t, "brand white", leaf.Description)

	_, ok = AsLeaf(map[string]any{"description": "no value"})
	assert.False(t, ok)

	_, ok = AsLeaf("#fff")
	assert.False(t, ok)
}
