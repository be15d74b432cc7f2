package tokens

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ParseJSON parses a JSON token document into a Tree.
func ParseJSON(data []byte) (Tree, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse token document (json): %w", err)
	}
	return Tree(raw), nil
}

// ParseYAML parses a YAML token document into a Tree. Mapping keys are
// normalized to strings so the result traverses the same way a JSON
// document does.
func ParseYAML(data []byte) (Tree, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse token document (yaml): %w", err)
	}
	normalized, _ := normalizeValue(raw).(map[string]any)
	return Tree(normalized), nil
}

// Load reads and parses a token document, dispatching on the file
// extension (.json, .yaml, .yml).
func Load(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported token document %q: want .json, .yaml or .yml", path)
	}
}

// Merge deep-merges several token documents into a single tree. Later
// documents win on conflicting paths. The inputs are cloned, never
// mutated.
func Merge(trees ...Tree) (Tree, error) {
	merged := make(map[string]any)
	for _, tree := range trees {
		if tree == nil {
			continue
		}
		src := map[string]any(Clone(tree))
		if err := mergo.Merge(&merged, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge token documents: %w", err)
		}
	}
	return Tree(merged), nil
}

// normalizeValue rewrites the map shapes the YAML decoder can produce
// (map[any]any for non-string keys) into map[string]any.
func normalizeValue(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = normalizeValue(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[fmt.Sprint(k)] = normalizeValue(child)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = normalizeValue(child)
		}
		return out
	default:
		return v
	}
}
