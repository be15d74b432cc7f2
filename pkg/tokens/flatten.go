package tokens

import (
	"errors"
	"fmt"
)

// FlatToken is one fully resolved leaf of a token tree.
type FlatToken struct {
	// Path is the dot-path of the leaf within the tree.
	Path string `json:"path"`
	// Raw is the value as written in the document, possibly a
	// reference.
	Raw string `json:"raw"`
	// Value is the fully dereferenced value.
	Value string `json:"value"`
	// Leaf carries the leaf's descriptive metadata.
	Leaf Leaf `json:"-"`
}

// Problem describes one token that failed to resolve.
type Problem struct {
	Path string
	Err  error
}

// Flatten walks the tree and resolves every leaf, returning the flat
// list in deterministic (path-sorted) order. Leaves that fail to
// resolve are omitted from the list and reported in the returned
// error, one joined entry per broken token, so a single pass surfaces
// every broken reference rather than just the first.
func Flatten(tree Tree) ([]FlatToken, error) {
	if tree == nil {
		return nil, &InvalidArgumentError{Reason: "token tree must be a non-nil mapping"}
	}

	var flat []FlatToken
	var errs []error

	Walk(tree, func(path string, node map[string]any) {
		value, err := Resolve("{"+path+"}", tree)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return
		}

		token := FlatToken{Path: path, Value: value}
		if raw, ok := node["value"].(string); ok {
			token.Raw = raw
		}
		if leaf, ok := AsLeaf(node); ok {
			token.Leaf = *leaf
		}
		flat = append(flat, token)
	})

	return flat, errors.Join(errs...)
}

// Lint resolves every leaf of the tree and returns one Problem per
// token that fails, in path order. A healthy tree yields nil.
func Lint(tree Tree) []Problem {
	if tree == nil {
		return []Problem{{Err: &InvalidArgumentError{Reason: "token tree must be a non-nil mapping"}}}
	}

	var problems []Problem
	Walk(tree, func(path string, node map[string]any) {
		if _, err := Resolve("{"+path+"}", tree); err != nil {
			problems = append(problems, Problem{Path: path, Err: err})
		}
	})
	return problems
}
