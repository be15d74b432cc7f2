package tokens

import "sort"

// Tree is a nested token mapping: string keys pointing at subtrees or
// leaf objects. Insertion order is irrelevant and keys are unique per
// level. The resolver only ever reads a Tree; callers sharing one
// across goroutines must treat it as immutable or Clone it first.
type Tree map[string]any

// Resolve expands ref against the tree. See the package-level Resolve.
func (t Tree) Resolve(ref string) (string, error) {
	return Resolve(ref, t)
}

// Get returns the node at the given dot-path segments without
// resolving references, or false when the path does not exist.
func (t Tree) Get(segments ...string) (any, bool) {
	var cursor any = map[string]any(t)
	for _, segment := range segments {
		node, ok := asObject(cursor)
		if !ok {
			return nil, false
		}
		cursor, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return cursor, true
}

// Clone returns a deep copy of the tree. Nested maps are copied;
// scalar values are shared.
func Clone(tree Tree) Tree {
	if tree == nil {
		return nil
	}
	return Tree(cloneValue(map[string]any(tree)).(map[string]any))
}

func cloneValue(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = cloneValue(child)
		}
		return out
	case Tree:
		return cloneValue(map[string]any(node))
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = cloneValue(child)
		}
		return out
	default:
		return v
	}
}

// Walk visits every leaf of the tree in depth-first order with keys
// sorted per level, calling fn with the leaf's dot-path and its raw
// node. A node counts as a leaf when it carries a "value" key.
func Walk(tree Tree, fn func(path string, leaf map[string]any)) {
	walkObject("", map[string]any(tree), fn)
}

func walkObject(prefix string, node map[string]any, fn func(path string, leaf map[string]any)) {
	for _, key := range sortedKeys(node) {
		child, ok := asObject(node[key])
		if !ok {
			continue
		}
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if _, isLeaf := child["value"]; isLeaf {
			fn(path, child)
			continue
		}
		walkObject(path, child, fn)
	}
}

// asObject normalizes the two map shapes a tree node can take: plain
// map[string]any (as produced by the parsers) and Tree (as written in
// caller literals).
func asObject(v any) (map[string]any, bool) {
	switch node := v.(type) {
	case map[string]any:
		return node, node != nil
	case Tree:
		return map[string]any(node), node != nil
	default:
		return nil, false
	}
}

func sortedKeys(node map[string]any) []string {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
