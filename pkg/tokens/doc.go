/*
Package tokens implements the design-token reference resolver and the
token tree it operates on.

A token tree is a nested mapping of string keys to subtrees or leaf
objects. A leaf carries a string "value" which is either a literal
(e.g. a hex colour) or a reference of the form "{dot.path}" pointing at
another leaf in the same tree. Resolve follows such references,
including chains of indirection, until it reaches a literal:

	tree, _ := tokens.ParseJSON([]byte(`{
		"color": {
			"base":   {"value": "#0f172a"},
			"linked": {"value": "{color.base}"}
		}
	}`))

	v, err := tokens.Resolve("{color.linked}", tree)
	// v == "#0f172a"

Resolution is pure: the tree is never mutated, nothing is cached
between calls, and each call carries its own visited set so cycles are
always detected. Failures are typed (InvalidArgumentError,
PathNotFoundError, CircularReferenceError) and self-describing, so a
caller can surface the raw message in build output and still tell the
user which token reference is broken and why.

The package also ships the plumbing a token pipeline needs around the
resolver: document parsing (JSON and YAML), deep merging of several
documents, and flattening a tree into its fully resolved leaves.
*/
package tokens
