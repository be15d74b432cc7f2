package tokens

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// refPattern matches a token reference: a dot-path wrapped in braces,
// e.g. "{color.brand.primary}". Whitespace around the braces is
// trimmed before matching; whitespace inside the braces is trimmed
// from the extracted path.
var refPattern = regexp.MustCompile(`^\{(.+)\}$`)

// IsReference reports whether s is a token reference rather than a
// literal value.
func IsReference(s string) bool {
	return refPattern.MatchString(strings.TrimSpace(s))
}

// Resolve expands ref against tree and returns the fully dereferenced
// string value. A ref that does not have the form "{dot.path}" is a
// literal and is returned unchanged. References may chain: when the
// value a path points at is itself a reference, Resolve follows it
// until a literal is reached. Each dot-path may be visited at most
// once per call, so resolution always terminates and cycles are
// reported rather than looped on.
//
// Resolve never mutates tree and keeps no state between calls, which
// makes concurrent use safe as long as callers do not mutate the tree
// themselves. Failures are fatal to the call and typed:
// *InvalidArgumentError, *PathNotFoundError or
// *CircularReferenceError, all matchable with errors.As.
func Resolve(ref string, tree Tree) (string, error) {
	if tree == nil {
		return "", &InvalidArgumentError{Reason: "token tree must be a non-nil mapping"}
	}

	// Visited set and chain are scoped to this call; nothing escapes.
	seen := make(map[string]struct{})
	var chain []string

	current := ref
	for {
		m := refPattern.FindStringSubmatch(strings.TrimSpace(current))
		if m == nil {
			// Literal terminal value.
			return current, nil
		}
		key := strings.TrimSpace(m[1])

		if _, ok := seen[key]; ok {
			return "", &CircularReferenceError{Key: key, Chain: chain}
		}
		seen[key] = struct{}{}
		chain = append(chain, key)

		segments := strings.Split(key, ".")
		var cursor any = map[string]any(tree)
		for i, segment := range segments {
			node, ok := asObject(cursor)
			if !ok {
				return "", &PathNotFoundError{
					Path: strings.Join(segments[:i+1], "."),
					Ref:  key,
				}
			}
			next, ok := node[segment]
			if !ok {
				return "", &PathNotFoundError{
					Path:      strings.Join(segments[:i+1], "."),
					Ref:       key,
					Available: keyHints(node),
				}
			}
			cursor = next
		}

		leaf, ok := asObject(cursor)
		if !ok {
			return "", &InvalidArgumentError{
				Reason: fmt.Sprintf("token %q must resolve to an object with a string value", key),
			}
		}
		value, ok := leaf["value"].(string)
		if !ok {
			return "", &InvalidArgumentError{
				Reason: fmt.Sprintf("token %q must resolve to an object with a string value", key),
			}
		}
		current = value
	}
}

// keyHints returns up to maxKeyHints keys of node, sorted so error
// messages are stable across runs.
func keyHints(node map[string]any) []string {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > maxKeyHints {
		keys = keys[:maxKeyHints]
	}
	return keys
}
