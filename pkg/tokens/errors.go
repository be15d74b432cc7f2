package tokens

import (
	"fmt"
	"strings"
)

// maxKeyHints bounds the "Available keys" hint carried by
// PathNotFoundError messages.
const maxKeyHints = 10

// InvalidArgumentError reports a misuse of the resolver at its
// boundary: a nil token tree, or a leaf whose value is missing or not
// a string. It signals a programmer or data error, not a transient
// condition.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// PathNotFoundError reports a dot-path segment that could not be found
// while traversing the token tree.
type PathNotFoundError struct {
	// Path is the prefix of Ref up to and including the segment that
	// failed to match.
	Path string
	// Ref is the full dot-path being resolved when traversal failed.
	Ref string
	// Available holds up to maxKeyHints sibling keys of the failing
	// cursor, sorted. It is empty when the cursor was not an object.
	Available []string
}

func (e *PathNotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "token path %q not found while resolving %q", e.Path, e.Ref)
	if len(e.Available) > 0 {
		b.WriteString(". Available keys: ")
		b.WriteString(strings.Join(e.Available, ", "))
	}
	return b.String()
}

// CircularReferenceError reports a dot-path encountered a second time
// within a single resolution chain.
type CircularReferenceError struct {
	// Key is the dot-path that closed the cycle.
	Key string
	// Chain is the sequence of dot-paths visited before the cycle was
	// detected, in visit order.
	Chain []string
}

func (e *CircularReferenceError) Error() string {
	if len(e.Chain) > 0 {
		return fmt.Sprintf("circular token reference %q (chain: %s -> %s)",
			e.Key, strings.Join(e.Chain, " -> "), e.Key)
	}
	return fmt.Sprintf("circular token reference %q", e.Key)
}
