// Package defaults bundles the default token tree shipped with weft.
// The document is embedded at build time and parsed once on first use;
// the parsed tree is shared and must be treated as read-only.
package defaults

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/weftlabs/weft/pkg/tokens"
)

//go:embed tokens.json
var rawTokens []byte

var (
	once sync.Once
	tree tokens.Tree
	err  error
)

// Tree returns the bundled default token tree. Callers that need to
// mutate it must tokens.Clone it first.
func Tree() (tokens.Tree, error) {
	once.Do(func() {
		tree, err = tokens.ParseJSON(rawTokens)
		if err != nil {
			err = fmt.Errorf("bundled token document is corrupt: %w", err)
		}
	})
	return tree, err
}

// Raw returns the embedded JSON document as shipped.
func Raw() []byte {
	return rawTokens
}
