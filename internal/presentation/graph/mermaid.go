// Package graph renders a token tree's reference structure as a
// Mermaid diagram.
package graph

import (
	"fmt"
	"strings"

	"github.com/weftlabs/weft/pkg/tokens"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a
// flattened token list. Alias tokens (whose raw value is a reference)
// get an arrow to their target, labelled with the resolved value:
// - Alias: [/Parallelogram/]
// - Literal: [Rectangle]
func GenerateMermaid(flat []tokens.FlatToken) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, tok := range flat {
		safeID := sanitizeMermaidID(tok.Path)

		opener, closer := "[", "]"
		if tokens.IsReference(tok.Raw) {
			opener, closer = "[/", "/]" // Alias
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, tok.Path, closer))

		if target := referenceTarget(tok.Raw); target != "" {
			safeTo := sanitizeMermaidID(target)
			// Escape double quotes in the value for Mermaid labels
			safeValue := strings.ReplaceAll(tok.Value, "\"", "'")
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, safeValue, safeTo))
		}
	}

	return sb.String()
}

// referenceTarget returns the dot path inside a {reference}, or ""
// for literal values.
func referenceTarget(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !tokens.IsReference(trimmed) {
		return ""
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "{"), "}")
	return strings.TrimSpace(inner)
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
