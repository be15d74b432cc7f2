package weft

import _ "embed"

// Version is the library version, embedded from the VERSION file.
// Consumers should strings.TrimSpace it before display.
//
//go:embed VERSION
var Version string
