/*
Package weft resolves design-token references and turns token trees
into distributable artifacts.

Design tokens are the named values of a design system (colours,
spacing, typography) kept in nested JSON or YAML documents. A token's
value may point at another token with a reference of the form
"{dot.path}", and references may chain. Weft's core is the resolver
that expands such references into concrete values, detecting broken
paths and cycles along the way; around it sit a document loader, a
dist builder (CSS custom properties, SCSS, JSON) and serving surfaces
(HTTP, MCP, CLI).

# Usage

The zero-setup path resolves against the bundled default tree:

	v, err := weft.Resolve("{color.brand.primary}")

A Project loads and merges the token documents of a directory
(configured by .weft.yaml) and exposes resolution, linting and dist
building over them:

	project, err := weft.New("./design")
	if err != nil {
		log.Fatal(err)
	}

	v, err := project.Resolve("{color.text.default}")
	if err != nil {
		log.Fatal(err)
	}

	if _, err := project.EnsureDist(); err != nil {
		log.Fatal(err)
	}

For full control, or in size-constrained builds that should not carry
the bundled tree, use pkg/tokens directly and pass your own tree to
tokens.Resolve.
*/
package weft
