// Package build renders a resolved token tree into dist artifacts
// such as CSS custom properties, SCSS variables and JSON documents.
// Builds run on demand and are skipped when the artifacts are newer
// than the source documents.
package build

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/weftlabs/weft/internal/config"
	"github.com/weftlabs/weft/internal/logging"
	"github.com/weftlabs/weft/pkg/tokens"
)

// Builder renders dist artifacts for a project.
type Builder struct {
	logger *slog.Logger
}

// New creates a Builder. A nil logger disables logging.
func New(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Builder{logger: logger}
}

// Build renders every configured output from tree into dir and returns
// the written paths. The tree is flattened (and therefore fully
// resolved) exactly once; broken references abort the build with the
// aggregated resolution errors.
func (b *Builder) Build(dir string, cfg *config.Config, tree tokens.Tree) ([]string, error) {
	flat, err := tokens.Flatten(tree)
	if err != nil {
		return nil, fmt.Errorf("token tree is not buildable: %w", err)
	}

	var written []string
	for _, out := range cfg.Outputs {
		content, err := b.render(out.Format, cfg.Prefix, flat, tree)
		if err != nil {
			return written, err
		}

		path := filepath.Join(dir, out.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return written, fmt.Errorf("ensure dist directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", out.Path, err)
		}

		b.logger.Info("dist artifact written", "format", out.Format, "path", out.Path, "tokens", len(flat))
		written = append(written, path)
	}
	return written, nil
}

// Ensure builds the dist artifacts only when they are stale. It
// returns the written paths, or nil when the dist was already fresh.
func (b *Builder) Ensure(dir string, cfg *config.Config, tree tokens.Tree) ([]string, error) {
	stale, err := b.Stale(dir, cfg)
	if err != nil {
		return nil, err
	}
	if !stale {
		b.logger.Debug("dist is fresh, skipping build")
		return nil, nil
	}
	return b.Build(dir, cfg, tree)
}

// Stale reports whether any output is missing or older than the newest
// source document.
func (b *Builder) Stale(dir string, cfg *config.Config) (bool, error) {
	sources, err := cfg.SourceFiles(dir)
	if err != nil {
		return false, err
	}

	var newestSource time.Time
	for _, src := range sources {
		info, err := os.Stat(src)
		if err != nil {
			return false, fmt.Errorf("stat source %s: %w", src, err)
		}
		if info.ModTime().After(newestSource) {
			newestSource = info.ModTime()
		}
	}

	for _, out := range cfg.Outputs {
		info, err := os.Stat(filepath.Join(dir, out.Path))
		if err != nil {
			if os.IsNotExist(err) {
				return true, nil
			}
			return false, fmt.Errorf("stat output %s: %w", out.Path, err)
		}
		if info.ModTime().Before(newestSource) {
			return true, nil
		}
	}
	return false, nil
}

func (b *Builder) render(format, prefix string, flat []tokens.FlatToken, tree tokens.Tree) (string, error) {
	switch format {
	case config.FormatCSS:
		return renderCSS(prefix, flat), nil
	case config.FormatSCSS:
		return renderSCSS(prefix, flat), nil
	case config.FormatFlatJSON:
		return renderFlatJSON(flat)
	case config.FormatJSON:
		return renderJSON(flat, tree)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func renderCSS(prefix string, flat []tokens.FlatToken) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, tok := range flat {
		fmt.Fprintf(&sb, "  --%s: %s;\n", variableName(prefix, tok.Path), tok.Value)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func renderSCSS(prefix string, flat []tokens.FlatToken) string {
	var sb strings.Builder
	for _, tok := range flat {
		fmt.Fprintf(&sb, "$%s: %s;\n", variableName(prefix, tok.Path), tok.Value)
	}
	return sb.String()
}

func renderFlatJSON(flat []tokens.FlatToken) (string, error) {
	out := make(map[string]string, len(flat))
	for _, tok := range flat {
		out[tok.Path] = tok.Value
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode flat json: %w", err)
	}
	return string(data) + "\n", nil
}

// renderJSON emits the tree shape with every leaf value replaced by
// its resolved literal.
func renderJSON(flat []tokens.FlatToken, tree tokens.Tree) (string, error) {
	resolved := tokens.Clone(tree)
	for _, tok := range flat {
		segments := strings.Split(tok.Path, ".")
		node, ok := resolved.Get(segments...)
		if !ok {
			continue
		}
		if leaf, isMap := node.(map[string]any); isMap {
			leaf["value"] = tok.Value
		}
	}

	data, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode resolved json: %w", err)
	}
	return string(data) + "\n", nil
}

// variableName turns a dot-path into a css/scss identifier, e.g.
// "color.brand.primary" -> "color-brand-primary" (prefix prepended
// when configured).
func variableName(prefix, path string) string {
	name := strings.ReplaceAll(path, ".", "-")
	if prefix != "" {
		return prefix + "-" + name
	}
	return name
}
