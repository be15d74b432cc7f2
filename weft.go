package weft

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/weftlabs/weft/internal/build"
	"github.com/weftlabs/weft/internal/config"
	"github.com/weftlabs/weft/internal/logging"
	"github.com/weftlabs/weft/pkg/tokens"
	"github.com/weftlabs/weft/pkg/tokens/defaults"
)

// Project is the high-level entry point for the weft library. It wraps
// a loaded token tree together with the project configuration and
// provides a simplified API for consumers.
type Project struct {
	tree    tokens.Tree
	cfg     *config.Config
	dir     string
	sources []string
	logger  *slog.Logger
	builder *build.Builder
	Name    string
}

// Option defines a functional option for configuring the Project.
type Option func(*Project)

// WithLogger sets a custom structured logger for the project.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Project) {
		p.logger = logger
	}
}

// WithTree injects a caller-built token tree, bypassing source
// loading. dir may be empty in that case.
func WithTree(tree tokens.Tree) Option {
	return func(p *Project) {
		p.tree = tree
	}
}

// WithConfig injects an explicit configuration instead of reading
// .weft.yaml from the project directory.
func WithConfig(cfg *config.Config) Option {
	return func(p *Project) {
		p.cfg = cfg
	}
}

// New initializes a Project rooted at dir. Token documents matched by
// the configuration's source globs are merged in sorted order; when
// none exist the bundled default tree is used, so a freshly created
// project resolves out of the box. If WithTree is provided, dir is
// only used as a descriptive label.
func New(dir string, opts ...Option) (*Project, error) {
	p := &Project{dir: dir}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = logging.NewNop()
	}

	if dir != "" {
		absPath, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		p.dir = absPath
		p.Name = filepath.Base(absPath)
	}

	if p.cfg == nil {
		if p.dir == "" {
			p.cfg = config.Default()
		} else {
			cfg, err := config.Load(p.dir)
			if err != nil {
				return nil, err
			}
			p.cfg = cfg
		}
	}

	if p.tree == nil {
		if p.dir == "" {
			return nil, fmt.Errorf("dir is required when no tree is provided")
		}
		if err := p.loadSources(); err != nil {
			return nil, err
		}
	}

	p.builder = build.New(p.logger)
	return p, nil
}

// loadSources reads and merges every token document matched by the
// configured source globs. A project without any source documents
// falls back to the bundled defaults.
func (p *Project) loadSources() error {
	files, err := p.cfg.SourceFiles(p.dir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		p.logger.Info("no token documents found, using bundled defaults", "dir", p.dir)
		tree, err := defaults.Tree()
		if err != nil {
			return err
		}
		p.tree = tree
		return nil
	}

	trees := make([]tokens.Tree, 0, len(files))
	for _, file := range files {
		tree, err := tokens.Load(file)
		if err != nil {
			return fmt.Errorf("load %s: %w", filepath.Base(file), err)
		}
		trees = append(trees, tree)
	}

	merged, err := tokens.Merge(trees...)
	if err != nil {
		return err
	}

	p.tree = merged
	p.sources = files
	p.logger.Info("token documents loaded", "count", len(files))
	return nil
}

// Reload re-reads the source documents from disk. Projects built with
// WithTree keep their injected tree.
func (p *Project) Reload() error {
	if p.dir == "" {
		return nil
	}
	return p.loadSources()
}

// Resolve expands a token reference against the project tree.
func (p *Project) Resolve(ref string) (string, error) {
	return tokens.Resolve(ref, p.tree)
}

// Tree returns the project's token tree. The tree is shared; callers
// must treat it as read-only or Clone it.
func (p *Project) Tree() tokens.Tree {
	return p.tree
}

// Flatten returns every leaf of the project tree, fully resolved and
// in path order.
func (p *Project) Flatten() ([]tokens.FlatToken, error) {
	return tokens.Flatten(p.tree)
}

// Lint reports every token in the project tree that fails to resolve.
func (p *Project) Lint() []tokens.Problem {
	return tokens.Lint(p.tree)
}

// Config returns the active project configuration.
func (p *Project) Config() *config.Config {
	return p.cfg
}

// Dir returns the absolute project directory ("" for tree-injected
// projects).
func (p *Project) Dir() string {
	return p.dir
}

// Sources returns the token documents the tree was loaded from.
func (p *Project) Sources() []string {
	return p.sources
}

// BuildDist renders the configured dist artifacts unconditionally and
// returns the written paths.
func (p *Project) BuildDist() ([]string, error) {
	return p.builder.Build(p.dir, p.cfg, p.tree)
}

// EnsureDist renders the dist artifacts only when they are missing or
// older than the source documents. It returns the written paths, or
// nil when the dist was already fresh.
func (p *Project) EnsureDist() ([]string, error) {
	return p.builder.Ensure(p.dir, p.cfg, p.tree)
}

// Resolve expands a token reference against the bundled default tree.
// It is the zero-setup entry point; use a Project (or pkg/tokens
// directly) to resolve against your own documents.
func Resolve(ref string) (string, error) {
	tree, err := defaults.Tree()
	if err != nil {
		return "", err
	}
	return tokens.Resolve(ref, tree)
}

// Default returns the bundled default token tree (read-only).
func Default() (tokens.Tree, error) {
	return defaults.Tree()
}
