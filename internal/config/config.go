// Package config loads the .weft.yaml project file: where token
// documents live and which dist artifacts to render from them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project
// directory.
const FileName = ".weft.yaml"

// Known output formats.
const (
	FormatCSS      = "css"
	FormatSCSS     = "scss"
	FormatJSON     = "json"
	FormatFlatJSON = "flat-json"
)

// Config describes a weft project.
type Config struct {
	// Sources are globs (relative to the project directory) matching
	// token documents. Matches are merged in sorted order, later
	// documents winning on conflicts.
	Sources []string `yaml:"sources"`
	// Outputs lists the dist artifacts to render.
	Outputs []Output `yaml:"outputs"`
	// Prefix is prepended to variable names in css/scss outputs.
	Prefix string `yaml:"prefix"`
}

// Output is one rendered dist artifact.
type Output struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// Default returns the configuration used when no .weft.yaml exists:
// token documents under tokens/ (or a top-level tokens.json), CSS and
// flat JSON dist artifacts.
func Default() *Config {
	return &Config{
		Sources: []string{
			"tokens.json",
			"tokens/*.json",
			"tokens/*.yaml",
			"tokens/*.yml",
		},
		Outputs: []Output{
			{Format: FormatCSS, Path: "dist/tokens.css"},
			{Format: FormatFlatJSON, Path: "dist/tokens.json"},
		},
	}
}

// Load reads dir/.weft.yaml. A missing file is not an error: the
// default configuration is returned instead.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", FileName, err)
	}
	return cfg, nil
}

// Validate checks that every output uses a known format and a path.
func (c *Config) Validate() error {
	for i, out := range c.Outputs {
		switch out.Format {
		case FormatCSS, FormatSCSS, FormatJSON, FormatFlatJSON:
		default:
			return fmt.Errorf("outputs[%d]: unknown format %q", i, out.Format)
		}
		if out.Path == "" {
			return fmt.Errorf("outputs[%d]: path is required", i)
		}
	}
	return nil
}

// SourceFiles expands the source globs against dir and returns the
// matching files, deduplicated and sorted.
func (c *Config) SourceFiles(dir string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range c.Sources {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad source glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	sort.Strings(files)
	return files, nil
}
