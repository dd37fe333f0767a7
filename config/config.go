// Package config — .txsync.yaml configuration file support.
//
// txsync runs against a workspace directory containing the application
// checkouts as siblings (gui, packager, desktop, vm). A .txsync.yaml in the
// workspace root may override the service endpoint, project slug, and the
// per-application directory names; without one, defaults apply. Missing
// sibling directories are a skip signal for pull targets, never an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional workspace config file.
const FileName = ".txsync.yaml"

// Sibling application names used as config keys and default directory names.
const (
	SiblingGUI      = "gui"
	SiblingPackager = "packager"
	SiblingDesktop  = "desktop"
	SiblingVM       = "vm"
)

// Config holds the workspace configuration.
type Config struct {
	// Project is the translation service project slug.
	Project string `yaml:"project,omitempty"`
	// ServiceURL overrides the translation service endpoint.
	ServiceURL string `yaml:"service_url,omitempty"`
	// Concurrency caps simultaneous translation fetches.
	Concurrency int `yaml:"concurrency,omitempty"`
	// Siblings maps application names to directory paths relative to the
	// workspace root (or absolute). Unlisted applications use their name.
	Siblings map[string]string `yaml:"siblings,omitempty"`

	root string
}

// Load reads .txsync.yaml from the workspace root if present and applies
// defaults. A missing file is not an error.
func Load(root string) (*Config, error) {
	cfg := &Config{root: root}

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if cfg.Project == "" {
		cfg.Project = "openblocks"
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 36
	}
	return cfg, nil
}

// SiblingDir returns the resolved path of a sibling application directory.
func (c *Config) SiblingDir(name string) string {
	dir := name
	if override, ok := c.Siblings[name]; ok && override != "" {
		dir = override
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.root, dir)
}

// SiblingExists reports whether a sibling application is checked out.
func (c *Config) SiblingExists(name string) bool {
	info, err := os.Stat(c.SiblingDir(name))
	return err == nil && info.IsDir()
}
