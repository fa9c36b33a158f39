// Package config loads cutsearch settings from defaults, an optional YAML
// file and CUTSEARCH_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration.
type Config struct {
	Search  SearchConfig  `koanf:"search"`
	Input   InputConfig   `koanf:"input"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// SearchConfig selects the terminals, budgets and pruning policies.
type SearchConfig struct {
	Source        string        `koanf:"source"`
	Target        string        `koanf:"target"`
	TimeLimit     time.Duration `koanf:"time_limit"`     // 0 = unlimited
	MaxExpansions int64         `koanf:"max_expansions"` // 0 = unlimited
	EagerPrune    bool          `koanf:"eager_prune"`
	FlowBound     bool          `koanf:"flow_bound"`
}

// InputConfig locates the edge list.
type InputConfig struct {
	Path string `koanf:"path"` // empty or "-" reads stdin
}

// LogConfig controls the slog handler and file rotation.
type LogConfig struct {
	Level      string `koanf:"level"`     // debug, info, warn, error
	Format     string `koanf:"format"`    // json, text
	Output     string `koanf:"output"`    // stdout, stderr, file
	FilePath   string `koanf:"file_path"` // used when output == file
	MaxSize    int    `koanf:"max_size"`  // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig controls the Prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	Textfile  string `koanf:"textfile"` // node-exporter textfile; empty disables
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"json": true, "text": true}
	validOutputs = map[string]bool{"stdout": true, "stderr": true, "file": true}
)

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Search.Source == "" || c.Search.Target == "" {
		errs = append(errs, "search.source and search.target are required")
	} else if c.Search.Source == c.Search.Target {
		errs = append(errs, fmt.Sprintf("search.source and search.target must differ, both are %q", c.Search.Source))
	}
	if c.Search.TimeLimit < 0 {
		errs = append(errs, fmt.Sprintf("search.time_limit must be non-negative, got %v", c.Search.TimeLimit))
	}
	if c.Search.MaxExpansions < 0 {
		errs = append(errs, fmt.Sprintf("search.max_expansions must be non-negative, got %d", c.Search.MaxExpansions))
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: json, text, got %s", c.Log.Format))
	}
	if !validOutputs[strings.ToLower(c.Log.Output)] {
		errs = append(errs, fmt.Sprintf("log.output must be one of: stdout, stderr, file, got %s", c.Log.Output))
	}
	if strings.EqualFold(c.Log.Output, "file") && c.Log.FilePath == "" {
		errs = append(errs, "log.file_path is required when log.output is file")
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		errs = append(errs, "metrics.namespace is required when metrics are enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
