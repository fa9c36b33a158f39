package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "CUTSEARCH_"
	configEnvVar = "CUTSEARCH_CONFIG"
)

// Loader reads configuration from several sources.
type Loader struct {
	k           *koanf.Koanf
	configFile  string
	configPaths []string
	envPrefix   string
	source      string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// NewLoader creates a loader with the default search paths.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"cutsearch.yaml",
			"config/cutsearch.yaml",
		},
		envPrefix: envPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithConfigFile names a file that must exist; it takes precedence over
// CUTSEARCH_CONFIG and the search paths.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

// WithConfigPaths replaces the search paths.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithEnvPrefix replaces the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// Load reads configuration with priority:
// 1. Defaults (lowest)
// 2. Config file (yaml)
// 3. Environment variables (highest)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Source returns the config file that was read, or "" if none was found.
func (l *Loader) Source() string {
	return l.source
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		// Search
		"search.source":         "A",
		"search.target":         "Z",
		"search.time_limit":     "0s",
		"search.max_expansions": 0,
		"search.eager_prune":    false,
		"search.flow_bound":     false,

		// Input
		"input.path": "",

		// Log
		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		// Metrics
		"metrics.enabled":   false,
		"metrics.namespace": "cutsearch",
		"metrics.textfile":  "",
	}

	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

// loadConfigFile reads the first config file found. Only an explicitly
// named file is required to exist.
func (l *Loader) loadConfigFile() error {
	if l.configFile != "" {
		if err := l.k.Load(file.Provider(l.configFile), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load config file %s: %w", l.configFile, err)
		}
		l.source = l.configFile

		return nil
	}

	paths := l.configPaths
	if configPath := os.Getenv(configEnvVar); configPath != "" {
		paths = append([]string{configPath}, paths...)
	}

	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}

		if _, err := os.Stat(absPath); err == nil {
			if err := l.k.Load(file.Provider(absPath), yaml.Parser()); err != nil {
				return fmt.Errorf("failed to load config file %s: %w", absPath, err)
			}
			l.source = absPath

			return nil
		}
	}

	return nil
}

// loadEnv maps CUTSEARCH_SECTION_FIELD_NAME to section.field_name: the first
// underscore separates the section, the rest belong to the field.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey string, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if key == "config" {
			return "", nil
		}
		section, field, ok := strings.Cut(key, "_")
		if !ok {
			return key, value
		}

		return section + "." + field, value
	}), nil)
}

// Load reads configuration with the default loader.
func Load() (*Config, error) {
	return NewLoader().Load()
}
