package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// isolate points the loader at an empty directory so files in the working
// tree cannot leak into a test.
func isolate(t *testing.T, extra ...LoaderOption) *Loader {
	t.Helper()
	t.Setenv(configEnvVar, "")
	opts := append([]LoaderOption{WithConfigPaths(filepath.Join(t.TempDir(), "none.yaml"))}, extra...)

	return NewLoader(opts...)
}

func TestLoader_LoadDefaults(t *testing.T) {
	l := isolate(t)
	cfg, err := l.Load()
	require.NoError(t, err)

	require.Equal(t, "A", cfg.Search.Source)
	require.Equal(t, "Z", cfg.Search.Target)
	require.Zero(t, cfg.Search.TimeLimit)
	require.Zero(t, cfg.Search.MaxExpansions)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "stderr", cfg.Log.Output)
	require.Equal(t, "cutsearch", cfg.Metrics.Namespace)
	require.Empty(t, l.Source())
}

func TestLoader_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutsearch.yaml")
	content := `
search:
  source: s
  target: t
  time_limit: 1500ms
  eager_prune: true
input:
  path: machine_room.txt
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l := isolate(t, WithConfigFile(path))
	cfg, err := l.Load()
	require.NoError(t, err)

	require.Equal(t, "s", cfg.Search.Source)
	require.Equal(t, "t", cfg.Search.Target)
	require.Equal(t, 1500*time.Millisecond, cfg.Search.TimeLimit)
	require.True(t, cfg.Search.EagerPrune)
	require.False(t, cfg.Search.FlowBound)
	require.Equal(t, "machine_room.txt", cfg.Input.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, path, l.Source())
}

func TestLoader_ConfigEnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  target: Y\n"), 0o644))

	l := NewLoader(WithConfigPaths())
	t.Setenv(configEnvVar, path)
	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, "Y", cfg.Search.Target)
}

func TestLoader_MissingExplicitFile(t *testing.T) {
	_, err := isolate(t, WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))).Load()
	require.Error(t, err)
}

func TestLoader_LoadFromEnv(t *testing.T) {
	t.Setenv("CUTSEARCH_SEARCH_MAX_EXPANSIONS", "5000")
	t.Setenv("CUTSEARCH_SEARCH_FLOW_BOUND", "true")
	t.Setenv("CUTSEARCH_SEARCH_TIME_LIMIT", "2s")
	t.Setenv("CUTSEARCH_LOG_FILE_PATH", "/tmp/cutsearch.log")
	t.Setenv("CUTSEARCH_METRICS_TEXTFILE", "/tmp/cutsearch.prom")

	cfg, err := isolate(t).Load()
	require.NoError(t, err)
	require.Equal(t, int64(5000), cfg.Search.MaxExpansions)
	require.True(t, cfg.Search.FlowBound)
	require.Equal(t, 2*time.Second, cfg.Search.TimeLimit)
	require.Equal(t, "/tmp/cutsearch.log", cfg.Log.FilePath)
	require.Equal(t, "/tmp/cutsearch.prom", cfg.Metrics.Textfile)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Search:  SearchConfig{Source: "A", Target: "Z"},
			Log:     LogConfig{Level: "info", Format: "text", Output: "stderr"},
			Metrics: MetricsConfig{Namespace: "cutsearch"},
		}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(c *Config){
		"same terminals":    func(c *Config) { c.Search.Target = "A" },
		"empty source":      func(c *Config) { c.Search.Source = "" },
		"negative limit":    func(c *Config) { c.Search.TimeLimit = -time.Second },
		"negative budget":   func(c *Config) { c.Search.MaxExpansions = -1 },
		"bad level":         func(c *Config) { c.Log.Level = "verbose" },
		"bad format":        func(c *Config) { c.Log.Format = "xml" },
		"bad output":        func(c *Config) { c.Log.Output = "syslog" },
		"file without path": func(c *Config) { c.Log.Output = "file" },
		"metrics unnamed":   func(c *Config) { c.Metrics = MetricsConfig{Enabled: true} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			require.Error(t, c.Validate())
		})
	}

	c := valid()
	c.Log.Level = ""
	require.NoError(t, c.Validate())
	require.Equal(t, "info", c.Log.Level, "empty level defaults to info")
}
