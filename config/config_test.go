package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gvrp/config"
	"github.com/katalvlaran/gvrp/gridpart"
)

// unset clears key for the test and restores it afterwards.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearEnv(t *testing.T) {
	for _, k := range []string{
		config.EnvInputDir, config.EnvOutputDir, config.EnvPattern,
		config.EnvWorkers, config.EnvManifest, config.EnvLogLevel,
	} {
		unset(t, k)
	}
}

// TestDefault matches the partitioner defaults and validates.
func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, gridpart.DefaultOptions(), cfg.Partition.Options())
	require.Equal(t, "*.tsp", cfg.Pattern)
	require.Zero(t, cfg.Workers, "0 selects one worker per CPU")
	require.NoError(t, cfg.Validate())
}

// TestLoadFileAndEnv layers the environment over the file.
func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input_dir: instances
output_dir: out
workers: 4
partition:
  max_attempts: 30
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "instances", cfg.InputDir)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 30, cfg.Partition.MaxAttempts)
	require.Equal(t, 5, cfg.Partition.InitialDivisor, "untouched keys keep defaults")

	t.Setenv(config.EnvOutputDir, "elsewhere")
	t.Setenv(config.EnvWorkers, "8")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "elsewhere", cfg.OutputDir)
	require.Equal(t, 8, cfg.Workers)

	t.Setenv(config.EnvWorkers, "many")
	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalid)
}

// TestLoadErrors covers missing files, unknown keys and empty files.
func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colour: blue\n"), 0o644))
	_, err = config.Load(bad)
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	cfg, err := config.Load(empty)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

// TestLoadEnvFile exports variables without clobbering set ones.
func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvOutputDir, "kept")
	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("GVRP_PATTERN=**/*.tsp\nGVRP_OUTPUT_DIR=ignored\n"), 0o644))

	require.NoError(t, config.LoadEnvFile(env))
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "**/*.tsp", cfg.Pattern)
	require.Equal(t, "kept", cfg.OutputDir)

	require.Error(t, config.LoadEnvFile(filepath.Join(t.TempDir(), "none.env")))
}

// TestValidate rejects unusable settings.
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty input", func(c *config.Config) { c.InputDir = "" }},
		{"empty output", func(c *config.Config) { c.OutputDir = "" }},
		{"empty pattern", func(c *config.Config) { c.Pattern = "" }},
		{"negative workers", func(c *config.Config) { c.Workers = -1 }},
		{"no attempts", func(c *config.Config) { c.Partition.MaxAttempts = 0 }},
		{"flat inflation", func(c *config.Config) { c.Partition.Inflation = 1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

// TestXDGPaths resolves files under the XDG homes.
func TestXDGPaths(t *testing.T) {
	t.Cleanup(xdg.Reload)
	cfgHome := t.TempDir()
	dataHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	require.Empty(t, config.DefaultPath())

	want := filepath.Join(cfgHome, filepath.FromSlash(config.RelPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(want), 0o755))
	require.NoError(t, os.WriteFile(want, []byte("workers: 2\n"), 0o644))
	require.Equal(t, want, config.DefaultPath())

	m, err := config.DefaultManifest()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dataHome, "gvrp", "manifest.db"), m)
	require.DirExists(t, filepath.Dir(m))
}
