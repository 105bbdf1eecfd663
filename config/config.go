// SPDX-License-Identifier: MIT

// Package config loads converter settings from a YAML file, an optional
// dotenv file and GVRP_* environment variables, in that order of increasing
// precedence. Command-line flags override all three in package cli.
package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gvrp/gridpart"
)

// ErrInvalid is wrapped by Validate.
var ErrInvalid = errors.New("config: invalid")

const (
	// RelPath locates the config file under the XDG config directories.
	RelPath = "gvrp/config.yaml"
	// manifestRel locates the default manifest under the XDG data home.
	manifestRel = "gvrp/manifest.db"
)

// Environment variable names.
const (
	EnvInputDir  = "GVRP_INPUT_DIR"
	EnvOutputDir = "GVRP_OUTPUT_DIR"
	EnvPattern   = "GVRP_PATTERN"
	EnvWorkers   = "GVRP_WORKERS"
	EnvManifest  = "GVRP_MANIFEST"
	EnvLogLevel  = "GVRP_LOG_LEVEL"
)

// Partition mirrors gridpart.Options in the file.
type Partition struct {
	MaxAttempts     int     `yaml:"max_attempts"`
	InitialDivisor  int     `yaml:"initial_divisor"`
	StepDivisor     int     `yaml:"step_divisor"`
	MinGroupDivisor int     `yaml:"min_group_divisor"`
	MinGroupFloor   int     `yaml:"min_group_floor"`
	Inflation       float64 `yaml:"inflation"`
}

// Options converts p to partitioner options.
func (p Partition) Options() gridpart.Options {
	return gridpart.Options{
		MaxAttempts:     p.MaxAttempts,
		InitialDivisor:  p.InitialDivisor,
		StepDivisor:     p.StepDivisor,
		MinGroupDivisor: p.MinGroupDivisor,
		MinGroupFloor:   p.MinGroupFloor,
		Inflation:       p.Inflation,
	}
}

// Config holds every setting of a conversion run.
type Config struct {
	InputDir    string    `yaml:"input_dir"`
	OutputDir   string    `yaml:"output_dir"`
	Pattern     string    `yaml:"pattern"`
	Workers     int       `yaml:"workers"`
	Manifest    string    `yaml:"manifest"`
	Incremental bool      `yaml:"incremental"`
	LogLevel    string    `yaml:"log_level"`
	Partition   Partition `yaml:"partition"`
}

// Default returns the built-in settings: "*.tsp" from the current directory
// into "gvrp_out", one worker per CPU, no manifest.
func Default() Config {
	o := gridpart.DefaultOptions()

	return Config{
		InputDir:  ".",
		OutputDir: "gvrp_out",
		Pattern:   "*.tsp",
		Workers:   0,
		LogLevel:  "info",
		Partition: Partition{
			MaxAttempts:     o.MaxAttempts,
			InitialDivisor:  o.InitialDivisor,
			StepDivisor:     o.StepDivisor,
			MinGroupDivisor: o.MinGroupDivisor,
			MinGroupFloor:   o.MinGroupFloor,
			Inflation:       o.Inflation,
		},
	}
}

// DefaultPath returns the first existing config file in the XDG config
// directories, or "" when there is none.
func DefaultPath() string {
	p, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return ""
	}

	return p
}

// DefaultManifest returns the manifest location under the XDG data home,
// creating its parent directory.
func DefaultManifest() (string, error) {
	p, err := xdg.DataFile(manifestRel)
	if err != nil {
		return "", errors.Wrap(err, "config: manifest location")
	}

	return p, nil
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and then with the environment. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, errors.Wrap(err, "config: open")
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, errors.Wrapf(err, "config: parse %s", path)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadEnvFile exports the variables of a dotenv file into the process
// environment without overwriting variables that are already set.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "config: env file %s", path)
	}

	return nil
}

// ApplyEnv overrides fields from GVRP_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		EnvInputDir:  &c.InputDir,
		EnvOutputDir: &c.OutputDir,
		EnvPattern:   &c.Pattern,
		EnvManifest:  &c.Manifest,
		EnvLogLevel:  &c.LogLevel,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	if v, ok := lookup(EnvWorkers); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s=%q", EnvWorkers, v)
		}
		c.Workers = n
	}

	return nil
}

// Validate rejects settings no run can use.
func (c Config) Validate() error {
	switch {
	case c.InputDir == "":
		return errors.Wrap(ErrInvalid, "input directory is empty")
	case c.OutputDir == "":
		return errors.Wrap(ErrInvalid, "output directory is empty")
	case c.Pattern == "":
		return errors.Wrap(ErrInvalid, "pattern is empty")
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalid, "workers = %d", c.Workers)
	}
	if err := c.Partition.Options().Validate(); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}

	return nil
}
