// SPDX-License-Identifier: MIT

// Package cli implements the gvrpgen command line.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gvrp/config"
	"github.com/katalvlaran/gvrp/convert"
)

// Input carries flag values and the resolved configuration between the
// root command and its subcommands.
type Input struct {
	configPath string
	envFile    string
	verbose    bool
	jsonLog    bool

	cfg    config.Config
	logger *log.Logger
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	rootCmd := createRootCommand(ctx, &Input{}, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "gvrpgen",
		Short:             "Convert TSPLIB instances into spatially grouped GVRP instances.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: input.setup,
	}
	rootCmd.SetContext(ctx)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&input.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/"+config.RelPath+")")
	pf.StringVar(&input.envFile, "env-file", "", "dotenv file exporting GVRP_* variables")
	pf.BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&input.jsonLog, "json-log", false, "output logs in json format")

	rootCmd.AddCommand(
		newConvertCommand(input),
		newVerifyCommand(input),
		newHistoryCommand(input),
		newCompareCommand(input),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger before any subcommand.
func (i *Input) setup(cmd *cobra.Command, _ []string) error {
	if i.envFile != "" {
		if err := config.LoadEnvFile(i.envFile); err != nil {
			return err
		}
	}
	path := i.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	i.cfg = cfg

	i.logger, err = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, i.verbose, i.jsonLog)
	if err != nil {
		return err
	}
	if path != "" {
		i.logger.Debugf("using config %s", path)
	}

	return nil
}

// withLogger returns the command context carrying the configured logger.
func (i *Input) withLogger(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return convert.WithLogger(ctx, i.logger)
}

func newLogger(out io.Writer, level string, verbose, jsonLog bool) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(out)
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(config.ErrInvalid, "log level %q", level)
	}
	if verbose {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)

	if jsonLog {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{
			DisableColors:    !colorable(out),
			DisableTimestamp: true,
			PadLevelText:     true,
		})
	}

	return logger, nil
}

// colorable reports whether out is a terminal that accepts colours.
func colorable(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	if _, ok = os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
