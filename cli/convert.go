// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gvrp/config"
	"github.com/katalvlaran/gvrp/convert"
	"github.com/katalvlaran/gvrp/manifest"
)

type convertFlags struct {
	output      string
	pattern     string
	workers     int
	incremental bool
	manifest    string
	watch       bool
	interval    time.Duration
}

func newConvertCommand(input *Input) *cobra.Command {
	f := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "convert [input-dir]",
		Short: "Convert every matching instance in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newConvertAction(input, f),
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output directory")
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "doublestar pattern relative to the input directory (default \"*.tsp\")")
	cmd.Flags().IntVarP(&f.workers, "jobs", "j", 0, "instances converted in parallel, 0 for one per CPU")
	cmd.Flags().BoolVar(&f.incremental, "incremental", false, "skip inputs unchanged since their last conversion")
	cmd.Flags().StringVar(&f.manifest, "manifest", "", "manifest database (default $XDG_DATA_HOME/gvrp/manifest.db when needed)")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "keep converting new or modified inputs until interrupted")
	cmd.Flags().DurationVar(&f.interval, "interval", 2*time.Second, "polling interval for --watch")

	return cmd
}

// apply overlays the flags the user set on cfg.
func (f *convertFlags) apply(flags *pflag.FlagSet, args []string, cfg *config.Config) {
	if len(args) == 1 {
		cfg.InputDir = args[0]
	}
	if flags.Changed("output") {
		cfg.OutputDir = f.output
	}
	if flags.Changed("pattern") {
		cfg.Pattern = f.pattern
	}
	if flags.Changed("jobs") {
		cfg.Workers = f.workers
	}
	if flags.Changed("incremental") {
		cfg.Incremental = f.incremental
	}
	if flags.Changed("manifest") {
		cfg.Manifest = f.manifest
	}
}

func newConvertAction(input *Input, f *convertFlags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := input.cfg
		f.apply(cmd.Flags(), args, &cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx := input.withLogger(cmd)
		log := convert.Logger(ctx)

		conv := convert.New(cfg.OutputDir)
		conv.Options = cfg.Partition.Options()
		conv.Incremental = cfg.Incremental
		if cfg.Incremental || cfg.Manifest != "" {
			store, err := openManifest(cfg.Manifest)
			if err != nil {
				return err
			}
			defer store.Close()
			conv.Manifest = store
		}

		paths, err := convert.Discover(cfg.InputDir, cfg.Pattern)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			log.Warnf("no input matches %s in %s", cfg.Pattern, cfg.InputDir)
		}
		workers := cfg.Workers
		if workers == 0 {
			workers = runtime.NumCPU()
		}
		log.Debugf("converting %d instances with %d workers", len(paths), workers)

		summary := convert.Run(ctx, conv, paths, workers)
		fmt.Fprintln(cmd.OutOrStdout(), summary)

		if !f.watch {
			return nil
		}

		return convert.Watch(ctx, conv, cfg.InputDir, cfg.Pattern, f.interval, nil)
	}
}

// openManifest opens path, or the XDG default location when path is empty.
func openManifest(path string) (*manifest.Store, error) {
	if path == "" {
		var err error
		if path, err = config.DefaultManifest(); err != nil {
			return nil, err
		}
	}

	return manifest.Open(path)
}
