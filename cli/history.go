// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gvrp/manifest"
)

type historyFlags struct {
	manifest string
	status   string
}

func newHistoryCommand(input *Input) *cobra.Command {
	f := &historyFlags{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the conversions recorded in the manifest",
		Args:  cobra.NoArgs,
		RunE:  newHistoryAction(input, f),
	}
	cmd.Flags().StringVar(&f.manifest, "manifest", "", "manifest database (default from config or $XDG_DATA_HOME)")
	cmd.Flags().StringVar(&f.status, "status", "", "only records with this status (converted, skipped, failed)")

	return cmd
}

func newHistoryAction(input *Input, f *historyFlags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		path := input.cfg.Manifest
		if f.manifest != "" {
			path = f.manifest
		}
		store, err := openManifest(path)
		if err != nil {
			return err
		}
		defer store.Close()

		var recs []manifest.Record
		if f.status != "" {
			recs, err = store.ListStatus(f.status)
		} else {
			recs, err = store.List()
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "INPUT\tSTATUS\tNODES\tGROUPS\tVEHICLES\tCONVERTED\tREASON")
		for _, r := range recs {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
				r.Input, r.Status, r.Nodes, r.Groups, r.Vehicles, r.ConvertedAt.Local().Format(time.DateTime), r.Reason)
		}

		return w.Flush()
	}
}
