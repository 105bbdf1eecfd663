// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gvrp/stats"
)

type compareFlags struct {
	subject   string
	refs      []string
	dimension string
	cutoff    float64
	gaps      bool
}

func newCompareCommand(input *Input) *cobra.Command {
	f := &compareFlags{}
	cmd := &cobra.Command{
		Use:   "compare <summary.csv>",
		Short: "Compare a solver's results on converted instances against reference solvers",
		Args:  cobra.ExactArgs(1),
		RunE:  newCompareAction(input, f),
	}
	cmd.Flags().StringVar(&f.subject, "subject", "Hybrid_Dist", "column holding the subject solver's objective")
	cmd.Flags().StringArrayVar(&f.refs, "ref", []string{"Gurobi_Dist", "Baseline_Dist"}, "reference column; repeatable")
	cmd.Flags().StringVar(&f.dimension, "dimension", "Dimension", "column holding the instance dimension")
	cmd.Flags().Float64Var(&f.cutoff, "cutoff", stats.DefaultCutoff, "dimension where the gap reference switches from the first to the second --ref")
	cmd.Flags().BoolVar(&f.gaps, "gaps", false, "also print per-instance gaps")

	return cmd
}

func newCompareAction(input *Input, f *compareFlags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		tbl, err := stats.ReadTable(file)
		if err != nil {
			return errors.Wrapf(err, "read %s", args[0])
		}
		subject, err := tbl.Column(f.subject)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, ref := range f.refs {
			refVals, err := tbl.Column(ref)
			if err != nil {
				return err
			}
			c, err := stats.Compare(f.subject+" vs. "+ref, subject, refVals)
			if errors.Is(err, stats.ErrNoPairs) {
				input.logger.WithField("reference", ref).Warn("no paired rows, skipping")
				continue
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, c)
		}

		if !f.gaps {
			return nil
		}
		if len(f.refs) != 2 {
			return errors.Errorf("--gaps needs exactly two --ref columns, got %d", len(f.refs))
		}

		return printGaps(cmd, tbl, f)
	}
}

func printGaps(cmd *cobra.Command, tbl *stats.Table, f *compareFlags) error {
	gaps, err := stats.Gaps(tbl, f.dimension, f.subject, f.refs[0], f.refs[1], f.cutoff)
	if err != nil {
		return err
	}
	var labels []string
	if tbl.Has("Instance") {
		labels, _ = tbl.Labels("Instance")
	}
	split := stats.Split(gaps, f.cutoff)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tINSTANCE\tDIMENSION\tREFERENCE\tGAP%")
	for i, g := range gaps {
		if i == split && i > 0 {
			fmt.Fprintln(w, "--\t\t\t\t")
		}
		name := fmt.Sprintf("row %d", g.Row+1)
		if labels != nil {
			name = labels[g.Row]
		}
		gap := "-"
		if !math.IsNaN(g.Percent) {
			gap = fmt.Sprintf("%+.2f", g.Percent)
		}
		fmt.Fprintf(w, "%d\t%s\t%g\t%s\t%s\n", i+1, name, g.Dimension, referenceName(g, f), gap)
	}

	return w.Flush()
}

func referenceName(g stats.Gap, f *compareFlags) string {
	switch {
	case math.IsNaN(g.Dimension):
		return "-"
	case g.Dimension < f.cutoff:
		return f.refs[0]
	}

	return f.refs[1]
}
