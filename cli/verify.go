// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gvrp/gvrp"
)

func newVerifyCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <document>...",
		Short: "Check GVRP documents for internal consistency",
		Args:  cobra.MinimumNArgs(1),
		RunE:  newVerifyAction(input),
	}
}

func newVerifyAction(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range args {
			doc, err := verifyFile(path)
			if err != nil {
				failed++
				input.logger.WithField("document", path).WithError(err).Error("verification failed")
				fmt.Fprintf(out, "FAIL\t%s\t%v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "ok\t%s\tnodes=%d groups=%d vehicles=%d\n", path, doc.Dimension, len(doc.Groups), doc.Vehicles)
		}
		if failed > 0 {
			return errors.Errorf("%d of %d documents failed verification", failed, len(args))
		}

		return nil
	}
}

func verifyFile(path string) (*gvrp.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := gvrp.Decode(f)
	if err != nil {
		return nil, err
	}

	return doc, gvrp.Verify(doc)
}
