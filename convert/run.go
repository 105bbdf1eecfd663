// SPDX-License-Identifier: MIT

package convert

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gvrp/tsplib"
)

// Run converts every path with at most workers instances in flight
// (workers ≤ 1 runs sequentially) and returns the summary in input order.
//
// Inputs whose document name repeats an earlier input's are not converted
// and count as failed with ErrDuplicateOutput, so concurrent writers never
// target the same file. Once ctx is cancelled no further instance starts;
// instances never started are absent from the summary.
func Run(ctx context.Context, c *Converter, paths []string, workers int) *Summary {
	var (
		outcomes = make([]*Outcome, len(paths))
		owner    = make(map[string]string, len(paths))
		g        errgroup.Group
	)
	g.SetLimit(max(1, workers))

	for i, path := range paths {
		name := tsplib.NameFromPath(path)
		if first, dup := owner[name]; dup {
			o := Outcome{
				Input:  path,
				Name:   name,
				Status: StatusFailed,
				Err:    errors.Wrapf(ErrDuplicateOutput, "%s already written by %s", name, first),
			}
			Logger(ctx).WithField("instance", name).WithError(o.Err).Error("conversion failed")
			outcomes[i] = &o
			continue
		}
		owner[name] = path

		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			o := c.ConvertFile(ctx, path)
			outcomes[i] = &o
			return nil
		})
	}
	_ = g.Wait()

	s := &Summary{}
	for _, o := range outcomes {
		if o != nil {
			s.Add(*o)
		}
	}

	return s
}
