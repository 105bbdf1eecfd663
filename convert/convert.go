// SPDX-License-Identifier: MIT

package convert

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gvrp/depot"
	"github.com/katalvlaran/gvrp/fleet"
	"github.com/katalvlaran/gvrp/gridpart"
	"github.com/katalvlaran/gvrp/gvrp"
	"github.com/katalvlaran/gvrp/manifest"
	"github.com/katalvlaran/gvrp/tsplib"
)

// Manifest is the subset of *manifest.Store the converter needs.
type Manifest interface {
	Fresh(input, digest string) (bool, error)
	Put(rec manifest.Record) error
}

// Result bundles the pure pipeline outputs for one instance.
type Result struct {
	Document  gvrp.Document
	Partition *gridpart.Result
	Layout    depot.Layout
}

// Pipeline turns a parsed instance into a document. It performs no I/O.
func Pipeline(inst *tsplib.Instance, opts gridpart.Options) (*Result, error) {
	vehicles := fleet.VehicleCount(inst.Dimension())
	part, err := gridpart.Partition(inst.Points(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "partition")
	}
	depots, err := depot.Place(inst.Bounds(), vehicles)
	if err != nil {
		return nil, errors.Wrap(err, "place depots")
	}

	return &Result{
		Document:  gvrp.Build(inst, vehicles, part, depots),
		Partition: part,
		Layout:    depot.ChooseLayout(vehicles),
	}, nil
}

// Converter writes one document per input into OutDir.
type Converter struct {
	// OutDir receives the documents; created on first write.
	OutDir string
	// Options drive the partitioner; zero value means gridpart.DefaultOptions().
	Options gridpart.Options
	// Manifest, when set, records every outcome.
	Manifest Manifest
	// Incremental skips inputs the manifest reports as fresh. Needs Manifest.
	Incremental bool
}

// New returns a Converter with default partitioner options.
func New(outDir string) *Converter {
	return &Converter{OutDir: outDir, Options: gridpart.DefaultOptions()}
}

func (c *Converter) options() gridpart.Options {
	if c.Options == (gridpart.Options{}) {
		return gridpart.DefaultOptions()
	}

	return c.Options
}

// ConvertFile runs the pipeline for the instance at path and writes its
// document. It never panics and never returns an error: the outcome carries
// the status and reason.
func (c *Converter) ConvertFile(ctx context.Context, path string) (out Outcome) {
	start := time.Now()
	name := tsplib.NameFromPath(path)
	log := Logger(ctx).WithField("instance", name)
	out = Outcome{Input: path, Name: name}

	var digest string
	defer func() {
		if r := recover(); r != nil {
			out.Status = StatusFailed
			out.Err = errors.Errorf("panic: %v", r)
		}
		out.Duration = time.Since(start)
		c.report(log, out)
		c.record(log, out, digest)
	}()

	raw, err := os.ReadFile(path)
	if err != nil {
		out.Status, out.Err = StatusFailed, errors.Wrap(err, "read input")
		return out
	}
	digest = manifest.Digest(raw)

	if c.Incremental && c.Manifest != nil {
		fresh, ferr := c.Manifest.Fresh(path, digest)
		if ferr != nil {
			log.WithError(ferr).Warn("manifest lookup failed, converting anyway")
		}
		if fresh {
			out.Status = StatusUnchanged
			out.Output = c.outputPath(name)
			return out
		}
	}

	inst, err := tsplib.Parse(bytes.NewReader(raw), name)
	if err != nil {
		out.Status, out.Err = Classify(err), err
		return out
	}
	if declared, ok := inst.DeclaredDimension(); ok && declared != inst.Dimension() {
		log.Debugf("DIMENSION header says %d, parsed %d nodes", declared, inst.Dimension())
	}

	res, err := Pipeline(inst, c.options())
	if err != nil {
		out.Status, out.Err = StatusFailed, err
		return out
	}
	out.fill(res)

	if err = ctx.Err(); err != nil {
		out.Status, out.Err = StatusFailed, errors.Wrap(err, "cancelled before write")
		return out
	}
	out.Output, err = gvrp.WriteFile(c.OutDir, &res.Document)
	if err != nil {
		out.Status, out.Err = StatusFailed, errors.Wrap(err, "write document")
		return out
	}
	out.Status = StatusConverted

	return out
}

func (c *Converter) outputPath(name string) string {
	return filepath.Join(c.OutDir, gvrp.OutputName(name))
}

func (o *Outcome) fill(res *Result) {
	o.Nodes = res.Document.Dimension
	o.Groups = len(res.Document.Groups)
	o.Vehicles = res.Document.Vehicles
	o.Layout = res.Layout
	o.MinGroups = res.Partition.MinGroups
	o.MetMinimum = res.Partition.MetMinimum
	o.Attempts = res.Partition.Attempts
}

func (c *Converter) report(log logrus.FieldLogger, o Outcome) {
	switch o.Status {
	case StatusConverted:
		log = log.WithFields(logrus.Fields{
			"nodes":    o.Nodes,
			"groups":   o.Groups,
			"vehicles": o.Vehicles,
			"layout":   o.Layout,
			"attempts": o.Attempts,
		})
		if !o.MetMinimum {
			log.Warnf("converted with %d groups, below the minimum of %d after %d attempts", o.Groups, o.MinGroups, o.Attempts)
			return
		}
		log.Info("converted")
	case StatusUnchanged:
		log.Debug("unchanged, skipping")
	case StatusSkipped:
		log.WithError(o.Err).Warn("skipped")
	default:
		log.WithError(o.Err).Error("conversion failed")
	}
}

func (c *Converter) record(log logrus.FieldLogger, o Outcome, digest string) {
	if c.Manifest == nil || o.Status == StatusUnchanged {
		return
	}
	rec := manifest.Record{
		Input:       o.Input,
		Digest:      digest,
		Output:      o.Output,
		Status:      o.Status.String(),
		Nodes:       o.Nodes,
		Groups:      o.Groups,
		Vehicles:    o.Vehicles,
		MetMinimum:  o.MetMinimum,
		ConvertedAt: time.Now().UTC(),
	}
	if o.Err != nil {
		rec.Reason = o.Err.Error()
	}
	if err := c.Manifest.Put(rec); err != nil {
		log.WithError(err).Warn("manifest update failed")
	}
}
