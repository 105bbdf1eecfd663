// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/gvrp/depot"
	"github.com/katalvlaran/gvrp/tsplib"
)

// ErrDuplicateOutput marks an input whose document name collides with an
// earlier input of the same batch.
var ErrDuplicateOutput = errors.New("convert: duplicate output name")

// Status tags the end state of one instance.
type Status int

const (
	// StatusConverted: a document was written.
	StatusConverted Status = iota
	// StatusUnchanged: incremental run, input and document unchanged.
	StatusUnchanged
	// StatusSkipped: the parser rejected the input as not convertible.
	StatusSkipped
	// StatusFailed: any other error.
	StatusFailed
)

// String implements fmt.Stringer; the values are stored in the manifest.
func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Classify maps a pipeline error to its status. nil is StatusConverted.
func Classify(err error) Status {
	switch {
	case err == nil:
		return StatusConverted
	case errors.Is(err, tsplib.ErrEncoding),
		errors.Is(err, tsplib.ErrUnsupportedFormat),
		errors.Is(err, tsplib.ErrTooFewNodes):
		return StatusSkipped
	}

	return StatusFailed
}

// Outcome is the tagged result of one instance.
type Outcome struct {
	Input  string
	Name   string
	Output string
	Status Status
	// Err is the skip or failure reason; nil on success.
	Err error

	Nodes      int
	Groups     int
	Vehicles   int
	Layout     depot.Layout
	MinGroups  int
	MetMinimum bool
	Attempts   int
	Duration   time.Duration
}

// OK reports whether the instance has an up-to-date document.
func (o Outcome) OK() bool {
	return o.Status == StatusConverted || o.Status == StatusUnchanged
}

// Summary aggregates a batch.
type Summary struct {
	Converted int
	Unchanged int
	Skipped   int
	Failed    int
	// Outcomes in input order; instances never started are absent.
	Outcomes []Outcome
}

// Add counts o and appends it.
func (s *Summary) Add(o Outcome) {
	switch o.Status {
	case StatusConverted:
		s.Converted++
	case StatusUnchanged:
		s.Unchanged++
	case StatusSkipped:
		s.Skipped++
	default:
		s.Failed++
	}
	s.Outcomes = append(s.Outcomes, o)
}

// Succeeded is Converted + Unchanged.
func (s *Summary) Succeeded() int { return s.Converted + s.Unchanged }

// NotConverted is Skipped + Failed.
func (s *Summary) NotConverted() int { return s.Skipped + s.Failed }

// String renders the final batch line.
func (s *Summary) String() string {
	return fmt.Sprintf("success: %d (converted %d, unchanged %d), skipped/failed: %d (skipped %d, failed %d)",
		s.Succeeded(), s.Converted, s.Unchanged, s.NotConverted(), s.Skipped, s.Failed)
}
