// SPDX-License-Identifier: MIT

// Package convert runs the instance → GVRP document pipeline for single
// files and for batches.
//
// Pipeline (pure, per instance):
//
//	tsplib.Parse → fleet.VehicleCount → gridpart.Partition → depot.Place → gvrp.Build
//
// Converter.ConvertFile adds the I/O around it (read, optional manifest
// check, gvrp.WriteFile, manifest record) and never returns an error: every
// run ends in a tagged Outcome. Parser rejections (encoding, missing
// coordinate section, too few nodes) are StatusSkipped; any other error,
// including a recovered panic, is StatusFailed. Run folds outcomes into a
// Summary, optionally converting several instances concurrently; no state
// is shared between instances.
//
// Discover lists input files with doublestar patterns and Watch converts
// files as they appear in a folder.
package convert
