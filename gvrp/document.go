// SPDX-License-Identifier: MIT

// Package gvrp builds, writes and reads grouped vehicle routing problem
// (GVRP) documents.
//
// A Document is a pure projection of a parsed instance, its vehicle count,
// its spatial groups and its depots. Encode writes the line-oriented text
// format below; Decode reads it back; Verify checks its invariants.
//
//	NAME: <instance>-GVRP-Spatial
//	TYPE: GVRP
//	DIMENSION: <nodes>
//	EDGE_WEIGHT_TYPE: EUC_2D
//	VEHICLES: <vehicles>
//	CAPACITY: 200
//	WORK_DISTANCE: <0.7 × bbox diagonal, 4 dp>
//	NUM_OF_GROUPS: <groups>
//	DEPOT_COORD_SECTION
//	<id>\t<x>\t<y>
//	NODE_COORD_SECTION
//	<id>\t<x>\t<y>
//	MUTUALLY_EXCLUSIVE_GROUP_SECTION
//	<group-id>\t<member>\t<member>...
package gvrp

import (
	"github.com/katalvlaran/gvrp/geom"
	"github.com/katalvlaran/gvrp/gridpart"
	"github.com/katalvlaran/gvrp/tsplib"
)

// Fixed policy values of the format.
const (
	// Capacity is the per-vehicle capacity written to every document.
	Capacity = 200
	// WorkDistanceRatio scales the bounding-box diagonal into the per-vehicle budget.
	WorkDistanceRatio = 0.7

	ProblemType    = "GVRP"
	EdgeWeightType = "EUC_2D"
	NameSuffix     = "-GVRP-Spatial"
	FileSuffix     = "_GVRP_Spatial.txt"
)

// Document is the serialisable form of one converted instance.
type Document struct {
	// Name is the instance name without NameSuffix.
	Name           string
	Type           string
	EdgeWeightType string
	Dimension      int
	Vehicles       int
	Capacity       int
	WorkDistance   float64
	Depots         []geom.Point
	// Nodes in ID order; node i has ID i+1.
	Nodes []geom.Point
	// Groups in group-ID order; group i has ID i+1.
	Groups [][]int
}

// WorkDistance returns WorkDistanceRatio × the diagonal of b.
func WorkDistance(b geom.Bounds) float64 {
	return b.Diagonal() * WorkDistanceRatio
}

// OutputName derives the document file name for an instance name.
func OutputName(instance string) string {
	return instance + FileSuffix
}

// Build projects the pipeline results into a Document. It copies nothing but
// slice headers; callers must not mutate the inputs afterwards.
// Complexity: O(N + k).
func Build(inst *tsplib.Instance, vehicles int, part *gridpart.Result, depots []geom.Point) Document {
	return Document{
		Name:           inst.Name,
		Type:           ProblemType,
		EdgeWeightType: EdgeWeightType,
		Dimension:      inst.Dimension(),
		Vehicles:       vehicles,
		Capacity:       Capacity,
		WorkDistance:   WorkDistance(inst.Bounds()),
		Depots:         depots,
		Nodes:          inst.Points(),
		Groups:         part.Groups(),
	}
}

// FileName is OutputName(d.Name).
func (d *Document) FileName() string { return OutputName(d.Name) }
