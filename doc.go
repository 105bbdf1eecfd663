// Package gvrp turns classic TSPLIB travelling-salesman instances into
// grouped vehicle-routing (GVRP) benchmark instances with spatially derived
// groups and synthetic depots.
//
// 🚀 What does a conversion do?
//
//	For every instance file:
//		• Parse: read the NODE_COORD_SECTION (or DISPLAY_DATA_SECTION) coordinates
//		• Fleet: pick 2, 4, 6, 8 or 16 vehicles from the node count
//		• Partition: bucket nodes into a square grid, growing it until at least
//		  max(2, ⌊n/6⌋) non-empty cells exist (at most 20 attempts)
//		• Depots: one per vehicle, on the corners or along two edges of the
//		  bounding box grown by 10%
//		• Write: <name>_GVRP_Spatial.txt with capacity, work distance, depots,
//		  nodes and MUTUALLY_EXCLUSIVE_GROUP_SECTION
//
// Packages:
//
//	geom/      points and bounding boxes
//	tsplib/    instance parser
//	fleet/     vehicle count tiers
//	gridpart/  adaptive grid partitioner
//	depot/     depot placement layouts
//	gvrp/      document model, encoder, decoder and verifier
//	convert/   per-instance pipeline, batch runner, watcher
//	manifest/  bolt-backed record of past conversions
//	stats/     solver comparison on converted instances
//	config/    YAML, dotenv and environment settings
//	cli/       the gvrpgen command line (cmd/gvrpgen)
//
// Quick ASCII pipeline:
//
//	 *.tsp ──► tsplib.Parse ──► fleet.VehicleCount
//	                  │                │
//	                  ▼                ▼
//	        gridpart.Partition    depot.Place
//	                  │                │
//	                  └──► gvrp.Build ◄┘──► gvrp.WriteFile
//
// See cmd/gvrpgen for the batch converter and each package's doc.go for
// details.
package gvrp
