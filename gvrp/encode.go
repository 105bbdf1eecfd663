// SPDX-License-Identifier: MIT

package gvrp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/gvrp/geom"
)

// Section markers of the document body.
const (
	DepotSection = "DEPOT_COORD_SECTION"
	NodeSection  = "NODE_COORD_SECTION"
	GroupSection = "MUTUALLY_EXCLUSIVE_GROUP_SECTION"
)

// Encode writes d to w in the GVRP text format. Coordinates and the work
// distance are printed with four decimals; ids are 1-based.
// Complexity: O(N + k + v).
func Encode(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NAME: %s%s\n", d.Name, NameSuffix)
	fmt.Fprintf(bw, "TYPE: %s\n", d.Type)
	fmt.Fprintf(bw, "DIMENSION: %d\n", d.Dimension)
	fmt.Fprintf(bw, "EDGE_WEIGHT_TYPE: %s\n", d.EdgeWeightType)
	fmt.Fprintf(bw, "VEHICLES: %d\n", d.Vehicles)
	fmt.Fprintf(bw, "CAPACITY: %d\n", d.Capacity)
	fmt.Fprintf(bw, "WORK_DISTANCE: %.4f\n", d.WorkDistance)
	fmt.Fprintf(bw, "NUM_OF_GROUPS: %d\n", len(d.Groups))

	bw.WriteString(DepotSection + "\n")
	writeCoords(bw, d.Depots)
	bw.WriteString(NodeSection + "\n")
	writeCoords(bw, d.Nodes)

	bw.WriteString(GroupSection + "\n")
	var sb strings.Builder
	for i, members := range d.Groups {
		sb.Reset()
		sb.WriteString(strconv.Itoa(i + 1))
		for _, m := range members {
			sb.WriteByte('\t')
			sb.WriteString(strconv.Itoa(m))
		}
		sb.WriteByte('\n')
		bw.WriteString(sb.String())
	}

	return bw.Flush()
}

func writeCoords(bw *bufio.Writer, pts []geom.Point) {
	for i, p := range pts {
		fmt.Fprintf(bw, "%d\t%.4f\t%.4f\n", i+1, p.X, p.Y)
	}
}

// WriteFile writes d into dir as d.FileName(), creating dir when absent and
// replacing any existing document of the same name. The document is staged
// in a temporary file and renamed into place, so a failed write never leaves
// a partial document behind. It returns the final path.
func WriteFile(dir string, d *Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	final := filepath.Join(dir, d.FileName())
	tmp, err := os.CreateTemp(dir, "."+d.FileName()+".*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err = Encode(tmp, d); err != nil {
		tmp.Close()
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", err
	}
	if err = os.Rename(tmp.Name(), final); err != nil {
		return "", err
	}

	return final, nil
}
