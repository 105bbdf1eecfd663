// SPDX-License-Identifier: MIT

package gvrp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gvrp/geom"
)

// Decode reads a document written by Encode. Header fields may appear in any
// order before the first section; sections must appear in the order depots,
// nodes, groups. Ids in every section must run 1..k without gaps.
// DIMENSION and NUM_OF_GROUPS must match the section lengths.
// Complexity: O(L) for L input bytes.
func Decode(r io.Reader) (*Document, error) {
	var (
		d        Document
		section  string
		lineNo   int
		numGroup = -1
		err      error
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line {
		case DepotSection, NodeSection, GroupSection:
			section = line
			continue
		case "EOF":
			section = "EOF"
			continue
		}

		switch section {
		case "":
			err = d.decodeHeader(line, &numGroup)
		case DepotSection:
			d.Depots, err = appendCoord(d.Depots, line)
		case NodeSection:
			d.Nodes, err = appendCoord(d.Nodes, line)
		case GroupSection:
			d.Groups, err = appendGroup(d.Groups, line)
		default:
			err = fmt.Errorf("unexpected content after EOF")
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	if d.Dimension != len(d.Nodes) {
		return nil, fmt.Errorf("%w: DIMENSION %d but %d nodes", ErrMalformed, d.Dimension, len(d.Nodes))
	}
	if numGroup != len(d.Groups) {
		return nil, fmt.Errorf("%w: NUM_OF_GROUPS %d but %d groups", ErrMalformed, numGroup, len(d.Groups))
	}

	return &d, nil
}

func (d *Document) decodeHeader(line string, numGroups *int) error {
	key, val, ok := strings.Cut(line, ":")
	if !ok {
		return fmt.Errorf("expected KEY: VALUE, got %q", line)
	}
	key, val = strings.TrimSpace(key), strings.TrimSpace(val)

	var err error
	switch key {
	case "NAME":
		d.Name = strings.TrimSuffix(val, NameSuffix)
	case "TYPE":
		d.Type = val
	case "EDGE_WEIGHT_TYPE":
		d.EdgeWeightType = val
	case "DIMENSION":
		d.Dimension, err = strconv.Atoi(val)
	case "VEHICLES":
		d.Vehicles, err = strconv.Atoi(val)
	case "CAPACITY":
		d.Capacity, err = strconv.Atoi(val)
	case "WORK_DISTANCE":
		d.WorkDistance, err = strconv.ParseFloat(val, 64)
	case "NUM_OF_GROUPS":
		*numGroups, err = strconv.Atoi(val)
	}
	// unknown keys are tolerated for forward compatibility

	return err
}

func appendCoord(pts []geom.Point, line string) ([]geom.Point, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return pts, fmt.Errorf("expected 3 fields, got %d", len(f))
	}
	if err := expectID(f[0], len(pts)+1); err != nil {
		return pts, err
	}
	x, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return pts, err
	}
	y, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return pts, err
	}

	return append(pts, geom.Point{X: x, Y: y}), nil
}

func appendGroup(groups [][]int, line string) ([][]int, error) {
	f := strings.Fields(line)
	if err := expectID(f[0], len(groups)+1); err != nil {
		return groups, err
	}
	members := make([]int, 0, len(f)-1)
	for _, s := range f[1:] {
		m, err := strconv.Atoi(s)
		if err != nil {
			return groups, err
		}
		members = append(members, m)
	}

	return append(groups, members), nil
}

func expectID(s string, want int) error {
	id, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if id != want {
		return fmt.Errorf("id %d out of sequence, want %d", id, want)
	}

	return nil
}
