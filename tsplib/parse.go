// SPDX-License-Identifier: MIT

package tsplib

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gvrp/geom"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseFile reads the instance at path. The instance name is the file's
// base name without its extension.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, NameFromPath(path))
}

// NameFromPath derives an instance name: "data/berlin52.tsp" → "berlin52".
func NameFromPath(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Parse extracts node coordinates from raw instance text.
//
// Contract:
//   - the whole input must be valid UTF-8, else ErrEncoding;
//   - NODE_COORD_SECTION is the target section when any line contains it,
//     else DISPLAY_DATA_SECTION, else ErrUnsupportedFormat;
//   - the first line containing the target marker starts the scan; lines
//     before it are headers;
//   - at least MinNodes coordinate lines must parse, else ErrTooFewNodes.
//
// Complexity: O(L) for L input bytes.
func Parse(r io.Reader, name string) (*Instance, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%s: %w", name, ErrEncoding)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	lines := strings.Split(string(raw), "\n")
	target := targetSection(lines)
	if target == "" {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}

	inst := &Instance{Name: name, Section: target, Header: make(map[string]string)}
	inCoord := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, eofMarker) {
			break
		}
		if strings.Contains(line, target) {
			inCoord = true
			continue
		}
		if !inCoord {
			parseHeader(inst.Header, line)
			continue
		}
		if p, ok := parseCoordLine(line); ok {
			inst.Nodes = append(inst.Nodes, Node{ID: len(inst.Nodes) + 1, Point: p})
		}
	}

	if len(inst.Nodes) < MinNodes {
		return nil, fmt.Errorf("%s: %w (%d parsed, need %d)", name, ErrTooFewNodes, len(inst.Nodes), MinNodes)
	}

	return inst, nil
}

// targetSection picks the coordinate marker to read: NODE_COORD_SECTION
// when any line carries it, else DISPLAY_DATA_SECTION, else "".
func targetSection(lines []string) string {
	display := false
	for _, line := range lines {
		if strings.Contains(line, NodeCoordSection) {
			return NodeCoordSection
		}
		if strings.Contains(line, DisplayDataSection) {
			display = true
		}
	}
	if display {
		return DisplayDataSection
	}

	return ""
}

// parseHeader records a "KEY : VALUE" header line. Lines without a
// colon (other section markers, stray data) are ignored.
func parseHeader(h map[string]string, line string) {
	key, val, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	if key == "" {
		return
	}
	h[key] = strings.TrimSpace(val)
}

// parseCoordLine accepts "<int> <x> <y> [...]" and rejects non-finite values.
func parseCoordLine(line string) (geom.Point, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return geom.Point{}, false
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return geom.Point{}, false
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point{}, false
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return geom.Point{}, false
	}
	p := geom.Point{X: x, Y: y}
	if !p.Finite() {
		return geom.Point{}, false
	}

	return p, true
}
