// Package netio reads and writes flow networks in the plain text record
// format consumed by cmd/mpmflow:
//
//	from to capacity [flow]
//
// One arc per line, fields separated by whitespace, flow defaulting to 0.
// Blank lines are skipped. Node IDs are arbitrary non-empty tokens, so both
// numeric and symbolic IDs work.
//
// All input-shape errors surface here, wrapped around ErrMalformedRecord
// with the offending line number; the flow engine itself never parses text.
package netio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mpmflow/network"
)

// ErrMalformedRecord is returned when a line does not parse as an arc record.
var ErrMalformedRecord = errors.New("netio: malformed record")

// Read parses arc records from r into a fresh Network.
// Returns ErrMalformedRecord (wrapped with the line number) on records with
// the wrong field count or non-integer capacity/flow, and propagates
// network construction errors (self-loops, capacity bounds) with the same
// line context.
func Read(r io.Reader) (*network.Network, error) {
	net := network.New()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 || len(fields) > 4 {
			return nil, fmt.Errorf("%w: line %d: want 3 or 4 fields, got %d", ErrMalformedRecord, line, len(fields))
		}

		capacity, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: capacity %q: %v", ErrMalformedRecord, line, fields[2], err)
		}
		var flow int64
		if len(fields) == 4 {
			if flow, err = strconv.ParseInt(fields[3], 10, 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: flow %q: %v", ErrMalformedRecord, line, fields[3], err)
			}
		}

		if err = net.AddArc(fields[0], fields[1], capacity, flow); err != nil {
			return nil, fmt.Errorf("netio: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("netio: read: %w", err)
	}

	return net, nil
}

// ReadFile parses arc records from the file at path.
func ReadFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netio: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write emits net as arc records, one per line with all four fields, arcs
// sorted by (from, to) so output is reproducible.
func Write(w io.Writer, net *network.Network) error {
	for _, from := range net.Nodes() {
		for _, to := range net.Successors(from) {
			a, _ := net.Arc(from, to)
			if _, err := fmt.Fprintf(w, "%s %s %d %d\n", from, to, a.Cap, a.Flow); err != nil {
				return fmt.Errorf("netio: write: %w", err)
			}
		}
	}

	return nil
}
