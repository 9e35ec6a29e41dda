// Package ioformat implements the plain-text external interfaces from
// spec.md §6: edge lists, hypergraph files, the simplex-dataset-to-
// hypergraph converter, equivalence mappings, and partition-assignment
// files. Every parser skips unparsable lines rather than failing the
// whole file (spec.md §6: "Malformed input lines are silently skipped
// with a warning to stderr").
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// VID is a dense non-negative vertex identifier.
type VID = int32

// Edge is a directed (from,to) vertex pair.
type Edge struct{ From, To VID }

// Warn is called with a human-readable message for every skipped line;
// defaults to writing to os.Stderr, matching the teacher's convention of a
// package-level logging hook callers can redirect in tests.
var Warn = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ioformat: "+format+"\n", args...)
}

// ParseEdgeList reads the edge-list format (spec.md §6): one "u v" pair of
// non-negative integers per line, whitespace-separated. Unparsable lines
// are skipped with a warning.
func ParseEdgeList(r io.Reader) []Edge {
	var edges []Edge
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			Warn("edge list line %d: expected 2 fields, got %d", lineNo, len(fields))
			continue
		}
		u, errU := parseNonNegative(fields[0])
		v, errV := parseNonNegative(fields[1])
		if errU != nil || errV != nil {
			Warn("edge list line %d: unparsable vertex ID", lineNo)
			continue
		}
		edges = append(edges, Edge{From: u, To: v})
	}
	return edges
}

// ParseHypergraphFile reads the hypergraph file format (spec.md §6): one
// hyperedge per line, whitespace-separated non-negative integer vertex
// IDs. Hyperedge i gets ID i (0-indexed, in file order).
func ParseHypergraphFile(r io.Reader) [][]VID {
	var edges [][]VID
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		members := make([]VID, 0, len(fields))
		ok := true
		for _, f := range fields {
			v, err := parseNonNegative(f)
			if err != nil {
				ok = false
				break
			}
			members = append(members, v)
		}
		if !ok {
			Warn("hypergraph line %d: unparsable vertex ID", lineNo)
			continue
		}
		edges = append(edges, members)
	}
	return edges
}

// ParseEquivalence reads the equivalence-mapping file format (spec.md §6):
// one "node equivalence_id" line per entry.
func ParseEquivalence(r io.Reader) map[VID]VID {
	out := make(map[VID]VID)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			Warn("equivalence line %d: expected 2 fields, got %d", lineNo, len(fields))
			continue
		}
		node, errN := parseNonNegative(fields[0])
		class, errC := parseNonNegative(fields[1])
		if errN != nil || errC != nil {
			Warn("equivalence line %d: unparsable ID", lineNo)
			continue
		}
		out[node] = class
	}
	return out
}

// ParsePartitionAssignment reads the partition-assignment file format
// (spec.md §6): one "node partition_id" line per entry.
func ParsePartitionAssignment(r io.Reader) map[VID]int32 {
	out := make(map[VID]int32)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			Warn("partition assignment line %d: expected 2 fields, got %d", lineNo, len(fields))
			continue
		}
		node, errN := parseNonNegative(fields[0])
		pid, errP := parseNonNegative(fields[1])
		if errN != nil || errP != nil {
			Warn("partition assignment line %d: unparsable ID", lineNo)
			continue
		}
		out[node] = pid
	}
	return out
}

// ConvertSimplex reads the two companion files from spec.md §6 ("*-nverts":
// one integer per line, simplex sizes; "*-simplices": vertex IDs, one per
// line, concatenated across all simplices in order) and writes the
// hypergraph file format.
func ConvertSimplex(nverts, simplices io.Reader, w io.Writer) error {
	sizes := readIntLines(nverts)
	ids := readIntLines(simplices)

	pos := 0
	for _, size := range sizes {
		if size < 0 || pos+size > len(ids) {
			Warn("simplex dataset: truncated simplex (need %d vertex IDs, only %d remain)", size, len(ids)-pos)
			break
		}
		members := ids[pos : pos+size]
		pos += size

		parts := make([]string, len(members))
		for i, v := range members {
			parts[i] = strconv.Itoa(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

func readIntLines(r io.Reader) []int {
	var out []int
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			Warn("simplex dataset line %d: unparsable integer", lineNo)
			continue
		}
		out = append(out, n)
	}
	return out
}

func parseNonNegative(s string) (VID, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("ioformat: negative vertex ID %d", n)
	}
	return VID(n), nil
}
