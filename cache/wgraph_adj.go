package cache

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/reachcompress/internal/errs"
	"github.com/katalvlaran/reachcompress/wgraph"
)

// SaveWeightedGraph writes g's adjacency in the cache format from spec.md
// §6: first line N, then for each vertex u, "u neighbor_1 weight_1
// neighbor_2 weight_2 …".
func SaveWeightedGraph(w io.Writer, g *wgraph.Graph) error {
	verts := g.VertexIDs()
	snapshot := g.AdjacencySnapshot()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d\n", len(verts))
	for _, u := range verts {
		nbrs := snapshot[u]
		fmt.Fprintf(&buf, "%d", u)
		for _, n := range nbrs {
			fmt.Fprintf(&buf, " %d %d", n.To, n.Weight)
		}
		buf.WriteByte('\n')
	}
	return writeWithTrailer(w, buf.Bytes())
}

// LoadWeightedGraph reads the format SaveWeightedGraph writes and rebuilds
// a Graph via wgraph.FromAdjacencySnapshot. expectedN mismatches are
// ErrCacheMismatch.
func LoadWeightedGraph(r io.Reader, expectedN int, minWeight int64) (*wgraph.Graph, error) {
	lines, err := readWithTrailer(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.ErrCacheMismatch
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, errs.ErrCorruptInput
	}
	if n != expectedN {
		return nil, errs.ErrCacheMismatch
	}

	adj := make(map[VID][]wgraph.Neighbor, n)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 1 || len(fields)%2 != 1 {
			return nil, errs.ErrCorruptInput
		}
		u, err := parseVID(fields[0])
		if err != nil {
			return nil, errs.ErrCorruptInput
		}
		rest := fields[1:]
		nbrs := make([]wgraph.Neighbor, 0, len(rest)/2)
		for i := 0; i < len(rest); i += 2 {
			to, err := parseVID(rest[i])
			if err != nil {
				return nil, errs.ErrCorruptInput
			}
			weight, err := strconv.ParseInt(rest[i+1], 10, 64)
			if err != nil {
				return nil, errs.ErrCorruptInput
			}
			nbrs = append(nbrs, wgraph.Neighbor{To: to, Weight: weight})
		}
		adj[u] = nbrs
	}
	return wgraph.FromAdjacencySnapshot(adj, minWeight), nil
}
