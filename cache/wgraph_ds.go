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

// SaveWeightedGraphDS writes g's union-find (built via g.BuildIndices) in
// the same disjoint-set cache format as SaveDisjointSet, ordered by
// members (the live graph's vertex set, ascending).
func SaveWeightedGraphDS(w io.Writer, g *wgraph.Graph, members []VID) error {
	parent, rank := g.ParentRankSnapshot()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d\n", len(members))
	for _, x := range members {
		p, ok := parent[x]
		if !ok {
			p = x
		}
		fmt.Fprintf(&buf, "%d %d\n", p, rank[x])
	}
	return writeWithTrailer(w, buf.Bytes())
}

// LoadWeightedGraphDS reads the format SaveWeightedGraphDS writes and
// installs it on g via g.LoadUnionFind, skipping a rebuild.
func LoadWeightedGraphDS(r io.Reader, g *wgraph.Graph, members []VID) error {
	lines, err := readWithTrailer(r)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return errs.ErrCacheMismatch
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return errs.ErrCorruptInput
	}
	if n != len(members) || len(lines)-1 != n {
		return errs.ErrCacheMismatch
	}

	parent := make(map[VID]VID, n)
	rank := make(map[VID]int, n)
	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return errs.ErrCorruptInput
		}
		p, err := parseVID(fields[0])
		if err != nil {
			return errs.ErrCorruptInput
		}
		rk, err := strconv.Atoi(fields[1])
		if err != nil {
			return errs.ErrCorruptInput
		}
		parent[members[i]] = p
		rank[members[i]] = rk
	}
	g.LoadUnionFind(parent, rank)
	return nil
}
