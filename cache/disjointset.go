package cache

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/reachcompress/hypergraph"
	"github.com/katalvlaran/reachcompress/internal/errs"
)

// SaveDisjointSet writes ds in the cache format from spec.md §6: first
// line n, then one "parent rank" line per member of members (ascending),
// in that same order. members is supplied by the caller (the live graph's
// vertex/hyperedge-ID set) rather than stored per-line, since the cache
// format carries no id column of its own — on load, a parent/rank count
// mismatch against len(members) is the cache's size check.
func SaveDisjointSet(w io.Writer, ds *hypergraph.DisjointSet, members []int32) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d\n", len(members))
	for _, x := range members {
		parent, rank, ok := ds.ParentRank(x)
		if !ok {
			parent, rank = x, 0
		}
		fmt.Fprintf(&buf, "%d %d\n", parent, rank)
	}
	return writeWithTrailer(w, buf.Bytes())
}

// LoadDisjointSet reads the format SaveDisjointSet writes, re-associating
// line i with members[i] (members must be given in the same ascending
// order used at save time). A count mismatch is ErrCacheMismatch.
func LoadDisjointSet(r io.Reader, members []int32) (*hypergraph.DisjointSet, error) {
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
	if n != len(members) || len(lines)-1 != n {
		return nil, errs.ErrCacheMismatch
	}

	parent := make(map[int32]int32, n)
	rank := make(map[int32]int, n)
	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errs.ErrCorruptInput
		}
		p, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, errs.ErrCorruptInput
		}
		rk, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errs.ErrCorruptInput
		}
		parent[members[i]] = int32(p)
		rank[members[i]] = rk
	}
	return hypergraph.LoadDisjointSet(parent, rank), nil
}
