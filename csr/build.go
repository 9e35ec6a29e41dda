package csr

import "sort"

// AdjacencySource is the minimal read-only view FromAdjacency needs from an
// adjgraph.Graph (or any compatible mutable graph) to bulk-build a Store.
// Kept as a local interface to avoid an import cycle with package adjgraph,
// which itself may be rebuilt from a Store.
type AdjacencySource interface {
	MaxID() int32
	NodeExists(v VID) bool
	OutNeighbors(v VID) []VID
	Partition(v VID) int16
}

// FromEdgeList allocates and fills a Store from a flat edge list. Degrees are
// counted first, then prefix-summed into row pointers, then columns are
// scattered and each row sorted ascending. Self-loops (u==v) are dropped.
//
// n must be large enough to hold every vertex referenced by edges; callers
// typically derive n as 1+max(vertex IDs seen).
// Complexity: O(V + E log d) where d is the max row degree (per-row sort).
func FromEdgeList(n int32, edges []Edge) *Store {
	s := New(n)
	if n == 0 {
		return s
	}

	outDeg := make([]int32, n)
	inDeg := make([]int32, n)
	var clean []Edge
	clean = make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue // self-loops dropped
		}
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			continue // out-of-range edges are silently skipped at this layer
		}
		outDeg[e.From]++
		inDeg[e.To]++
		clean = append(clean, e)
	}

	// Prefix-sum row pointers.
	for i := int32(0); i < n; i++ {
		s.outRow[i+1] = s.outRow[i] + outDeg[i]
		s.inRow[i+1] = s.inRow[i] + inDeg[i]
	}
	total := s.outRow[n]
	s.outCol = make([]VID, total)
	s.inCol = make([]VID, total)

	// Scatter columns using a cursor per row.
	outCursor := make([]int32, n)
	inCursor := make([]int32, n)
	copy(outCursor, s.outRow[:n])
	copy(inCursor, s.inRow[:n])
	for _, e := range clean {
		s.outCol[outCursor[e.From]] = e.To
		outCursor[e.From]++
		s.inCol[inCursor[e.To]] = e.From
		inCursor[e.To]++
	}

	// Sort each row ascending.
	for i := int32(0); i < n; i++ {
		row := s.outCol[s.outRow[i]:s.outRow[i+1]]
		sort.Slice(row, func(a, b int) bool { return row[a] < row[b] })
		rowIn := s.inCol[s.inRow[i]:s.inRow[i+1]]
		sort.Slice(rowIn, func(a, b int) bool { return rowIn[a] < rowIn[b] })
	}

	s.numEdges = total
	var live int32
	for i := int32(0); i < n; i++ {
		if s.outRow[i+1] > s.outRow[i] || s.inRow[i+1] > s.inRow[i] {
			s.liveSlots[i] = true
			live++
		}
	}
	s.numNodes = live

	return s
}

// FromAdjacency rebuilds a Store from any AdjacencySource (typically an
// *adjgraph.Graph), carrying over partition tags.
// Complexity: O(V + E log d).
func FromAdjacency(g AdjacencySource) *Store {
	n := g.MaxID() + 1
	var edges []Edge
	for v := int32(0); v < n; v++ {
		if !g.NodeExists(v) {
			continue
		}
		for _, w := range g.OutNeighbors(v) {
			edges = append(edges, Edge{From: v, To: w})
		}
	}
	s := FromEdgeList(n, edges)
	for v := int32(0); v < n; v++ {
		if g.NodeExists(v) {
			s.partition[v] = g.Partition(v)
		}
	}
	return s
}
