package hypergraph

// Reachable reports unconstrained hypergraph reachability: true iff u and v
// share a vertex-level disjoint-set root (spec.md §4.9, "vertex_ds.find(u)
// == vertex_ds.find(v)").
func (idx *Index) Reachable(u, v VID) bool {
	return idx.vertexDS.Connected(u, v)
}

// clampK bounds k to [1, KMax].
func (idx *Index) clampK(k int) int {
	if k < 1 {
		return 1
	}
	if k > idx.kMax {
		return idx.kMax
	}
	return k
}

// sharedEdge reports whether u and v co-occur in some hyperedge.
func (idx *Index) sharedEdge(u, v VID) bool {
	eu := idx.hg.EdgesOf(u)
	ev := idx.hg.EdgesOf(v)
	i, j := 0, 0
	for i < len(eu) && j < len(ev) {
		switch {
		case eu[i] == ev[j]:
			return true
		case eu[i] < ev[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// ReachableK answers reachable(u,v,k) via the disjoint-set layers (spec.md
// §4.9): true if u and v share a hyperedge outright; otherwise true iff
// some pair of hyperedges (e_u containing u, e_v containing v) lie in the
// same component of WeightedGraph_{k'} (k' = clamp(k,1,KMax)).
func (idx *Index) ReachableK(u, v VID, k int) bool {
	if idx.sharedEdge(u, v) {
		return true
	}
	lay := idx.layers[idx.clampK(k)]
	if lay == nil {
		return false
	}
	for _, eu := range idx.hg.EdgesOf(u) {
		for _, ev := range idx.hg.EdgesOf(v) {
			if lay.ds.Connected(eu, ev) {
				return true
			}
		}
	}
	return false
}

// ReachableKViaPLL answers reachable(u,v,k) via the weighted-PLL index
// instead of the disjoint-set layers (spec.md §4.9's third query form):
// same shared-edge shortcut, then a pairwise weighted-PLL test over every
// (e_u, e_v) candidate.
func (idx *Index) ReachableKViaPLL(u, v VID, k int) bool {
	if idx.sharedEdge(u, v) {
		return true
	}
	for _, eu := range idx.hg.EdgesOf(u) {
		for _, ev := range idx.hg.EdgesOf(v) {
			if idx.pll.Reachable(eu, ev, int64(k)) {
				return true
			}
		}
	}
	return false
}

// ReachableBFS is the bidirectional-BFS fallback on the hypergraph's
// bipartite-like vertex/hyperedge structure (spec.md §4.9): a path is a
// vertex -> hyperedge -> vertex -> hyperedge -> ... chain; when
// minIntersectionSize > 0, each hyperedge-to-hyperedge step along the
// implicit edge-adjacency must have |intersection| >= minIntersectionSize.
func (idx *Index) ReachableBFS(u, v VID, minIntersectionSize int) bool {
	if u == v {
		return true
	}

	startEdges := idx.hg.EdgesOf(u)
	targetEdges := make(map[EID]bool, len(idx.hg.EdgesOf(v)))
	for _, e := range idx.hg.EdgesOf(v) {
		targetEdges[e] = true
	}
	for _, e := range startEdges {
		if targetEdges[e] {
			return true
		}
	}

	visited := make(map[EID]bool, len(startEdges))
	queue := make([]EID, 0, len(startEdges))
	for _, e := range startEdges {
		visited[e] = true
		queue = append(queue, e)
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		members := idx.hg.Members(e)
		for _, w := range members {
			for _, next := range idx.hg.EdgesOf(w) {
				if visited[next] {
					continue
				}
				if minIntersectionSize > 0 && intersectionSize(idx.hg.Members(e), idx.hg.Members(next)) < minIntersectionSize {
					continue
				}
				visited[next] = true
				if targetEdges[next] {
					return true
				}
				queue = append(queue, next)
			}
		}
	}
	return false
}

// KMax returns the number of WeightedGraph_k layers built.
func (idx *Index) KMax() int { return idx.kMax }
