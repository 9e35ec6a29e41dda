package wgraph

// buildUnionFind rebuilds parent/rank over edges with weight >= minWeight,
// then performs one full path-compression pass so that, once BuildIndices
// returns, find() needs no further mutation and concurrent readers are safe
// without a mutex (spec.md §5's adopted rule).
func (g *Graph) buildUnionFind() {
	g.parent = make(map[VID]VID, len(g.adj))
	g.rank = make(map[VID]int, len(g.adj))
	for v := range g.adj {
		g.parent[v] = v
		g.rank[v] = 0
	}

	for v, nbrs := range g.adj {
		for _, n := range nbrs {
			if n.Weight < g.minWeight {
				continue
			}
			g.union(v, n.To)
		}
	}

	// One-shot full compression: every vertex points directly at its root.
	for v := range g.parent {
		g.parent[v] = g.findMutable(v)
	}
}

// findMutable is the ordinary path-compressing find, used only during the
// single-threaded build phase.
func (g *Graph) findMutable(v VID) VID {
	root := v
	for g.parent[root] != root {
		root = g.parent[root]
	}
	for g.parent[v] != root {
		g.parent[v], v = root, g.parent[v]
	}
	return root
}

func (g *Graph) union(u, v VID) {
	ru, rv := g.findMutable(u), g.findMutable(v)
	if ru == rv {
		return
	}
	if g.rank[ru] < g.rank[rv] {
		ru, rv = rv, ru
	}
	g.parent[rv] = ru
	if g.rank[ru] == g.rank[rv] {
		g.rank[ru]++
	}
}

// find is the read-only lookup used after BuildIndices: parent is already
// fully compressed, so this is O(1) with no mutation.
func (g *Graph) find(v VID) (VID, bool) {
	root, ok := g.parent[v]
	return root, ok
}

// DSReachable reports whether u and v are in the same union-find component
// over the min-weight-filtered edge set. BuildIndices must have been called.
func (g *Graph) DSReachable(u, v VID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if u == v {
		_, ok := g.adj[u]
		return ok || g.parent[u] == u
	}
	ru, ok1 := g.find(u)
	rv, ok2 := g.find(v)
	return ok1 && ok2 && ru == rv
}
