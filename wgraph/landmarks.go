package wgraph

import "sort"

// BuildIndices rebuilds the union-find (always) and, if withLandmarks is
// true, rebuilds landmark labels for landmarkReachable pre-checks.
//
// Landmark build (spec.md §4.3): order vertices by descending degree; for
// each landmark L in that order, BFS ignoring edges with weight < minWeight;
// on reaching x, skip expansion if labels[L] ∩ labels[x] != ∅, else append L
// to labels[x]. Ties in degree break ascending by vertex ID (spec.md §5
// Determinism).
func (g *Graph) BuildIndices(withLandmarks bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.buildUnionFind()

	if withLandmarks {
		g.buildLandmarks()
	}
	g.fresh = true
}

func (g *Graph) buildLandmarks() {
	order := make([]VID, 0, len(g.adj))
	for v := range g.adj {
		order = append(order, v)
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := len(g.adj[order[i]]), len(g.adj[order[j]])
		if di != dj {
			return di > dj
		}
		return order[i] < order[j]
	})

	g.labels = make(map[VID][]VID, len(g.adj))
	for _, landmark := range order {
		g.bfsFromLandmark(landmark)
	}
	for v := range g.labels {
		sort.Slice(g.labels[v], func(i, j int) bool { return g.labels[v][i] < g.labels[v][j] })
	}
}

func (g *Graph) bfsFromLandmark(landmark VID) {
	visited := map[VID]bool{landmark: true}
	queue := []VID{landmark}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]

		if hopQueryIntersect(g.labels[landmark], g.labels[x]) {
			continue // pruned: already reachable via an earlier landmark's label
		}
		g.labels[x] = append(g.labels[x], landmark)

		for _, n := range g.adj[x] {
			if n.Weight < g.minWeight {
				continue
			}
			if !visited[n.To] {
				visited[n.To] = true
				queue = append(queue, n.To)
			}
		}
	}
}

// hopQueryIntersect reports whether two ascending lists share any element.
func hopQueryIntersect(a, b []VID) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// LandmarkReachable reports whether u and v share a landmark, requiring
// BuildIndices(withLandmarks=true) to have run.
func (g *Graph) LandmarkReachable(u, v VID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if u == v {
		return true
	}
	if g.labels == nil {
		return false
	}
	return hopQueryIntersect(g.labels[u], g.labels[v])
}
