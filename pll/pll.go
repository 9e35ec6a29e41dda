// Package pll implements directed Pruned Landmark Labeling (spec.md C5): a
// 2-hop IN/OUT labeling over a DAG such that reachability is decided by
// label-set intersection instead of a graph traversal per query.
//
// Build requires an acyclic graph (spec.md: "Build (DAG required)"); the
// source preprocesses cyclic graphs into a condensed DAG of SCC
// representatives via an equivalence mapping (spec.md §9) before calling
// Build — this package itself only verifies acyclicity and returns
// ErrGraphHasCycle otherwise.
package pll

import (
	"sort"

	"github.com/katalvlaran/reachcompress/internal/errs"
)

// VID is a dense non-negative vertex identifier.
type VID = int32

var (
	ErrInvalidVertex = errs.ErrInvalidVertex
	ErrGraphHasCycle = errs.ErrGraphHasCycle
)

// GraphView is the minimal read-only surface PLL construction needs.
type GraphView interface {
	MaxID() VID
	NodeExists(v VID) bool
	OutNeighbors(v VID) []VID
	InNeighbors(v VID) []VID
}

// Index holds the built IN/OUT label families.
type Index struct {
	in   map[VID][]VID
	out  map[VID][]VID
	live map[VID]bool
}

// Build constructs a directed PLL index over g. Returns ErrGraphHasCycle if
// g is not a DAG.
//
// Order: vertices are ranked by (in_deg+1)*(out_deg+1) descending, ties
// broken ascending by vertex ID (spec.md §5 Determinism). For each landmark
// L in that order: a forward pruned BFS along out-edges appends L to IN[x]
// unless HopQuery(L,x) already holds; a backward pruned BFS along in-edges
// symmetrically appends L to OUT[x]. Dedup (and sort, for intersection via
// two-pointer merge) each IN/OUT list at the end.
func Build(g GraphView) (*Index, error) {
	if isCyclic(g) {
		return nil, ErrGraphHasCycle
	}

	order := landmarkOrder(g)
	idx := &Index{in: make(map[VID][]VID), out: make(map[VID][]VID), live: make(map[VID]bool, len(order))}
	for _, v := range order {
		idx.live[v] = true
	}

	for _, landmark := range order {
		idx.forwardPrunedBFS(g, landmark)
		idx.backwardPrunedBFS(g, landmark)
	}
	idx.dedupAll()

	return idx, nil
}

func landmarkOrder(g GraphView) []VID {
	max := g.MaxID()
	var verts []VID
	for v := VID(0); v <= max; v++ {
		if g.NodeExists(v) {
			verts = append(verts, v)
		}
	}
	score := func(v VID) int64 {
		return int64(len(g.InNeighbors(v))+1) * int64(len(g.OutNeighbors(v))+1)
	}
	sort.Slice(verts, func(i, j int) bool {
		si, sj := score(verts[i]), score(verts[j])
		if si != sj {
			return si > sj
		}
		return verts[i] < verts[j]
	})
	return verts
}

// forwardPrunedBFS walks out-edges from landmark, appending landmark to
// IN[x] for every x reached that is not already covered by an earlier
// landmark's 2-hop label (HopQuery).
func (idx *Index) forwardPrunedBFS(g GraphView, landmark VID) {
	visited := map[VID]bool{landmark: true}
	queue := []VID{landmark}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]

		if x != landmark {
			if idx.hopQuery(landmark, x) {
				continue // pruned
			}
			idx.in[x] = append(idx.in[x], landmark)
		}

		for _, n := range g.OutNeighbors(x) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
}

// backwardPrunedBFS is forwardPrunedBFS's mirror along in-edges, appending
// landmark to OUT[x].
func (idx *Index) backwardPrunedBFS(g GraphView, landmark VID) {
	visited := map[VID]bool{landmark: true}
	queue := []VID{landmark}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]

		if x != landmark {
			if idx.hopQuery(landmark, x) {
				continue
			}
			idx.out[x] = append(idx.out[x], landmark)
		}

		for _, n := range g.InNeighbors(x) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
}

// hopQuery is the 2-hop intersection test OUT[L] ∩ IN[x] used during
// construction to decide whether to prune expansion past x.
func (idx *Index) hopQuery(landmark, x VID) bool {
	return intersects(idx.out[landmark], idx.in[x])
}

func (idx *Index) dedupAll() {
	for v := range idx.in {
		idx.in[v] = dedupSorted(idx.in[v])
	}
	for v := range idx.out {
		idx.out[v] = dedupSorted(idx.out[v])
	}
}

func dedupSorted(s []VID) []VID {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	out := s[:0]
	for i, v := range s {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func intersects(a, b []VID) bool {
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

func contains(s []VID, v VID) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	return i < len(s) && s[i] == v
}

// Query reports whether u can reach v per spec.md §4.5: false if either
// vertex is out of range (not present in the index at all); true if u==v, or
// v ∈ OUT[u], or u ∈ IN[v], or OUT[u] ∩ IN[v] != ∅.
func (idx *Index) Query(u, v VID) bool {
	if !idx.live[u] || !idx.live[v] {
		return false
	}
	if u == v {
		return true
	}
	if contains(idx.out[u], v) {
		return true
	}
	if contains(idx.in[v], u) {
		return true
	}
	return intersects(idx.out[u], idx.in[v])
}

// IN returns the ascending IN label of v (read-only; used by cache save).
func (idx *Index) IN(v VID) []VID { return idx.in[v] }

// OUT returns the ascending OUT label of v (read-only; used by cache save).
func (idx *Index) OUT(v VID) []VID { return idx.out[v] }

// FromLabels rebuilds an Index directly from precomputed IN/OUT maps and an
// explicit liveness set, used by the cache layer when loading a saved index
// instead of rebuilding.
func FromLabels(in, out map[VID][]VID, live map[VID]bool) *Index {
	return &Index{in: in, out: out, live: live}
}

// Vertices returns every live vertex, ascending (used by cache save).
func (idx *Index) Vertices() []VID {
	out := make([]VID, 0, len(idx.live))
	for v := range idx.live {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// isCyclic detects a directed cycle via iterative DFS with a three-color
// stack, independent of any particular container's own cycle check so PLL
// can validate csr.Store or adjgraph.Graph alike.
func isCyclic(g GraphView) bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	max := g.MaxID()
	color := make(map[VID]int)

	type frame struct {
		v   VID
		idx int
	}
	for start := VID(0); start <= max; start++ {
		if !g.NodeExists(start) || color[start] != white {
			continue
		}
		stack := []frame{{v: start, idx: 0}}
		color[start] = gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := g.OutNeighbors(top.v)
			if top.idx < len(out) {
				w := out[top.idx]
				top.idx++
				switch color[w] {
				case white:
					color[w] = gray
					stack = append(stack, frame{v: w, idx: 0})
				case gray:
					return true
				}
			} else {
				color[top.v] = black
				stack = stack[:len(stack)-1]
			}
		}
	}
	return false
}
