// Package wpll implements weighted (bottleneck) Pruned Landmark Labeling
// (spec.md C6) over an undirected weighted graph: label[v] is an ascending
// list of (landmark, bottleneck) pairs, where bottleneck is the minimum edge
// weight on some path from landmark to v — i.e. the best bottleneck
// achievable, which is the *maximum* over all paths of the path's minimum
// edge. A self-entry (v, +Inf) is appended to every label at the end of the
// build.
package wpll

import (
	"math"
	"sort"

	"github.com/katalvlaran/reachcompress/wgraph"
)

// VID is a dense non-negative vertex identifier.
type VID = int32

// Inf represents +infinity bottleneck (the self-entry).
const Inf = math.MaxInt64

// Entry is one (landmark, bottleneck) label pair.
type Entry struct {
	Landmark   VID
	Bottleneck int64
}

// Neighbor is a type alias for wgraph.Neighbor so *wgraph.Graph satisfies
// GraphView directly, with no adapter needed.
type Neighbor = wgraph.Neighbor

// GraphView is the minimal read-only surface weighted-PLL construction
// needs; *wgraph.Graph satisfies it.
type GraphView interface {
	HasVertex(v VID) bool
	Neighbors(v VID) []Neighbor
	VertexIDs() []VID
}

// Index holds the built bottleneck labels.
type Index struct {
	label    map[VID][]Entry
	vertices []VID
}

// Build constructs a weighted-PLL index over g.
//
// Order: vertices by unweighted degree descending, ties ascending by vertex
// ID. For each landmark L, a BFS whose state is (vertex, current
// bottleneck) starting at +Inf; visiting x via an edge of weight w yields
// candidate = min(current, w); if HopBottleneckQuery(L,x,candidate) holds,
// expansion through x is pruned, else (L,candidate) is inserted into
// label[x] (or updated to keep the larger bottleneck if L is already
// present). After every landmark, (v, +Inf) is appended to label[v].
func Build(g GraphView) *Index {
	verts := g.VertexIDs()
	order := append([]VID(nil), verts...)
	sort.Slice(order, func(i, j int) bool {
		di, dj := len(g.Neighbors(order[i])), len(g.Neighbors(order[j]))
		if di != dj {
			return di > dj
		}
		return order[i] < order[j]
	})

	idx := &Index{label: make(map[VID][]Entry, len(verts)), vertices: append([]VID(nil), verts...)}
	for _, landmark := range order {
		idx.bfsFromLandmark(g, landmark)
	}
	for _, v := range verts {
		idx.label[v] = append(idx.label[v], Entry{Landmark: v, Bottleneck: Inf})
		sortLabel(idx.label[v])
	}
	return idx
}

// Vertices returns every vertex the index was built over, ascending (used
// by cache save).
func (idx *Index) Vertices() []VID { return idx.vertices }

type state struct {
	v  VID
	bw int64
}

func (idx *Index) bfsFromLandmark(g GraphView, landmark VID) {
	best := map[VID]int64{landmark: Inf}
	queue := []state{{v: landmark, bw: Inf}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range g.Neighbors(cur.v) {
			candidate := cur.bw
			if n.Weight < candidate {
				candidate = n.Weight
			}
			if prior, ok := best[n.To]; ok && prior >= candidate {
				continue // already have an equal-or-better bottleneck recorded
			}
			if n.To != landmark && idx.hopBottleneckQuery(landmark, n.To, candidate) {
				best[n.To] = candidate
				continue // pruned: reachable via an earlier landmark at >= this bottleneck
			}
			best[n.To] = candidate
			if n.To != landmark {
				idx.upsert(n.To, landmark, candidate)
			}
			queue = append(queue, state{v: n.To, bw: candidate})
		}
	}
}

// upsert inserts or updates (landmark, bw) in label[v], keeping the larger
// bottleneck if landmark is already present, and keeping the list sorted by
// landmark ID.
func (idx *Index) upsert(v, landmark VID, bw int64) {
	list := idx.label[v]
	for i := range list {
		if list[i].Landmark == landmark {
			if bw > list[i].Bottleneck {
				list[i].Bottleneck = bw
			}
			return
		}
	}
	pos := sort.Search(len(list), func(i int) bool { return list[i].Landmark > landmark })
	list = append(list, Entry{})
	copy(list[pos+1:], list[pos:])
	list[pos] = Entry{Landmark: landmark, Bottleneck: bw}
	idx.label[v] = list
}

func sortLabel(s []Entry) {
	sort.Slice(s, func(i, j int) bool { return s[i].Landmark < s[j].Landmark })
}

// hopBottleneckQuery scans the two sorted label lists of landmark and x;
// succeeds iff some common landmark m satisfies min(bw(L->m), bw(m->x)) >= bw.
func (idx *Index) hopBottleneckQuery(landmark, x VID, bw int64) bool {
	la := idx.label[landmark]
	lb := idx.label[x]
	sortLabel(la)
	i, j := 0, 0
	for i < len(la) && j < len(lb) {
		switch {
		case la[i].Landmark == lb[j].Landmark:
			m := la[i].Bottleneck
			if lb[j].Bottleneck < m {
				m = lb[j].Bottleneck
			}
			if m >= bw {
				return true
			}
			i++
			j++
		case la[i].Landmark < lb[j].Landmark:
			i++
		default:
			j++
		}
	}
	return false
}

// Reachable reports whether there is a path from u to v every edge of which
// has weight >= k. True if u==v; otherwise merges the two label lists and
// succeeds if a common landmark m has min(bw(u,m), bw(m,v)) >= k.
func (idx *Index) Reachable(u, v VID, k int64) bool {
	if u == v {
		return true
	}
	la, lb := idx.label[u], idx.label[v]
	i, j := 0, 0
	for i < len(la) && j < len(lb) {
		switch {
		case la[i].Landmark == lb[j].Landmark:
			m := la[i].Bottleneck
			if lb[j].Bottleneck < m {
				m = lb[j].Bottleneck
			}
			if m >= k {
				return true
			}
			i++
			j++
		case la[i].Landmark < lb[j].Landmark:
			i++
		default:
			j++
		}
	}
	return false
}

// Label returns the ascending-by-landmark entry list for v (read-only; used
// by the cache layer).
func (idx *Index) Label(v VID) []Entry { return idx.label[v] }

// FromLabels rebuilds an Index directly from a precomputed label map and
// vertex set, used when loading a saved weighted-PLL index instead of
// rebuilding.
func FromLabels(label map[VID][]Entry, vertices []VID) *Index {
	return &Index{label: label, vertices: vertices}
}
