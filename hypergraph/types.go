// Package hypergraph implements the hypergraph layered index (spec.md C9):
// reachability between two vertices is reduced to either a vertex-level
// disjoint-set lookup (unconstrained), a per-k disjoint-set lookup over a
// derived weighted graph of hyperedges (intersection-size-constrained), or
// a weighted-PLL query over the same derived graph.
package hypergraph

import "sort"

// VID is a dense non-negative vertex identifier.
type VID = int32

// EID is a hyperedge identifier.
type EID = int32

// Hypergraph is the input structure: a set of hyperedges, each a set of
// member vertices.
type Hypergraph struct {
	edges    map[EID][]VID
	vertexOf map[VID][]EID // reverse index: vertex -> hyperedges containing it
}

// New returns an empty Hypergraph.
func New() *Hypergraph {
	return &Hypergraph{edges: make(map[EID][]VID), vertexOf: make(map[VID][]EID)}
}

// AddHyperedge records edge id as containing members (deduplicated,
// sorted ascending).
func (h *Hypergraph) AddHyperedge(id EID, members []VID) {
	set := make(map[VID]bool, len(members))
	uniq := make([]VID, 0, len(members))
	for _, v := range members {
		if !set[v] {
			set[v] = true
			uniq = append(uniq, v)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	h.edges[id] = uniq
	for _, v := range uniq {
		h.vertexOf[v] = append(h.vertexOf[v], id)
	}
}

// Members returns the sorted member list of hyperedge id.
func (h *Hypergraph) Members(id EID) []VID { return h.edges[id] }

// EdgeIDs returns every hyperedge ID, ascending.
func (h *Hypergraph) EdgeIDs() []EID {
	out := make([]EID, 0, len(h.edges))
	for id := range h.edges {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EdgesOf returns the ascending list of hyperedges containing v.
func (h *Hypergraph) EdgesOf(v VID) []EID {
	list := h.vertexOf[v]
	out := append([]EID(nil), list...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// intersectionSize returns |members(a) ∩ members(b)| via two-pointer merge
// over the sorted member lists.
func intersectionSize(a, b []VID) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}
