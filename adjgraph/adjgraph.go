// Package adjgraph implements the mutable per-vertex adjacency-list directed
// graph (spec.md C2): each live vertex keeps a sorted-ascending out list
// (LOUT), a sorted-ascending in list (LIN), and a partition tag. LOUT/LIN
// are dual: AddEdge inserts sorted in both, and is a no-op if the edge
// already exists.
//
// This is the mutable twin of csr.Store — cheap single-edge edits, O(V+E)
// bulk CSR rebuild via csr.FromAdjacency — used as the live graph during
// interactive construction and handed to csr.FromAdjacency once a frozen,
// query-fast representation is needed.
package adjgraph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/reachcompress/internal/errs"
)

// VID is a dense non-negative vertex identifier in [0, N).
type VID = int32

// ErrInvalidVertex re-exports the shared sentinel for convenient errors.Is.
var ErrInvalidVertex = errs.ErrInvalidVertex

type record struct {
	partition int16
	out       []VID
	in        []VID
}

// Graph is a mutable directed adjacency-list graph keyed by dense vertex ID.
type Graph struct {
	mu sync.RWMutex

	records  map[VID]*record
	maxID    VID
	numEdges int64
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{records: make(map[VID]*record), maxID: -1}
}

func (g *Graph) ensure(v VID) *record {
	r, ok := g.records[v]
	if !ok {
		r = &record{partition: -1}
		g.records[v] = r
		if v > g.maxID {
			g.maxID = v
		}
	}
	return r
}

// insertSortedUnique inserts v into a sorted-ascending slice if absent.
func insertSortedUnique(s []VID, v VID) []VID {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:len(s)-1])
	s[i] = v
	return s
}

func removeSortedUnique(s []VID, v VID) []VID {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	if i >= len(s) || s[i] != v {
		return s
	}
	copy(s[i:], s[i+1:])
	return s[:len(s)-1]
}

// AddEdge inserts (from,to) into both the out-list of from and the in-list
// of to, preserving sort order. A no-op if the edge is already present or
// from==to (loops are not modeled by this component, matching CSR's rule).
func (g *Graph) AddEdge(from, to VID) {
	if from < 0 || to < 0 || from == to {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	rf := g.ensure(from)
	rt := g.ensure(to)

	before := len(rf.out)
	rf.out = insertSortedUnique(rf.out, to)
	if len(rf.out) == before {
		return // already present
	}
	rt.in = insertSortedUnique(rt.in, from)
	g.numEdges++
}

// RemoveEdge deletes (from,to) if present; a no-op otherwise.
func (g *Graph) RemoveEdge(from, to VID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rf, ok := g.records[from]
	if !ok {
		return
	}
	before := len(rf.out)
	rf.out = removeSortedUnique(rf.out, to)
	if len(rf.out) == before {
		return
	}
	if rt, ok := g.records[to]; ok {
		rt.in = removeSortedUnique(rt.in, from)
	}
	g.numEdges--
}

// RemoveNode deletes v and every edge incident to it.
func (g *Graph) RemoveNode(v VID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.records[v]
	if !ok {
		return
	}
	for _, w := range append([]VID(nil), r.out...) {
		if rt, ok := g.records[w]; ok {
			rt.in = removeSortedUnique(rt.in, v)
			g.numEdges--
		}
	}
	for _, u := range append([]VID(nil), r.in...) {
		if ru, ok := g.records[u]; ok {
			ru.out = removeSortedUnique(ru.out, v)
			g.numEdges--
		}
	}
	delete(g.records, v)
}

// HasEdge reports whether (from,to) exists.
func (g *Graph) HasEdge(from, to VID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.records[from]
	if !ok {
		return false
	}
	i := sort.Search(len(r.out), func(i int) bool { return r.out[i] >= to })
	return i < len(r.out) && r.out[i] == to
}

// SetPartition tags v with pid, creating the vertex slot if absent.
func (g *Graph) SetPartition(v VID, pid int16) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(v).partition = pid
}

// Partition returns v's partition tag, or -1 if v is absent/unassigned.
func (g *Graph) Partition(v VID) int16 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if r, ok := g.records[v]; ok {
		return r.partition
	}
	return -1
}

// NumVertices returns the number of live vertex slots.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.records)
}

// NumEdges returns the number of directed edges.
func (g *Graph) NumEdges() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.numEdges
}

// NodeExists reports whether v has a live record.
func (g *Graph) NodeExists(v VID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.records[v]
	return ok
}

// MaxID returns the highest vertex ID ever inserted, or -1 if empty.
// Note this is a high-water mark, not shrunk by RemoveNode (unlike
// csr.Store.MaxID, which the spec explicitly pins to N-1 inclusive for the
// packed representation); csr.FromAdjacency uses it to size the rebuild.
func (g *Graph) MaxID() VID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.maxID
}

// OutNeighbors returns the sorted-ascending out list of v (LOUT).
func (g *Graph) OutNeighbors(v VID) []VID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if r, ok := g.records[v]; ok {
		return append([]VID(nil), r.out...)
	}
	return nil
}

// InNeighbors returns the sorted-ascending in list of v (LIN).
func (g *Graph) InNeighbors(v VID) []VID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if r, ok := g.records[v]; ok {
		return append([]VID(nil), r.in...)
	}
	return nil
}

// Degree returns (inDegree, outDegree) for v.
func (g *Graph) Degree(v VID) (int, int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if r, ok := g.records[v]; ok {
		return len(r.in), len(r.out)
	}
	return 0, 0
}

// IsCyclic reports whether the graph contains a directed cycle, via
// iterative DFS with a three-color (white/gray/black) stack — required
// before building a directed PLL index (spec.md §4.5: "Build (DAG required)").
func (g *Graph) IsCyclic() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[VID]int, len(g.records))

	type frame struct {
		v   VID
		idx int
	}
	for start := range g.records {
		if color[start] != white {
			continue
		}
		stack := []frame{{v: start, idx: 0}}
		color[start] = gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := g.records[top.v].out
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
