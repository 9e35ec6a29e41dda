// Package wgraph implements the undirected weighted multi-adjacency graph
// (spec.md C3): each edge is stored twice (once per endpoint), with an
// embedded union-find computed only over edges at or above a fixed
// min-weight threshold, and optional landmark labels for a cheaper
// (lossy-only-in-soundness-direction) reachability pre-check.
//
// BuildIndices must be called (and the graph must not be mutated again)
// before DSReachable/LandmarkReachable are meaningful — per spec.md §5,
// find() after build is logically read-only; this package performs a
// one-shot full path compression inside BuildIndices and then treats the
// union-find as read-only, per the spec's adopted concurrency rule.
package wgraph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/reachcompress/internal/errs"
)

func sortVIDs(s []VID) { sort.Slice(s, func(i, j int) bool { return s[i] < s[j] }) }

// VID is a dense non-negative vertex identifier.
type VID = int32

var ErrInvalidVertex = errs.ErrInvalidVertex

// Neighbor is one (neighbor, weight) adjacency entry.
type Neighbor struct {
	To     VID
	Weight int64
}

// Graph is an undirected weighted multigraph with a min-weight threshold
// fixed at construction, an optional union-find, and optional landmark
// labels.
type Graph struct {
	mu sync.RWMutex

	adj       map[VID][]Neighbor
	minWeight int64

	fresh bool // false until BuildIndices has run since the last mutation

	parent map[VID]VID
	rank   map[VID]int

	labels map[VID][]VID // ascending landmark-ID lists, nil until built
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithMinWeight sets the threshold below which an edge is excluded from the
// union-find (and from landmark BFS expansion). Default is 0 (all edges
// count).
func WithMinWeight(w int64) Option {
	return func(g *Graph) { g.minWeight = w }
}

// New returns an empty weighted graph.
func New(opts ...Option) *Graph {
	g := &Graph{adj: make(map[VID][]Neighbor)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MinWeight returns the threshold fixed at construction.
func (g *Graph) MinWeight() int64 {
	return g.minWeight
}

// AddEdge appends (to,w) to adj[from] and (from,w) to adj[to]; marks derived
// indices stale.
func (g *Graph) AddEdge(from, to VID, w int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adj[from] = append(g.adj[from], Neighbor{To: to, Weight: w})
	g.adj[to] = append(g.adj[to], Neighbor{To: from, Weight: w})
	g.fresh = false
}

// Neighbors returns the raw (unordered) adjacency list of v.
func (g *Graph) Neighbors(v VID) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.adj[v]
}

// HasVertex reports whether v has any recorded adjacency.
func (g *Graph) HasVertex(v VID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[v]
	return ok
}

// Fresh reports whether BuildIndices has run since the last mutation.
func (g *Graph) Fresh() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.fresh
}

// VertexIDs returns every vertex with recorded adjacency, ascending by ID.
func (g *Graph) VertexIDs() []VID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]VID, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	sortVIDs(out)
	return out
}
