// Package partition implements the partition manager (spec.md C7): maps
// vertices to partition IDs, derives the cross-partition edge registry, the
// partition meta-graph (part_g), and per-partition induced subgraphs.
//
// Derived artefacts (part_g, partition_subgraphs) are owned exclusively by
// the Manager and carry a dirty flag: SetPartition and
// UpdatePartitionConnections mark them dirty, and callers must call Rebuild
// before consulting BuildPartitionGraph/BuildSubgraphs results again
// (spec.md §4.7's state machine). MoveVertex calls Rebuild itself, so the
// artefacts are clean again when it returns.
package partition

import (
	"sort"
	"sync"

	"github.com/katalvlaran/reachcompress/adjgraph"
	"github.com/katalvlaran/reachcompress/internal/errs"
)

// PID is a partition identifier; VID is a dense non-negative vertex
// identifier.
type PID = int32
type VID = int32

var ErrInvalidVertex = errs.ErrInvalidVertex

// SourceGraph is the minimal read-only surface the manager needs from the
// full graph to derive cross-partition adjacency.
type SourceGraph interface {
	MaxID() VID
	NodeExists(v VID) bool
	OutNeighbors(v VID) []VID
}

// CrossEdges records the original edges crossing from one partition to
// another, deduplicated by (u,v) pair.
type CrossEdges struct {
	OriginalEdges []Edge
	seen          map[Edge]bool
}

// Edge is a directed (from,to) vertex pair.
type Edge struct{ From, To VID }

// EdgeCount returns the number of distinct original edges recorded.
func (c *CrossEdges) EdgeCount() int { return len(c.OriginalEdges) }

// Manager is the partition manager.
type Manager struct {
	mu sync.RWMutex

	mapping     map[PID]map[VID]struct{}
	vertexToPID map[VID]PID
	equivalence map[VID]VID // optional vertex -> representative class id

	adjacency map[PID]map[PID]*CrossEdges

	partG      *adjgraph.Graph
	subgraphs  map[PID]*adjgraph.Graph
	dirty      bool
}

// New returns an empty Manager.
func New() *Manager {
	return &Manager{
		mapping:     make(map[PID]map[VID]struct{}),
		vertexToPID: make(map[VID]PID),
		adjacency:   make(map[PID]map[PID]*CrossEdges),
		partG:       adjgraph.New(),
		subgraphs:   make(map[PID]*adjgraph.Graph),
		dirty:       true,
	}
}

// SetPartition assigns v to partition pid, moving it out of any prior
// partition. Marks derived artefacts dirty.
func (m *Manager) SetPartition(v VID, pid PID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.vertexToPID[v]; ok {
		delete(m.mapping[old], v)
	}
	if m.mapping[pid] == nil {
		m.mapping[pid] = make(map[VID]struct{})
	}
	m.mapping[pid][v] = struct{}{}
	m.vertexToPID[v] = pid
	m.dirty = true
}

// PartitionOf returns the partition ID assigned to v, or (-1,false) if
// unassigned.
func (m *Manager) PartitionOf(v VID) (PID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pid, ok := m.vertexToPID[v]
	if !ok {
		return -1, false
	}
	return pid, true
}

// Vertices returns the sorted vertex set of partition pid.
func (m *Manager) Vertices(pid PID) []VID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set := m.mapping[pid]
	out := make([]VID, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Partitions returns every non-empty partition ID, ascending.
func (m *Manager) Partitions() []PID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]PID, 0, len(m.mapping))
	for pid, set := range m.mapping {
		if len(set) > 0 {
			out = append(out, pid)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// UpdatePartitionConnections scans every edge of g and, for each
// cross-partition edge (u,v), records it (deduplicated) in
// partition_adjacency[pu][pv] and increments edge_count.
func (m *Manager) UpdatePartitionConnections(g SourceGraph) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.adjacency = make(map[PID]map[PID]*CrossEdges)
	max := g.MaxID()
	for v := VID(0); v <= max; v++ {
		if !g.NodeExists(v) {
			continue
		}
		pu, ok := m.vertexToPID[v]
		if !ok {
			continue
		}
		for _, w := range g.OutNeighbors(v) {
			pv, ok := m.vertexToPID[w]
			if !ok || pu == pv {
				continue
			}
			m.recordCrossEdge(pu, pv, Edge{From: v, To: w})
		}
	}
	m.dirty = true
}

func (m *Manager) recordCrossEdge(pu, pv PID, e Edge) {
	if m.adjacency[pu] == nil {
		m.adjacency[pu] = make(map[PID]*CrossEdges)
	}
	ce := m.adjacency[pu][pv]
	if ce == nil {
		ce = &CrossEdges{seen: make(map[Edge]bool)}
		m.adjacency[pu][pv] = ce
	}
	if ce.seen[e] {
		return
	}
	ce.seen[e] = true
	ce.OriginalEdges = append(ce.OriginalEdges, e)
}

// CrossEdges returns the recorded cross-partition edges from pu to pv, or
// nil if there are none.
func (m *Manager) CrossEdges(pu, pv PID) *CrossEdges {
	m.mu.RLock()
	defer m.mu.RUnlock()
	inner := m.adjacency[pu]
	if inner == nil {
		return nil
	}
	return inner[pv]
}

// BuildPartitionGraph derives part_g: one directed edge pu->pv whenever
// partition_adjacency[pu][pv] is non-empty (edge count itself is ignored
// for topology, per spec.md §4.7).
func (m *Manager) BuildPartitionGraph() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.partG = adjgraph.New()
	for pu, row := range m.adjacency {
		for pv, ce := range row {
			if ce.EdgeCount() > 0 {
				m.partG.AddEdge(pu, pv)
			}
		}
	}
}

// PartitionGraph returns the derived partition meta-graph.
func (m *Manager) PartitionGraph() *adjgraph.Graph {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.partG
}

// BuildSubgraphs constructs partition_subgraphs[pi]: every vertex assigned
// to pi, and every internal (same-partition) edge from g.
func (m *Manager) BuildSubgraphs(g SourceGraph) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.subgraphs = make(map[PID]*adjgraph.Graph)
	max := g.MaxID()
	for v := VID(0); v <= max; v++ {
		if !g.NodeExists(v) {
			continue
		}
		pu, ok := m.vertexToPID[v]
		if !ok {
			continue
		}
		sub := m.subgraphs[pu]
		if sub == nil {
			sub = adjgraph.New()
			m.subgraphs[pu] = sub
		}
		for _, w := range g.OutNeighbors(v) {
			if pv, ok := m.vertexToPID[w]; ok && pv == pu {
				sub.AddEdge(v, w)
			}
		}
	}
	m.dirty = false
}

// Subgraph returns the induced subgraph for partition pid, or nil if
// BuildSubgraphs has not produced one (e.g. an empty partition).
func (m *Manager) Subgraph(pid PID) *adjgraph.Graph {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.subgraphs[pid]
}

// Dirty reports whether derived artefacts (part_g, subgraphs) are stale:
// set by SetPartition and UpdatePartitionConnections, cleared by
// BuildSubgraphs (and so by Rebuild and MoveVertex).
func (m *Manager) Dirty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirty
}

// Rebuild re-derives part_g and the subgraphs from g and clears the dirty
// flag.
func (m *Manager) Rebuild(g SourceGraph) {
	m.UpdatePartitionConnections(g)
	m.BuildPartitionGraph()
	m.BuildSubgraphs(g)
}

// MoveVertex reassigns v from oldPID to newPID, rewriting every incident
// cross-partition registry entry and adding/removing part_g edges as their
// edge_count transitions to/from zero. It does so by calling Rebuild, so
// part_g and the subgraphs are re-derived and Dirty is false on return.
func (m *Manager) MoveVertex(g SourceGraph, v VID, oldPID, newPID PID) {
	m.mu.Lock()
	if m.mapping[oldPID] != nil {
		delete(m.mapping[oldPID], v)
	}
	if m.mapping[newPID] == nil {
		m.mapping[newPID] = make(map[VID]struct{})
	}
	m.mapping[newPID][v] = struct{}{}
	m.vertexToPID[v] = newPID
	m.mu.Unlock()

	// Rewriting cross-partition entries precisely (incremental removal of
	// stale pair entries, incremental insertion of new ones) requires
	// re-deriving the registry from the live graph, since CrossEdges only
	// tracks aggregate counts per partition pair, not per-vertex provenance.
	// TODO: track per-vertex provenance in CrossEdges so a single move can
	// patch CrossEdges/part_g in O(deg(v)) instead of calling Rebuild.
	m.Rebuild(g)
}

// ReadEquivalenceInfo attaches a vertex -> representative equivalence-class
// mapping, parsed by ioformat.ParseEquivalence and passed in here.
func (m *Manager) ReadEquivalenceInfo(mapping map[VID]VID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.equivalence = mapping
}

// Representative returns the equivalence-class representative of v, or v
// itself if no equivalence mapping was loaded or v has no entry.
func (m *Manager) Representative(v VID) VID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.equivalence == nil {
		return v
	}
	if rep, ok := m.equivalence[v]; ok {
		return rep
	}
	return v
}
