// Package csr implements the Compressed Sparse Row directed-graph store:
// packed sorted adjacency with partition tags and an incremental edit
// protocol (AddEdge/RemoveEdge/RemoveNode) that keeps the packed arrays
// consistent after every mutation.
//
// Layout, for a graph with N slots and E edges:
//
//	out_row[0..=N], in_row[0..=N]   prefix sums; out_row[i+1]-out_row[i] is out-degree
//	out_col[0..E],  in_col[0..E]    neighbor columns, sorted ascending within each row
//	partition[0..N]                 small signed int, -1 = unassigned
//
// Invariants maintained by every exported mutator:
//  1. both row arrays are non-decreasing;
//  2. every row is sorted ascending;
//  3. out_row[N] == in_row[N] == num_edges;
//  4. for every (u,v) in out_col under row u, a matching u appears in in_col
//     under row v (dual consistency);
//  5. u != v (no self-loops).
//
// max_node_id is fixed inclusive (N-1); row arrays are sized N+1 (spec.md
// §9(b)). Bulk rebuild (FromEdgeList/FromAdjacency) is preferred over many
// single-edge edits: edits are O(E) due to tail shifting.
package csr

import (
	"fmt"
	"sync"
)

// VID is a dense non-negative vertex identifier in [0, N).
type VID = int32

// Store is a packed directed graph with sorted adjacency rows.
//
// Concurrency: muStruct guards the row/column arrays and partition table
// (the "structural" state); it is held for write during any mutator and for
// read during any accessor, mirroring core.Graph's muEdgeAdj split.
type Store struct {
	muStruct sync.RWMutex

	outRow []int32 // len maxID+2
	outCol []VID
	inRow  []int32 // len maxID+2
	inCol  []VID

	partition []int16 // len maxID+1, -1 = unassigned

	maxID     int32 // inclusive highest addressable slot, N-1
	numEdges  int32
	numNodes  int32 // count of non-tombstone slots
	liveSlots []bool
}

// Edge is a directed (from, to) pair used by FromEdgeList and by callers
// that enumerate edges for persistence or export.
type Edge struct {
	From VID
	To   VID
}

// New returns an empty Store sized for n vertex slots ([0,n)).
// Complexity: O(n).
func New(n int32) *Store {
	s := &Store{
		outRow:    make([]int32, n+1),
		inRow:     make([]int32, n+1),
		partition: make([]int16, n),
		maxID:     n - 1,
		liveSlots: make([]bool, n),
	}
	for i := range s.partition {
		s.partition[i] = -1
	}
	return s
}

func (s *Store) String() string {
	return fmt.Sprintf("csr.Store{nodes=%d edges=%d maxID=%d}", s.numNodes, s.numEdges, s.maxID)
}
