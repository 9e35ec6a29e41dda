package csr_test

import (
	"testing"

	"github.com/katalvlaran/reachcompress/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromEdgeList_Scenario1 locks in spec.md §8 scenario 1: CSR from edges
// [(1,2),(2,3),(3,4),(4,100)].
func TestFromEdgeList_Scenario1(t *testing.T) {
	edges := []csr.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 4, To: 100}}
	s := csr.FromEdgeList(101, edges)

	assert.Equal(t, int32(4), s.NumEdges())
	assert.Equal(t, 1, s.OutDegree(1))
	assert.Equal(t, 1, s.OutDegree(2))
	assert.Equal(t, 1, s.OutDegree(3))
	assert.Equal(t, 1, s.OutDegree(4))
	assert.Equal(t, 0, s.OutDegree(100))
	assert.True(t, s.HasEdge(1, 2))
	assert.True(t, s.HasEdge(4, 100))
	assert.False(t, s.HasEdge(43, 1))
}

func TestFromEdgeList_DropsSelfLoops(t *testing.T) {
	s := csr.FromEdgeList(3, []csr.Edge{{From: 0, To: 0}, {From: 0, To: 1}})
	assert.Equal(t, int32(1), s.NumEdges())
	assert.False(t, s.HasEdge(0, 0))
}

func TestAddEdge_RejectsSelfLoopAndDuplicate(t *testing.T) {
	s := csr.New(5)
	ok, err := s.AddEdge(0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.AddEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.AddEdge(0, 1)
	require.NoError(t, err)
	assert.False(t, ok, "duplicate edge must be a silent no-op")
}

func TestAddEdge_KeepsRowsSorted(t *testing.T) {
	s := csr.New(5)
	for _, v := range []csr.VID{3, 1, 4, 2} {
		_, err := s.AddEdge(0, v)
		require.NoError(t, err)
	}
	out := s.OutEdges(0)
	require.Len(t, out, 4)
	for i := 1; i < len(out); i++ {
		assert.Less(t, out[i-1], out[i])
	}
	// dual consistency: every (0,v) must show up as 0 in row v of in_col.
	for _, v := range out {
		inRow := s.InEdges(v)
		assert.Contains(t, inRow, csr.VID(0))
	}
}

func TestRemoveEdge_DualConsistency(t *testing.T) {
	s := csr.New(4)
	_, _ = s.AddEdge(0, 1)
	_, _ = s.AddEdge(0, 2)

	ok, err := s.RemoveEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, s.HasEdge(0, 1))
	assert.NotContains(t, s.InEdges(1), csr.VID(0))
	assert.True(t, s.HasEdge(0, 2))

	ok, err = s.RemoveEdge(0, 1)
	require.NoError(t, err)
	assert.False(t, ok, "removing an absent edge is a silent no-op")
}

func TestRemoveNode_TombstonesAndShrinksMaxID(t *testing.T) {
	s := csr.New(5) // slots 0..4
	_, _ = s.AddEdge(0, 4)
	_, _ = s.AddEdge(1, 2)

	require.NoError(t, s.RemoveNode(4))
	assert.False(t, s.NodeExists(4))
	assert.False(t, s.HasEdge(0, 4))
	// 4 was the last live slot (3 is untouched tombstone-from-birth), so maxID
	// shrinks past both to the highest live slot, 2.
	assert.Equal(t, int32(2), s.MaxID())

	assert.True(t, s.NodeExists(1))
	assert.True(t, s.NodeExists(2))
}

func TestInvalidVertex_OutOfRange(t *testing.T) {
	s := csr.New(3)
	_, err := s.AddEdge(0, 10)
	assert.ErrorIs(t, err, csr.ErrInvalidVertex)
}

// fakeAdjacencySource is a minimal AdjacencySource for FromAdjacency tests.
type fakeAdjacencySource struct {
	maxID int32
	live  map[int32]bool
	out   map[int32][]csr.VID
	part  map[int32]int16
}

func (f *fakeAdjacencySource) MaxID() int32             { return f.maxID }
func (f *fakeAdjacencySource) NodeExists(v int32) bool  { return f.live[v] }
func (f *fakeAdjacencySource) OutNeighbors(v int32) []csr.VID { return f.out[v] }
func (f *fakeAdjacencySource) Partition(v int32) int16  { return f.part[v] }

func TestFromAdjacency(t *testing.T) {
	src := &fakeAdjacencySource{
		maxID: 2,
		live:  map[int32]bool{0: true, 1: true, 2: true},
		out:   map[int32][]csr.VID{0: {1, 2}},
		part:  map[int32]int16{0: 1, 1: 2, 2: -1},
	}
	s := csr.FromAdjacency(src)
	assert.True(t, s.HasEdge(0, 1))
	assert.True(t, s.HasEdge(0, 2))
	assert.Equal(t, int16(1), s.Partition(0))
}
