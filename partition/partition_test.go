package partition_test

import (
	"testing"

	"github.com/katalvlaran/reachcompress/csr"
	"github.com/katalvlaran/reachcompress/partition"
	"github.com/stretchr/testify/assert"
)

func buildGraph() *csr.Store {
	// Two partitions {0,1} and {2,3}, with one cross edge 1->2.
	return csr.FromEdgeList(4, []csr.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3},
	})
}

func TestUpdatePartitionConnections_AndPartG(t *testing.T) {
	g := buildGraph()
	m := partition.New()
	m.SetPartition(0, 1)
	m.SetPartition(1, 1)
	m.SetPartition(2, 2)
	m.SetPartition(3, 2)

	m.UpdatePartitionConnections(g)
	ce := m.CrossEdges(1, 2)
	if assert.NotNil(t, ce) {
		assert.Equal(t, 1, ce.EdgeCount())
	}

	m.BuildPartitionGraph()
	assert.True(t, m.PartitionGraph().HasEdge(1, 2))
}

func TestBuildSubgraphs_OnlyInternalEdges(t *testing.T) {
	g := buildGraph()
	m := partition.New()
	m.SetPartition(0, 1)
	m.SetPartition(1, 1)
	m.SetPartition(2, 2)
	m.SetPartition(3, 2)

	m.BuildSubgraphs(g)
	sub1 := m.Subgraph(1)
	assert.True(t, sub1.HasEdge(0, 1))
	assert.False(t, sub1.HasEdge(1, 2), "cross-partition edge must not appear in either subgraph")

	sub2 := m.Subgraph(2)
	assert.True(t, sub2.HasEdge(2, 3))
}

func TestMoveVertex_MarksDirtyAndRebuilds(t *testing.T) {
	g := buildGraph()
	m := partition.New()
	m.SetPartition(0, 1)
	m.SetPartition(1, 1)
	m.SetPartition(2, 2)
	m.SetPartition(3, 2)
	m.Rebuild(g)
	assert.False(t, m.Dirty())

	m.MoveVertex(g, 1, 1, 2)
	assert.False(t, m.Dirty(), "Rebuild inside MoveVertex clears dirty")

	pid, ok := m.PartitionOf(1)
	assert.True(t, ok)
	assert.EqualValues(t, 2, pid)
	// 1 and 2 are now in the same partition, so 1->2 is no longer a cross
	// edge; the only edge from partition 1 to partition 2 is now 0->1.
	ce := m.CrossEdges(1, 2)
	if assert.NotNil(t, ce) {
		assert.Equal(t, []partition.Edge{{From: 0, To: 1}}, ce.OriginalEdges)
	}
}
