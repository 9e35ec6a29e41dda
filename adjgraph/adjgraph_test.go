package adjgraph_test

import (
	"testing"

	"github.com/katalvlaran/reachcompress/adjgraph"
	"github.com/stretchr/testify/assert"
)

func TestAddEdge_DualAndSorted(t *testing.T) {
	g := adjgraph.New()
	g.AddEdge(0, 3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)

	assert.Equal(t, []int32{1, 2, 3}, g.OutNeighbors(0))
	assert.Equal(t, []int32{0}, g.InNeighbors(1))
	assert.True(t, g.HasEdge(0, 2))
}

func TestAddEdge_NoopOnDuplicateAndLoop(t *testing.T) {
	g := adjgraph.New()
	g.AddEdge(0, 1)
	g.AddEdge(0, 1)
	assert.EqualValues(t, 1, g.NumEdges())

	g.AddEdge(5, 5)
	assert.False(t, g.HasEdge(5, 5))
}

func TestRemoveNode_ClearsIncidentEdges(t *testing.T) {
	g := adjgraph.New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.RemoveNode(1)

	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.NodeExists(1))
}

func TestIsCyclic(t *testing.T) {
	dag := adjgraph.New()
	dag.AddEdge(0, 1)
	dag.AddEdge(1, 2)
	assert.False(t, dag.IsCyclic())

	cyclic := adjgraph.New()
	cyclic.AddEdge(0, 1)
	cyclic.AddEdge(1, 2)
	cyclic.AddEdge(2, 0)
	assert.True(t, cyclic.IsCyclic())
}

func TestSetPartition(t *testing.T) {
	g := adjgraph.New()
	g.AddEdge(0, 1)
	g.SetPartition(0, 7)
	assert.EqualValues(t, 7, g.Partition(0))
	assert.EqualValues(t, -1, g.Partition(99))
}
