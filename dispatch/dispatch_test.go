package dispatch_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/reachcompress/adjgraph"
	"github.com/katalvlaran/reachcompress/csr"
	"github.com/katalvlaran/reachcompress/dispatch"
	"github.com/katalvlaran/reachcompress/partition"
	"github.com/katalvlaran/reachcompress/pll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPartitionedDAG builds an 8-vertex DAG split across two partitions:
// {0,1,2,3} and {4,5,6,7}, joined by a single cross edge 3->4.
func buildPartitionedDAG() (*csr.Store, *partition.Manager) {
	g := csr.FromEdgeList(8, []csr.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3},
		{From: 3, To: 4},
		{From: 4, To: 5}, {From: 5, To: 6}, {From: 6, To: 7},
	})
	m := partition.New()
	for v := int32(0); v < 4; v++ {
		m.SetPartition(v, 0)
	}
	for v := int32(4); v < 8; v++ {
		m.SetPartition(v, 1)
	}
	m.Rebuild(g)
	return g, m
}

// importOf returns partition options that make OfflineIndustry's Import
// partitioner reproduce m's current assignment instead of re-partitioning.
func importOf(m *partition.Manager) partition.PartitionOptions {
	assign := map[partition.VID]partition.PID{}
	for _, pid := range m.Partitions() {
		for _, v := range m.Vertices(pid) {
			assign[v] = pid
		}
	}
	return partition.PartitionOptions{Assignment: assign}
}

func TestDispatcher_WithinAndCrossPartition(t *testing.T) {
	g, m := buildPartitionedDAG()
	cfg := dispatch.NewConfig(dispatch.WithThresholds(100, 0.0), // both partitions are chains, so the forest branch picks TreeCover
		dispatch.WithPartitioner(partition.StrategyImport), dispatch.WithPartitionOptions(importOf(m)))
	d := dispatch.NewDispatcher(g, m, cfg)

	assert.NoError(t, d.OfflineIndustry(nil))

	assert.True(t, d.Reach(0, 3), "within-partition chain")
	assert.True(t, d.Reach(0, 7), "cross-partition chain")
	assert.False(t, d.Reach(7, 0), "no reverse path")
	assert.True(t, d.Reach(3, 4), "direct cross edge")
}

func TestDispatcher_RejectsOutOfRangeAndZeroDegree(t *testing.T) {
	g, m := buildPartitionedDAG()
	cfg := dispatch.NewConfig(dispatch.WithThresholds(100, 0.0),
		dispatch.WithPartitioner(partition.StrategyImport), dispatch.WithPartitionOptions(importOf(m)))
	d := dispatch.NewDispatcher(g, m, cfg)
	assert.NoError(t, d.OfflineIndustry(nil))

	assert.False(t, d.Reach(0, 99), "v out of range")
	assert.False(t, d.Reach(7, 0), "u has out_degree 0 (vertex 7 is terminal)")
}

// TestThreeStrategies_AgreeOnRandomPairs builds the same small DAG subgraph
// under all three within-partition algorithms and checks they agree on
// every query over random pairs (spec.md §8 scenario 5).
func TestThreeStrategies_AgreeOnRandomPairs(t *testing.T) {
	sub := adjgraph.New()
	// A denser 12-vertex DAG so PLL/unreachable-pairs/bitmatrix all have
	// something non-trivial to agree on.
	edges := [][2]int32{
		{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {4, 5}, {4, 6},
		{5, 7}, {6, 7}, {7, 8}, {8, 9}, {9, 10}, {9, 11}, {2, 5}, {1, 6},
	}
	for _, e := range edges {
		sub.AddEdge(e[0], e[1])
	}

	bm := dispatch.DenseBitmatrixAlgorithm(dispatch.BuildBitmatrix(sub))
	up := dispatch.UnreachablePairsAlgorithm(dispatch.BuildUnreachablePairs(sub))
	idx, err := pll.Build(sub)
	require.NoError(t, err)
	pl := dispatch.PLLAlgorithm(idx)
	biAlgo := dispatch.BiBFSAlgorithm(sub)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		u := int32(rng.Intn(12))
		v := int32(rng.Intn(12))
		want := biAlgo.Query(u, v)
		assert.Equal(t, want, pl.Query(u, v), "PLL disagrees with BiBFS on (%d,%d)", u, v)
		assert.Equal(t, want, bm.Query(u, v), "bitmatrix disagrees with BiBFS on (%d,%d)", u, v)
		assert.Equal(t, want, up.Query(u, v), "unreachable-pairs disagrees with BiBFS on (%d,%d)", u, v)
	}
}

func TestReachRatio_FullyReachableChain(t *testing.T) {
	sub := adjgraph.New()
	for i := int32(0); i < 4; i++ {
		sub.AddEdge(i, i+1)
	}
	ratio := dispatch.ReachRatio(sub)
	assert.InDelta(t, 0.5, ratio, 1e-9, "a 5-vertex chain reaches every (i<j) pair: 10 of its 20 ordered pairs")
}

func TestTreeCover_SoundOnTreeEdges(t *testing.T) {
	sub := adjgraph.New()
	sub.AddEdge(0, 1)
	sub.AddEdge(0, 2)
	sub.AddEdge(1, 3)
	tc := dispatch.BuildTreeCover(sub)
	assert.True(t, tc.Query(0, 3))
	assert.False(t, tc.Query(2, 3))
}

func TestBloomFilter_NoFalseNegatives(t *testing.T) {
	sub := adjgraph.New()
	for i := int32(0); i < 6; i++ {
		sub.AddEdge(i, i+1)
	}
	bf := dispatch.BuildBloomFilter(sub, 0, 0)
	for a := int32(0); a < 6; a++ {
		for b := a; b <= 6; b++ {
			assert.True(t, bf.Query(a, b), "bloom filter must never false-negative a true reachable pair (%d,%d)", a, b)
		}
	}
}
