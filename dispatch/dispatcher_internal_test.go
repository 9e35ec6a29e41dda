package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/reachcompress/csr"
	"github.com/katalvlaran/reachcompress/partition"
)

// buildSingleTreePartition returns an 8-vertex, two-partition graph whose
// first partition {0,1,2,3} is a literal tree (0->1, 0->2, 1->3) and whose
// second partition {4,5,6,7} is a 4-cycle, so the two partitions exercise
// opposite ends of buildAlgorithm's tree-detection branch.
func buildSingleTreePartition() (*csr.Store, *partition.Manager) {
	g := csr.FromEdgeList(8, []csr.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3},
		{From: 4, To: 5}, {From: 5, To: 6}, {From: 6, To: 7}, {From: 7, To: 4},
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

func TestBuildAlgorithm_SelectsTreeCoverForForestPartition(t *testing.T) {
	g, m := buildSingleTreePartition()
	// With NumVerticesT=1 and RatioT=0.0 this partition would otherwise skip
	// bitmatrix and PLL and fall through to the fallback; the tree-detection
	// branch must still win for the literal-tree partition.
	cfg := NewConfig(WithThresholds(1, 0.0),
		WithPartitioner(partition.StrategyImport), WithPartitionOptions(importOf(m)))
	d := NewDispatcher(g, m, cfg)
	assert.NoError(t, d.OfflineIndustry(nil))

	assert.Equal(t, KindTreeCover, d.algorithms[0].Kind, "partition 0 is a literal tree")
	assert.NotEqual(t, KindTreeCover, d.algorithms[1].Kind, "partition 1 has a cycle, not a tree")

	assert.True(t, d.Reach(0, 3), "0 reaches 3 via the tree edges 0->1->3")
	assert.False(t, d.Reach(3, 0), "no reverse path in the tree")
}

func TestBuildAlgorithm_SelectsBloomFilterWhenConfigured(t *testing.T) {
	g, m := buildSingleTreePartition()
	// Thresholds chosen so partition 1 (the 4-cycle) falls through to the
	// fallback branch instead of bitmatrix or PLL.
	cfg := NewConfig(WithThresholds(1, 0.0), WithBloomFilter(true),
		WithPartitioner(partition.StrategyImport), WithPartitionOptions(importOf(m)))
	d := NewDispatcher(g, m, cfg)
	assert.NoError(t, d.OfflineIndustry(nil))

	assert.Equal(t, KindBloomFilter, d.algorithms[1].Kind, "UseBloomFilter must route the fallback branch to BloomFilterAlgorithm")
}
