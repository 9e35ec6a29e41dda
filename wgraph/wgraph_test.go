package wgraph_test

import (
	"testing"

	"github.com/katalvlaran/reachcompress/wgraph"
	"github.com/stretchr/testify/assert"
)

// buildScenario4 constructs spec.md §8 scenario 4: chain 5-6-7-8-9-10-20-21
// and a disjoint cycle 11-12-13-14-15-11, all weight 19, min_weight=5.
func buildScenario4() *wgraph.Graph {
	g := wgraph.New(wgraph.WithMinWeight(5))
	chain := []int32{5, 6, 7, 8, 9, 10, 20, 21}
	for i := 0; i < len(chain)-1; i++ {
		g.AddEdge(chain[i], chain[i+1], 19)
	}
	ring := []int32{11, 12, 13, 14, 15}
	for i := range ring {
		g.AddEdge(ring[i], ring[(i+1)%len(ring)], 19)
	}
	return g
}

func TestScenario4_LandmarkReachable(t *testing.T) {
	g := buildScenario4()
	g.BuildIndices(true)

	assert.True(t, g.LandmarkReachable(5, 21))
	assert.True(t, g.LandmarkReachable(11, 14))
	assert.False(t, g.LandmarkReachable(0, 5))
}

func TestDSReachable_AgreesWithComponents(t *testing.T) {
	g := buildScenario4()
	g.BuildIndices(false)

	assert.True(t, g.DSReachable(5, 21))
	assert.True(t, g.DSReachable(11, 14))
	assert.False(t, g.DSReachable(5, 11))
}

func TestMinWeightThreshold_ExcludesLightEdges(t *testing.T) {
	g := wgraph.New(wgraph.WithMinWeight(10))
	g.AddEdge(0, 1, 3) // below threshold
	g.AddEdge(1, 2, 20)
	g.BuildIndices(false)

	assert.False(t, g.DSReachable(0, 1))
	assert.True(t, g.DSReachable(1, 2))
}
