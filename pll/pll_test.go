package pll_test

import (
	"testing"

	"github.com/katalvlaran/reachcompress/csr"
	"github.com/katalvlaran/reachcompress/pll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildScenario2 is spec.md §8 scenario 2: 0->1, 1->2, 1->3, 0->4, 4->3, 4->5.
func buildScenario2() *csr.Store {
	return csr.FromEdgeList(6, []csr.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 1, To: 3},
		{From: 0, To: 4}, {From: 4, To: 3}, {From: 4, To: 5},
	})
}

func TestScenario2_PLLQuery(t *testing.T) {
	g := buildScenario2()
	idx, err := pll.Build(g)
	require.NoError(t, err)

	assert.True(t, idx.Query(0, 5))
	assert.True(t, idx.Query(4, 5))
	assert.True(t, idx.Query(4, 3))
	assert.False(t, idx.Query(3, 4))
}

func TestBuild_RejectsCycle(t *testing.T) {
	g := csr.FromEdgeList(3, []csr.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}})
	_, err := pll.Build(g)
	assert.ErrorIs(t, err, pll.ErrGraphHasCycle)
}

func TestQuery_TombstoneReturnsFalse(t *testing.T) {
	g := buildScenario2()
	idx, err := pll.Build(g)
	require.NoError(t, err)
	assert.False(t, idx.Query(0, 99))
}

// TestQuery_AgreesWithTransitiveClosure fuzzes PLL against a brute-force
// transitive-closure BFS over every pair, per spec.md §8's universal
// invariant for directed PLL.
func TestQuery_AgreesWithTransitiveClosure(t *testing.T) {
	g := buildScenario2()
	idx, err := pll.Build(g)
	require.NoError(t, err)

	reach := bruteForceClosure(g, 6)
	for u := int32(0); u < 6; u++ {
		for v := int32(0); v < 6; v++ {
			if u == v {
				continue
			}
			assert.Equal(t, reach[u][v], idx.Query(u, v), "u=%d v=%d", u, v)
		}
	}
}

func bruteForceClosure(g *csr.Store, n int32) map[int32]map[int32]bool {
	reach := make(map[int32]map[int32]bool, n)
	for u := int32(0); u < n; u++ {
		visited := map[int32]bool{u: true}
		queue := []int32{u}
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			for _, w := range g.OutEdges(x) {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
		reach[u] = visited
	}
	return reach
}
