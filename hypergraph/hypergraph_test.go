package hypergraph_test

import (
	"testing"

	"github.com/katalvlaran/reachcompress/hypergraph"
	"github.com/stretchr/testify/assert"
)

// buildScenario3 mirrors a small dataset problem: three hyperedges that
// pairwise overlap by varying amounts, plus one disjoint hyperedge.
//   e0 = {1,2,3,4}       e1 = {3,4,5,6}       e2 = {4,5,6,7,8}
//   e3 = {100,101}  (disjoint from everything else)
func buildScenario3() *hypergraph.Hypergraph {
	hg := hypergraph.New()
	hg.AddHyperedge(0, []int32{1, 2, 3, 4})
	hg.AddHyperedge(1, []int32{3, 4, 5, 6})
	hg.AddHyperedge(2, []int32{4, 5, 6, 7, 8})
	hg.AddHyperedge(3, []int32{100, 101})
	return hg
}

func TestReachable_Unconstrained(t *testing.T) {
	idx := hypergraph.Build(buildScenario3(), 0)

	assert.True(t, idx.Reachable(1, 8), "1 (e0) and 8 (e2) connect transitively through e1")
	assert.False(t, idx.Reachable(1, 100), "disjoint hyperedge must not connect")
}

func TestReachableK_DisjointSetLayers(t *testing.T) {
	idx := hypergraph.Build(buildScenario3(), 0)

	// e0 ∩ e1 = {3,4} (size 2); e1 ∩ e2 = {4,5,6} (size 3).
	assert.True(t, idx.ReachableK(1, 6, 2), "e0->e1 at k=2 holds, reaching vertex 6 in e1")
	assert.True(t, idx.ReachableK(1, 8, 2), "e0->e1->e2 chain holds at k=2")
	assert.False(t, idx.ReachableK(1, 8, 4), "no pairwise intersection reaches size 4")
}

func TestReachableKViaPLL_AgreesWithLayers(t *testing.T) {
	idx := hypergraph.Build(buildScenario3(), 0)

	for k := 1; k <= idx.KMax(); k++ {
		got := idx.ReachableKViaPLL(1, 8, k)
		want := idx.ReachableK(1, 8, k)
		assert.Equal(t, want, got, "layer and weighted-PLL queries must agree at k=%d", k)
	}
}

func TestReachableBFS_WithMinIntersectionConstraint(t *testing.T) {
	idx := hypergraph.Build(buildScenario3(), 0)

	assert.True(t, idx.ReachableBFS(1, 8, 0), "unconstrained BFS finds the e0->e1->e2 chain")
	assert.True(t, idx.ReachableBFS(1, 8, 2), "every hop in the chain meets intersection size 2")
	assert.False(t, idx.ReachableBFS(1, 8, 4), "no hop reaches intersection size 4")
	assert.False(t, idx.ReachableBFS(1, 100, 0), "disjoint hyperedge is unreachable regardless of constraint")
}

func TestReachable_SharedEdgeShortcut(t *testing.T) {
	idx := hypergraph.Build(buildScenario3(), 0)
	assert.True(t, idx.ReachableK(3, 4, 1000), "3 and 4 share e0 directly, regardless of k")
}

// TestReachable_LiteralScenario3 reproduces the literal hyperedge set and
// expected answers from spec.md §8 scenario 3: two disjoint intersection
// chains, {0,1,2,3}..{14,6} and {7,8,9,12}..{10,11,7,12}, that never meet.
func TestReachable_LiteralScenario3(t *testing.T) {
	hg := hypergraph.New()
	hg.AddHyperedge(0, []int32{0, 1, 2, 3})
	hg.AddHyperedge(1, []int32{2, 3, 4})
	hg.AddHyperedge(2, []int32{4, 5, 6})
	hg.AddHyperedge(3, []int32{14, 6})
	hg.AddHyperedge(4, []int32{7, 8, 9, 12})
	hg.AddHyperedge(5, []int32{9, 10, 12})
	hg.AddHyperedge(6, []int32{10, 11, 7, 12})

	idx := hypergraph.Build(hg, 0)

	assert.True(t, idx.Reachable(2, 0), "2 and 0 share hyperedge {0,1,2,3} directly")
	assert.False(t, idx.Reachable(0, 7), "the {0..3}..{14,6} chain never meets the {7..12} chain")

	assert.True(t, idx.ReachableK(0, 6, 1), "at k=1 every hop in the {0,1,2,3}->...->{14,6} chain qualifies")
	assert.False(t, idx.ReachableK(0, 6, 2), "the {2,3,4}->{4,5,6} hop only shares {4}, intersection size 1")

	assert.True(t, idx.ReachableK(8, 11, 2), "{7,8,9,12}->{9,10,12}->{10,11,7,12} each share 2 vertices")
	assert.False(t, idx.ReachableK(8, 11, 3), "no hop in the {7..12} chain shares 3 vertices")
}
