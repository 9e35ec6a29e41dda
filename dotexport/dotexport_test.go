package dotexport_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/reachcompress/adjgraph"
	"github.com/katalvlaran/reachcompress/dotexport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDOT_EmitsLiveNodesAndEdges(t *testing.T) {
	g := adjgraph.New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	var buf strings.Builder
	require.NoError(t, dotexport.WriteDOT(&buf, "g", g))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph g {\n"))
	assert.Contains(t, out, "0 -> 1;")
	assert.Contains(t, out, "1 -> 2;")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestWriteDOT_QuotesNonBareIdentifierNames(t *testing.T) {
	g := adjgraph.New()
	g.AddEdge(0, 1)

	var buf strings.Builder
	require.NoError(t, dotexport.WriteDOT(&buf, "partition 0", g))
	assert.Contains(t, buf.String(), `digraph "partition 0" {`)
}

func TestWritePartitionDOT_IncludesWeightLabels(t *testing.T) {
	meta := adjgraph.New()
	meta.AddEdge(0, 1)

	weights := map[[2]int32]int{{0, 1}: 7}
	var buf strings.Builder
	err := dotexport.WritePartitionDOT(&buf, "partitions", meta, func(from, to int32) int {
		return weights[[2]int32{from, to}]
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `0 [label="partition 0"];`)
	assert.Contains(t, out, `0 -> 1 [label="7"];`)
}
