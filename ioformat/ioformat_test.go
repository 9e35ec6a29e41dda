package ioformat_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/reachcompress/ioformat"
	"github.com/stretchr/testify/assert"
)

func TestParseEdgeList(t *testing.T) {
	input := "0 1\n1 2\n\n2 3\nbad line\n4 x\n"
	edges := ioformat.ParseEdgeList(strings.NewReader(input))
	assert.Equal(t, []ioformat.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, edges)
}

func TestParseHypergraphFile(t *testing.T) {
	input := "0 1 2 3\n2 3 4\n\nbad x\n4 5 6\n"
	edges := ioformat.ParseHypergraphFile(strings.NewReader(input))
	assert.Equal(t, [][]ioformat.VID{{0, 1, 2, 3}, {2, 3, 4}, {4, 5, 6}}, edges)
}

func TestParseEquivalence(t *testing.T) {
	input := "0 0\n1 0\n2 1\n"
	m := ioformat.ParseEquivalence(strings.NewReader(input))
	assert.Equal(t, map[ioformat.VID]ioformat.VID{0: 0, 1: 0, 2: 1}, m)
}

func TestParsePartitionAssignment(t *testing.T) {
	input := "0 0\n1 0\n2 1\n3 1\n"
	m := ioformat.ParsePartitionAssignment(strings.NewReader(input))
	assert.Equal(t, map[ioformat.VID]int32{0: 0, 1: 0, 2: 1, 3: 1}, m)
}

func TestConvertSimplex(t *testing.T) {
	nverts := "4\n3\n"
	simplices := "0\n1\n2\n3\n2\n3\n4\n"

	var out strings.Builder
	err := ioformat.ConvertSimplex(strings.NewReader(nverts), strings.NewReader(simplices), &out)
	assert.NoError(t, err)

	got := ioformat.ParseHypergraphFile(strings.NewReader(out.String()))
	assert.Equal(t, [][]ioformat.VID{{0, 1, 2, 3}, {2, 3, 4}}, got)
}

func TestConvertSimplex_TruncatedStopsCleanly(t *testing.T) {
	nverts := "4\n5\n"
	simplices := "0\n1\n2\n3\n2\n3\n"

	var out strings.Builder
	err := ioformat.ConvertSimplex(strings.NewReader(nverts), strings.NewReader(simplices), &out)
	assert.NoError(t, err)

	got := ioformat.ParseHypergraphFile(strings.NewReader(out.String()))
	assert.Equal(t, [][]ioformat.VID{{0, 1, 2, 3}}, got)
}
