// Package dotexport renders a graph or a partition meta-graph as Graphviz
// DOT, the visual equivalent of the original implementation's
// OutputHandler::writeGraphInfo/printPartitionInfo console dump.
package dotexport

import (
	"fmt"
	"io"
)

// VID is a dense non-negative vertex identifier.
type VID = int32

// NodeLister is the minimal read surface WriteDOT needs; adjgraph.Graph
// satisfies it directly and csr.Store satisfies it via csrView.
type NodeLister interface {
	MaxID() VID
	NodeExists(v VID) bool
	OutNeighbors(v VID) []VID
}

// csrAdjacent is the subset of csr.Store's API that differs in naming only
// (OutEdges vs OutNeighbors) from NodeLister.
type csrAdjacent interface {
	MaxID() VID
	NodeExists(v VID) bool
	OutEdges(v VID) []VID
}

// csrView adapts a csr.Store (or anything with the same OutEdges-shaped
// surface) to NodeLister without copying edge slices.
type csrView struct{ store csrAdjacent }

// WrapCSR adapts a csr.Store for WriteDOT.
func WrapCSR(store csrAdjacent) NodeLister { return csrView{store: store} }

func (v csrView) MaxID() VID                { return v.store.MaxID() }
func (v csrView) NodeExists(n VID) bool     { return v.store.NodeExists(n) }
func (v csrView) OutNeighbors(n VID) []VID  { return v.store.OutEdges(n) }

// WriteDOT renders g as a directed Graphviz graph named name. Only live
// vertices (NodeExists) and their out-edges are emitted, so tombstoned CSR
// slots don't appear as isolated nodes.
func WriteDOT(w io.Writer, name string, g NodeLister) error {
	if _, err := fmt.Fprintf(w, "digraph %s {\n", quoteID(name)); err != nil {
		return err
	}
	for v := VID(0); v <= g.MaxID(); v++ {
		if !g.NodeExists(v) {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %d;\n", v); err != nil {
			return err
		}
		for _, u := range g.OutNeighbors(v) {
			if _, err := fmt.Fprintf(w, "  %d -> %d;\n", v, u); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// PartitionEdge is one directed connection between two partitions, labeled
// with the number of original cross edges it represents.
type PartitionEdge struct {
	From, To VID
	Weight   int
}

// WritePartitionDOT renders the partition meta-graph: one node per
// partition, one labeled edge per nonzero cross-partition connection — the
// DOT analogue of OutputHandler::printPartitionInfo's partition summary.
func WritePartitionDOT(w io.Writer, name string, meta NodeLister, weights func(from, to VID) int) error {
	if _, err := fmt.Fprintf(w, "digraph %s {\n", quoteID(name)); err != nil {
		return err
	}
	for v := VID(0); v <= meta.MaxID(); v++ {
		if !meta.NodeExists(v) {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %d [label=\"partition %d\"];\n", v, v); err != nil {
			return err
		}
		for _, u := range meta.OutNeighbors(v) {
			weight := 0
			if weights != nil {
				weight = weights(v, u)
			}
			if _, err := fmt.Fprintf(w, "  %d -> %d [label=\"%d\"];\n", v, u, weight); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// quoteID wraps name in double quotes when it isn't a bare DOT identifier.
func quoteID(name string) string {
	for _, r := range name {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return fmt.Sprintf("%q", name)
		}
	}
	if name == "" {
		return `""`
	}
	return name
}
