package rag

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
)

// Undirected returns a read-only gonum view of the graph: nodes are
// region ids, edges the canonical edge set. The view shares the graph's
// storage and stays valid for its lifetime, so any gonum algorithm or
// encoder can consume the adjacency structure directly.
// Complexity: O(1); Nodes and From materialize id lists on demand.
func (r *Rag) Undirected() graph.Undirected { return undirectedView{r: r} }

// undirectedView adapts Rag to gonum's graph.Undirected protocol.
type undirectedView struct {
	r *Rag
}

// Node returns the node with the given id, or nil when absent.
func (v undirectedView) Node(id int64) graph.Node {
	if id < 0 || id > math.MaxUint32 || !v.r.regions.Contains(uint32(id)) {
		return nil
	}

	return simple.Node(id)
}

// Nodes returns all region nodes in ascending id order.
func (v undirectedView) Nodes() graph.Nodes {
	ids := v.r.regions.ToArray()
	if len(ids) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = simple.Node(id)
	}

	return iterator.NewOrderedNodes(nodes)
}

// From returns the neighbors of id in ascending order.
func (v undirectedView) From(id int64) graph.Nodes {
	if id < 0 || id > math.MaxUint32 {
		return graph.Empty
	}
	neigh := v.r.adj[uint32(id)]
	if len(neigh) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(neigh))
	for i, n := range neigh {
		nodes[i] = simple.Node(n)
	}

	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether two regions share a boundary.
func (v undirectedView) HasEdgeBetween(xid, yid int64) bool {
	if xid < 0 || xid > math.MaxUint32 || yid < 0 || yid > math.MaxUint32 {
		return false
	}
	_, ok := v.r.EdgeIndex(uint32(xid), uint32(yid))

	return ok
}

// Edge returns the edge between two regions, or nil when they are not
// adjacent.
func (v undirectedView) Edge(uid, vid int64) graph.Edge { return v.EdgeBetween(uid, vid) }

// EdgeBetween returns the edge between two regions, or nil when they
// are not adjacent.
func (v undirectedView) EdgeBetween(xid, yid int64) graph.Edge {
	if !v.HasEdgeBetween(xid, yid) {
		return nil
	}

	return simple.Edge{F: simple.Node(xid), T: simple.Node(yid)}
}
