package rag

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/DerThorsten/ilastikrag/volume"
)

// MergeSegmentation rewrites the label volume after dissolving every
// edge whose decision is false (no boundary kept). Regions joined by
// dissolved edges collapse into connected components; components are
// renumbered 1..K by ascending smallest member id, and every voxel
// receives its component id. decisions must align with the canonical
// edge order (ErrDecisionLength otherwise).
// Complexity: O(n + R + E), n = voxel count.
func (r *Rag) MergeSegmentation(decisions []bool) (*volume.Labels, error) {
	if !r.HasLabels() {
		return nil, ErrLabelsNotStored
	}
	if len(decisions) != len(r.edges) {
		return nil, fmt.Errorf("rag: MergeSegmentation: got %d decisions for %d edges: %w",
			len(decisions), len(r.edges), ErrDecisionLength)
	}

	// Region graph with only the dissolved edges; isolated regions stay
	// as their own nodes.
	g := simple.NewUndirectedGraph()
	for _, id := range r.regions.ToArray() {
		g.AddNode(simple.Node(id))
	}
	for i, e := range r.edges {
		if decisions[i] {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	components := topo.ConnectedComponents(g)
	mins := make([]uint32, len(components))
	order := make([]int, len(components))
	for i, comp := range components {
		lo := uint32(math.MaxUint32)
		for _, node := range comp {
			if id := uint32(node.ID()); id < lo {
				lo = id
			}
		}
		mins[i] = lo
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return mins[order[a]] < mins[order[b]] })

	relabel := make(map[uint32]uint32, r.regions.GetCardinality())
	for rank, ci := range order {
		for _, node := range components[ci] {
			relabel[uint32(node.ID())] = uint32(rank + 1)
		}
	}

	data := r.labels.Data()
	merged := make([]uint32, len(data))
	for i, id := range data {
		merged[i] = relabel[id]
	}

	return volume.NewLabels(r.shape, merged)
}
