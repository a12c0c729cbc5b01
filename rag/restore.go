package rag

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/DerThorsten/ilastikrag/volume"
)

// Restore reassembles a graph from previously exported parts, typically
// a decoded snapshot. edges must be canonical (U < V, no duplicates)
// and aligned with faceCounts; axial must hold one face list per axis.
// labels may be nil (the graph is then restored without its volume and
// label-dependent operations fail with ErrLabelsNotStored); regions may
// be nil, in which case the region set is derived from labels when
// present or from the edge endpoints otherwise. All inputs are copied.
// Complexity: O(E + F + R).
func Restore(shape volume.Shape, labels *volume.Labels, edges []Edge, faceCounts []int,
	axial [][]Face, regions *roaring.Bitmap) (*Rag, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if labels != nil && !labels.Shape().Equal(shape) {
		return nil, fmt.Errorf("rag: Restore: %w", volume.ErrShapeMismatch)
	}
	if len(faceCounts) != len(edges) {
		return nil, fmt.Errorf("rag: Restore: %d face counts for %d edges: %w",
			len(faceCounts), len(edges), ErrMalformed)
	}
	if len(axial) != len(shape) {
		return nil, fmt.Errorf("rag: Restore: %d face lists for %d axes: %w",
			len(axial), len(shape), ErrMalformed)
	}

	r := &Rag{
		shape:      shape.Clone(),
		labels:     labels,
		edges:      make([]Edge, len(edges)),
		faceCounts: make([]int, len(faceCounts)),
		index:      make(map[uint64]int32, len(edges)),
		axial:      make([][]Face, len(axial)),
	}
	copy(r.edges, edges)
	copy(r.faceCounts, faceCounts)
	for i, e := range edges {
		if e.U >= e.V {
			return nil, fmt.Errorf("rag: Restore: edge %d (%d,%d) not canonical: %w",
				i, e.U, e.V, ErrMalformed)
		}
		key := pairKey(e.U, e.V)
		if _, dup := r.index[key]; dup {
			return nil, fmt.Errorf("rag: Restore: duplicate edge (%d,%d): %w", e.U, e.V, ErrMalformed)
		}
		r.index[key] = int32(i)
	}
	for axis, faces := range axial {
		for _, f := range faces {
			if int(f.Edge) < 0 || int(f.Edge) >= len(edges) {
				return nil, fmt.Errorf("rag: Restore: face edge index %d out of range: %w",
					f.Edge, ErrMalformed)
			}
		}
		r.axial[axis] = make([]Face, len(faces))
		copy(r.axial[axis], faces)
	}

	switch {
	case regions != nil:
		r.regions = regions.Clone()
	case labels != nil:
		r.regions = roaring.New()
		r.regions.AddMany(labels.Data())
	default:
		r.regions = roaring.New()
		for _, e := range edges {
			r.regions.Add(e.U)
			r.regions.Add(e.V)
		}
	}
	r.buildAdjacency()

	return r, nil
}
