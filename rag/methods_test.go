package rag_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"

	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/volume"
)

// crossFixture builds a plus-shaped five-region image around region 5.
func crossFixture(t *testing.T) *rag.Rag {
	t.Helper()
	labels, err := volume.LabelsFrom2D([][]int{
		{9, 1, 9},
		{2, 5, 3},
		{9, 4, 9},
	})
	require.NoError(t, err)
	r, err := rag.Build(labels)
	require.NoError(t, err)

	return r
}

// TestRag_EdgeIndex resolves edges in both argument orders and reports
// missing pairs.
func TestRag_EdgeIndex(t *testing.T) {
	r := crossFixture(t)

	i, ok := r.EdgeIndex(5, 1)
	require.True(t, ok)
	require.Equal(t, rag.Edge{U: 1, V: 5}, r.EdgeAt(i))

	j, ok := r.EdgeIndex(1, 5)
	require.True(t, ok)
	require.Equal(t, i, j, "argument order must not matter")

	_, ok = r.EdgeIndex(1, 4)
	require.False(t, ok, "opposite arms of the cross do not touch")

	_, ok = r.EdgeIndex(5, 5)
	require.False(t, ok, "self-pairs are never stored")

	_, ok = r.EdgeIndex(5, 77)
	require.False(t, ok, "unknown region")
}

// TestRag_NeighborsSorted checks sorted neighbor lists, degrees, and
// copy semantics of the returned slice.
func TestRag_NeighborsSorted(t *testing.T) {
	r := crossFixture(t)

	neigh := r.Neighbors(5)
	require.Equal(t, []uint32{1, 2, 3, 4}, neigh)
	require.Equal(t, 4, r.Degree(5))

	neigh[0] = 99
	require.Equal(t, []uint32{1, 2, 3, 4}, r.Neighbors(5), "returned slice is a copy")

	require.Nil(t, r.Neighbors(77), "unknown region has no neighbors")
	require.Equal(t, 0, r.Degree(77))
}

// TestRag_RegionQueries covers the region id set.
func TestRag_RegionQueries(t *testing.T) {
	r := crossFixture(t)

	require.Equal(t, 6, r.NumRegions())
	require.Equal(t, []uint32{1, 2, 3, 4, 5, 9}, r.RegionIDs())
	require.Equal(t, uint32(9), r.MaxRegion())
	require.True(t, r.ContainsRegion(9))
	require.False(t, r.ContainsRegion(6))
}

// TestRag_EdgesCopy ensures the canonical edge list cannot be mutated
// from outside.
func TestRag_EdgesCopy(t *testing.T) {
	r := crossFixture(t)

	edges := r.Edges()
	edges[0] = rag.Edge{U: 100, V: 200}
	require.NotEqual(t, r.EdgeAt(0), edges[0])
}

// TestRag_FacesAlongAxis pins the face offsets of the two-row fixture:
// both vertical faces sit in row 0.
func TestRag_FacesAlongAxis(t *testing.T) {
	labels, err := volume.LabelsFrom2D([][]int{
		{1, 1},
		{2, 2},
	})
	require.NoError(t, err)
	r, err := rag.Build(labels)
	require.NoError(t, err)

	require.Equal(t, []rag.Face{{Edge: 0, Offset: 0}, {Edge: 0, Offset: 1}}, r.FacesAlongAxis(0))
	require.Empty(t, r.FacesAlongAxis(1))
}

// TestRag_VolumeAccess checks shape and label accessors.
func TestRag_VolumeAccess(t *testing.T) {
	labels, err := volume.LabelsFrom2D([][]int{
		{1, 1},
		{2, 2},
	})
	require.NoError(t, err)
	r, err := rag.Build(labels)
	require.NoError(t, err)

	require.Equal(t, volume.Shape{2, 2}, r.Shape())
	require.Equal(t, 2, r.NumAxes())
	require.True(t, r.HasLabels())
	require.Same(t, labels, r.Labels())
}

// TestRestore_RoundTrip reassembles a graph from its exported parts and
// compares every query surface.
func TestRestore_RoundTrip(t *testing.T) {
	original := crossFixture(t)

	faceCounts := make([]int, original.NumEdges())
	axial := make([][]rag.Face, original.NumAxes())
	for i := range faceCounts {
		faceCounts[i] = original.FaceCount(i)
	}
	for axis := range axial {
		axial[axis] = original.FacesAlongAxis(axis)
	}

	restored, err := rag.Restore(original.Shape(), original.Labels(),
		original.Edges(), faceCounts, axial, nil)
	require.NoError(t, err)

	require.Equal(t, original.Edges(), restored.Edges())
	require.Equal(t, original.RegionIDs(), restored.RegionIDs())
	require.Equal(t, original.Neighbors(5), restored.Neighbors(5))
	for i := 0; i < original.NumEdges(); i++ {
		require.Equal(t, original.FaceCount(i), restored.FaceCount(i))
	}
	for axis := 0; axis < original.NumAxes(); axis++ {
		require.Equal(t, original.FacesAlongAxis(axis), restored.FacesAlongAxis(axis))
	}
}

// TestRestore_WithoutLabels derives the region set from edge endpoints
// and blocks label-dependent operations.
func TestRestore_WithoutLabels(t *testing.T) {
	edges := []rag.Edge{{U: 1, V: 2}, {U: 2, V: 3}}
	axial := [][]rag.Face{{{Edge: 0, Offset: 0}}, {{Edge: 1, Offset: 1}}}

	r, err := rag.Restore(volume.Shape{2, 2}, nil, edges, []int{1, 1}, axial, nil)
	require.NoError(t, err)

	require.False(t, r.HasLabels())
	require.Nil(t, r.Labels())
	require.Equal(t, []uint32{1, 2, 3}, r.RegionIDs())

	_, err = r.MergeSegmentation([]bool{true, true})
	require.ErrorIs(t, err, rag.ErrLabelsNotStored)
}

// TestRestore_RegionBitmap prefers an explicit region set over
// derivation, covering isolated regions absent from any edge.
func TestRestore_RegionBitmap(t *testing.T) {
	regions := roaring.New()
	regions.AddMany([]uint32{1, 2, 3, 10})

	r, err := rag.Restore(volume.Shape{2, 2}, nil,
		[]rag.Edge{{U: 1, V: 2}, {U: 2, V: 3}}, []int{1, 1},
		[][]rag.Face{{}, {}}, regions)
	require.NoError(t, err)

	require.Equal(t, []uint32{1, 2, 3, 10}, r.RegionIDs())
	require.Equal(t, 0, r.Degree(10))
}

// TestRestore_Malformed rejects invalid exported parts.
func TestRestore_Malformed(t *testing.T) {
	shape := volume.Shape{2, 2}
	axial := [][]rag.Face{{}, {}}

	_, err := rag.Restore(shape, nil, []rag.Edge{{U: 2, V: 1}}, []int{1}, axial, nil)
	require.ErrorIs(t, err, rag.ErrMalformed, "non-canonical edge")

	_, err = rag.Restore(shape, nil, []rag.Edge{{U: 1, V: 1}}, []int{1}, axial, nil)
	require.ErrorIs(t, err, rag.ErrMalformed, "self-pair")

	_, err = rag.Restore(shape, nil,
		[]rag.Edge{{U: 1, V: 2}, {U: 1, V: 2}}, []int{1, 1}, axial, nil)
	require.ErrorIs(t, err, rag.ErrMalformed, "duplicate edge")

	_, err = rag.Restore(shape, nil, []rag.Edge{{U: 1, V: 2}}, []int{1, 2}, axial, nil)
	require.ErrorIs(t, err, rag.ErrMalformed, "face count misalignment")

	_, err = rag.Restore(shape, nil, []rag.Edge{{U: 1, V: 2}}, []int{1},
		[][]rag.Face{{}}, nil)
	require.ErrorIs(t, err, rag.ErrMalformed, "missing axis face list")

	_, err = rag.Restore(shape, nil, []rag.Edge{{U: 1, V: 2}}, []int{1},
		[][]rag.Face{{{Edge: 5, Offset: 0}}, {}}, nil)
	require.ErrorIs(t, err, rag.ErrMalformed, "face references unknown edge")

	_, err = rag.Restore(volume.Shape{0, 2}, nil, nil, nil, nil, nil)
	require.ErrorIs(t, err, volume.ErrInvalidShape)
}
