package features

import (
	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/volume"
)

// geometry emits descriptors derived from the graph and the label
// volume alone: the shared boundary size and the region size ratio.
type geometry struct {
	r     *rag.Rag
	sizes map[uint32]int
	cols  []Column
}

// Geometry returns an accumulator emitting boundary_face_count and
// size_ratio (smaller region size over larger, in (0, 1]). It needs no
// auxiliary data.
func Geometry() Accumulator {
	return &geometry{}
}

// Name implements Accumulator.
func (a *geometry) Name() string { return "geometry" }

// Init counts region sizes; aux is ignored.
func (a *geometry) Init(r *rag.Rag, _ *volume.Field) error {
	if !r.HasLabels() {
		return rag.ErrLabelsNotStored
	}

	a.sizes = make(map[uint32]int, r.NumRegions())
	for _, id := range r.Labels().Data() {
		a.sizes[id]++
	}
	a.r = r
	a.cols = []Column{
		{Name: "boundary_face_count", Values: make([]float64, r.NumEdges())},
		{Name: "size_ratio", Values: make([]float64, r.NumEdges())},
	}

	return nil
}

// Accumulate records the boundary size and size ratio of edge e.
func (a *geometry) Accumulate(i int, e rag.Edge) error {
	if a.sizes == nil {
		return ErrNotInitialized
	}
	a.cols[0].Values[i] = float64(a.r.FaceCount(i))

	su, sv := a.sizes[e.U], a.sizes[e.V]
	lo, hi := su, sv
	if lo > hi {
		lo, hi = hi, lo
	}
	a.cols[1].Values[i] = float64(lo) / float64(hi)

	return nil
}

// Finalize implements Accumulator.
func (a *geometry) Finalize() ([]Column, error) {
	if a.sizes == nil {
		return nil, ErrNotInitialized
	}

	return a.cols, nil
}
