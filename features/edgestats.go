package features

import (
	"fmt"

	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/volume"
)

// edgeStatistics summarizes the auxiliary values along each shared
// boundary. The value of one face is the mean of the two voxels across
// it, computed in float32 before being summarized.
type edgeStatistics struct {
	stats  []Stat
	sorted bool
	values [][]float32 // per canonical edge, filled during Init
	cols   []Column
}

// EdgeStatistics returns an accumulator emitting one edge_<stat> column
// per requested statistic. No statistics means all of them.
func EdgeStatistics(stats ...Stat) Accumulator {
	if len(stats) == 0 {
		stats = AllStats()
	}

	return &edgeStatistics{stats: stats, sorted: needSorted(stats)}
}

// Name implements Accumulator.
func (a *edgeStatistics) Name() string { return "edge" }

// Init validates the auxiliary field and groups the per-face values by
// canonical edge.
func (a *edgeStatistics) Init(r *rag.Rag, aux *volume.Field) error {
	if err := validateStats(a.stats); err != nil {
		return err
	}
	if aux == nil {
		return fmt.Errorf("%w: edge statistics read voxel values", ErrMissingAuxiliaryData)
	}
	shape := r.Shape()
	if !aux.Shape().Equal(shape) {
		return fmt.Errorf("features: edge statistics: %w", volume.ErrShapeMismatch)
	}

	values := make([][]float32, r.NumEdges())
	for i := range values {
		values[i] = make([]float32, 0, r.FaceCount(i))
	}
	strides := shape.Strides()
	for axis := 0; axis < r.NumAxes(); axis++ {
		stride := strides[axis]
		for _, f := range r.FacesAlongAxis(axis) {
			v := (aux.AtOffset(f.Offset) + aux.AtOffset(f.Offset+stride)) / 2
			values[f.Edge] = append(values[f.Edge], v)
		}
	}
	a.values = values

	a.cols = make([]Column, len(a.stats))
	for j, st := range a.stats {
		a.cols[j] = Column{
			Name:   "edge_" + st.String(),
			Values: make([]float64, r.NumEdges()),
		}
	}

	return nil
}

// Accumulate summarizes the boundary values of edge i.
func (a *edgeStatistics) Accumulate(i int, _ rag.Edge) error {
	if a.values == nil {
		return ErrNotInitialized
	}
	s := summarize(a.values[i], a.sorted)
	for j, st := range a.stats {
		a.cols[j].Values[i] = s.stat(st)
	}

	return nil
}

// Finalize implements Accumulator.
func (a *edgeStatistics) Finalize() ([]Column, error) {
	if a.values == nil {
		return nil, ErrNotInitialized
	}

	return a.cols, nil
}
