package features

import (
	"fmt"
	"math"

	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/volume"
)

// regionStatistics summarizes whole regions and splits every statistic
// into a sum column and an absolute-difference column for the two
// regions of each edge. Region counts are reduced by the ndim-th root
// before the split.
type regionStatistics struct {
	stats     []Stat
	sorted    bool
	ndim      int
	summaries map[uint32]summary
	cols      []Column
}

// RegionStatistics returns an accumulator emitting sp_<stat>_sum and
// sp_<stat>_difference columns per requested statistic. No statistics
// means all of them.
func RegionStatistics(stats ...Stat) Accumulator {
	if len(stats) == 0 {
		stats = AllStats()
	}

	return &regionStatistics{stats: stats, sorted: needSorted(stats)}
}

// Name implements Accumulator.
func (a *regionStatistics) Name() string { return "sp" }

// Init groups the auxiliary values by region and summarizes each region
// once.
func (a *regionStatistics) Init(r *rag.Rag, aux *volume.Field) error {
	if err := validateStats(a.stats); err != nil {
		return err
	}
	if aux == nil {
		return fmt.Errorf("%w: region statistics read voxel values", ErrMissingAuxiliaryData)
	}
	if !r.HasLabels() {
		return rag.ErrLabelsNotStored
	}
	shape := r.Shape()
	if !aux.Shape().Equal(shape) {
		return fmt.Errorf("features: region statistics: %w", volume.ErrShapeMismatch)
	}

	groups := make(map[uint32][]float32, r.NumRegions())
	labelData := r.Labels().Data()
	auxData := aux.Data()
	for i, id := range labelData {
		groups[id] = append(groups[id], auxData[i])
	}
	a.summaries = make(map[uint32]summary, len(groups))
	for id, vals := range groups {
		a.summaries[id] = summarize(vals, a.sorted)
	}
	a.ndim = r.NumAxes()

	a.cols = make([]Column, 2*len(a.stats))
	for j, st := range a.stats {
		stem := "sp_" + st.String()
		a.cols[2*j] = Column{Name: stem + "_sum", Values: make([]float64, r.NumEdges())}
		a.cols[2*j+1] = Column{Name: stem + "_difference", Values: make([]float64, r.NumEdges())}
	}

	return nil
}

// Accumulate splits the two region summaries of edge e into sum and
// absolute difference.
func (a *regionStatistics) Accumulate(i int, e rag.Edge) error {
	if a.summaries == nil {
		return ErrNotInitialized
	}
	su, sv := a.summaries[e.U], a.summaries[e.V]
	for j, st := range a.stats {
		var u, v float64
		if st == Count {
			u = rootN(float64(su.count), a.ndim)
			v = rootN(float64(sv.count), a.ndim)
		} else {
			u = su.stat(st)
			v = sv.stat(st)
		}
		a.cols[2*j].Values[i] = u + v
		a.cols[2*j+1].Values[i] = math.Abs(u - v)
	}

	return nil
}

// Finalize implements Accumulator.
func (a *regionStatistics) Finalize() ([]Column, error) {
	if a.summaries == nil {
		return nil, ErrNotInitialized
	}

	return a.cols, nil
}
