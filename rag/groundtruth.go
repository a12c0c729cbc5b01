package rag

import (
	"fmt"

	"github.com/DerThorsten/ilastikrag/volume"
)

// EdgeDecisions classifies every canonical edge against a groundtruth
// volume: true when the two regions map onto different groundtruth
// labels, false when they coincide. Each region maps onto the
// groundtruth label it overlaps most; ties resolve to the smallest
// label. The result is aligned with the canonical edge order.
// Fails with ErrLabelsNotStored on a graph without labels and with
// volume.ErrShapeMismatch when gt has a different shape.
// Complexity: O(n + E), n = voxel count.
func (r *Rag) EdgeDecisions(gt *volume.Labels) ([]bool, error) {
	mapping, err := r.groundtruthMapping(gt)
	if err != nil {
		return nil, err
	}
	decisions := make([]bool, len(r.edges))
	for i, e := range r.edges {
		decisions[i] = mapping[e.U] != mapping[e.V]
	}

	return decisions, nil
}

// EdgeDecisionMap is EdgeDecisions keyed by edge instead of index.
// Complexity: O(n + E).
func (r *Rag) EdgeDecisionMap(gt *volume.Labels) (map[Edge]bool, error) {
	decisions, err := r.EdgeDecisions(gt)
	if err != nil {
		return nil, err
	}
	m := make(map[Edge]bool, len(decisions))
	for i, e := range r.edges {
		m[e] = decisions[i]
	}

	return m, nil
}

// groundtruthMapping maps every region id onto the groundtruth label
// with the largest voxel overlap, via a sparse contingency count.
func (r *Rag) groundtruthMapping(gt *volume.Labels) (map[uint32]uint32, error) {
	if !r.HasLabels() {
		return nil, ErrLabelsNotStored
	}
	if gt == nil || !gt.Shape().Equal(r.shape) {
		return nil, fmt.Errorf("rag: groundtruth: %w", volume.ErrShapeMismatch)
	}

	overlap := make(map[uint64]int)
	data := r.labels.Data()
	gtData := gt.Data()
	for i, id := range data {
		overlap[uint64(id)<<32|uint64(gtData[i])]++
	}

	type best struct {
		count int
		label uint32
	}
	bests := make(map[uint32]best, len(overlap))
	for key, cnt := range overlap {
		region := uint32(key >> 32)
		label := uint32(key)
		b, seen := bests[region]
		if !seen || cnt > b.count || (cnt == b.count && label < b.label) {
			bests[region] = best{count: cnt, label: label}
		}
	}

	mapping := make(map[uint32]uint32, len(bests))
	for region, b := range bests {
		mapping[region] = b.label
	}

	return mapping, nil
}
