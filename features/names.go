package features

import (
	"fmt"
	"strings"

	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/volume"
)

// DefaultFeatures returns the standard feature set: geometry, edge
// count/mean/variance with the middle quantiles, and region count/mean.
func DefaultFeatures() []Accumulator {
	return []Accumulator{
		Geometry(),
		EdgeStatistics(Count, Mean, Variance, Quantile25, Quantile50, Quantile75),
		RegionStatistics(Count, Mean),
	}
}

// ComputeFeatures computes a table from feature names of the form
// edge_<stat> or sp_<stat> (case-insensitive), e.g. "edge_mean" or
// "sp_quantiles_75". Edge statistics are grouped into one accumulator
// and region statistics into another, preserving first-seen order;
// every sp_<stat> name expands into its _sum and _difference columns.
// Unrecognized names fail with ErrUnknownFeature.
// Complexity: as ComputeTable.
func ComputeFeatures(r *rag.Rag, values *volume.Field, names []string, opts ...Option) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoAccumulators
	}

	var edgeStats, spStats []Stat
	seenEdge := make(map[Stat]bool)
	seenSp := make(map[Stat]bool)
	for _, name := range names {
		lower := strings.ToLower(name)
		switch {
		case strings.HasPrefix(lower, "edge_"):
			st, ok := parseStat(strings.TrimPrefix(lower, "edge_"))
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
			}
			if !seenEdge[st] {
				seenEdge[st] = true
				edgeStats = append(edgeStats, st)
			}
		case strings.HasPrefix(lower, "sp_"):
			st, ok := parseStat(strings.TrimPrefix(lower, "sp_"))
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
			}
			if !seenSp[st] {
				seenSp[st] = true
				spStats = append(spStats, st)
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
		}
	}

	var accs []Accumulator
	if len(edgeStats) > 0 {
		accs = append(accs, EdgeStatistics(edgeStats...))
	}
	if len(spStats) > 0 {
		accs = append(accs, RegionStatistics(spStats...))
	}

	return ComputeTable(r, values, accs, opts...)
}

// parseStat resolves a column-name stem into its Stat.
func parseStat(stem string) (Stat, bool) {
	for st := Stat(0); st < numStats; st++ {
		if statNames[st] == stem {
			return st, true
		}
	}

	return 0, false
}
