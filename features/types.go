package features

import (
	"errors"

	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/volume"
)

// Sentinel errors for feature computation.
var (
	// ErrMissingAuxiliaryData indicates an accumulator that needs voxel
	// values received none.
	ErrMissingAuxiliaryData = errors.New("features: auxiliary data required but not supplied")
	// ErrColumnCollision indicates two accumulators emitting the same
	// column name.
	ErrColumnCollision = errors.New("features: duplicate column name")
	// ErrUnknownFeature indicates an unparseable feature name or statistic.
	ErrUnknownFeature = errors.New("features: unknown feature")
	// ErrNoAccumulators indicates there is nothing to compute.
	ErrNoAccumulators = errors.New("features: no accumulators")
	// ErrNotInitialized indicates Accumulate or Finalize before Init.
	ErrNotInitialized = errors.New("features: accumulator not initialized")
	// ErrBadColumn indicates an accumulator emitted misaligned columns.
	ErrBadColumn = errors.New("features: column length does not match edge count")
	// ErrNilGraph indicates a nil graph argument.
	ErrNilGraph = errors.New("features: nil graph")
)

// Stat selects one summary statistic.
type Stat uint8

// The supported statistics. Quantiles interpolate linearly between
// order statistics.
const (
	Count Stat = iota
	Sum
	Minimum
	Maximum
	Mean
	Variance
	Skewness
	Kurtosis
	Quantile10
	Quantile25
	Quantile50
	Quantile75
	Quantile90

	numStats
)

// statNames maps Stat to its column-name stem.
var statNames = [numStats]string{
	Count:      "count",
	Sum:        "sum",
	Minimum:    "minimum",
	Maximum:    "maximum",
	Mean:       "mean",
	Variance:   "variance",
	Skewness:   "skewness",
	Kurtosis:   "kurtosis",
	Quantile10: "quantiles_10",
	Quantile25: "quantiles_25",
	Quantile50: "quantiles_50",
	Quantile75: "quantiles_75",
	Quantile90: "quantiles_90",
}

// String returns the column-name stem of the statistic, "unknown" for
// values outside the supported set.
func (s Stat) String() string {
	if s >= numStats {
		return "unknown"
	}

	return statNames[s]
}

// valid reports whether s is in the supported set.
func (s Stat) valid() bool { return s < numStats }

// isQuantile reports whether s needs sorted samples.
func (s Stat) isQuantile() bool { return s >= Quantile10 && s <= Quantile90 }

// AllStats returns every supported statistic in declaration order.
func AllStats() []Stat {
	all := make([]Stat, numStats)
	for i := range all {
		all[i] = Stat(i)
	}

	return all
}

// Column is one named output column, aligned with the canonical edge
// order of the graph it was computed from.
type Column struct {
	Name   string
	Values []float64
}

// Accumulator is the capability set of a feature provider. Implementors
// never mutate the graph; they read edge identity, region membership,
// and the externally supplied auxiliary field.
//
// The assembler drives the three phases in order: Init once (eager
// precondition checks, precomputation), Accumulate once per canonical
// edge with its row index, Finalize once to collect the named columns.
// Multi-pass designs are free to buffer in Accumulate and compute in
// Finalize; every phase must be deterministic.
type Accumulator interface {
	// Name qualifies columns under WithPrefixColumns.
	Name() string
	// Init validates preconditions against the graph and auxiliary
	// data before any accumulation happens. aux may be nil for
	// accumulators that do not need it.
	Init(r *rag.Rag, aux *volume.Field) error
	// Accumulate folds edge e at canonical row index i.
	Accumulate(i int, e rag.Edge) error
	// Finalize returns the named output columns.
	Finalize() ([]Column, error)
}
