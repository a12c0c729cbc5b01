package features

import (
	"math"
	"sort"
)

// summary holds the precomputed statistics of one sample set.
type summary struct {
	count    int
	sum      float64
	min      float64
	max      float64
	mean     float64
	variance float64
	skewness float64
	kurtosis float64
	sorted   []float32 // ascending, present only when quantiles are needed
}

// summarize computes the moment statistics of vals in one sweep pair:
// extrema and sum first, then central moments about the mean. Variance
// is the population variance, skewness the third standardized moment,
// kurtosis the excess kurtosis; all three are NaN for a zero-spread
// sample. When needSorted is set, a sorted copy is kept for quantiles.
// Complexity: O(len(vals)) time, plus O(len·log len) when sorting.
func summarize(vals []float32, needSorted bool) summary {
	s := summary{count: len(vals)}
	if len(vals) == 0 {
		nan := math.NaN()
		s.min, s.max, s.mean = nan, nan, nan
		s.variance, s.skewness, s.kurtosis = nan, nan, nan

		return s
	}

	mn, mx := vals[0], vals[0]
	var sum float64
	for _, v := range vals {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
		sum += float64(v)
	}
	n := float64(len(vals))
	mean := sum / n

	var m2, m3, m4 float64
	for _, v := range vals {
		d := float64(v) - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	m2 /= n
	m3 /= n
	m4 /= n

	s.sum = sum
	s.min = float64(mn)
	s.max = float64(mx)
	s.mean = mean
	s.variance = m2
	if m2 > 0 {
		s.skewness = m3 / (m2 * math.Sqrt(m2))
		s.kurtosis = m4/(m2*m2) - 3
	} else {
		s.skewness = math.NaN()
		s.kurtosis = math.NaN()
	}

	if needSorted {
		sorted := make([]float32, len(vals))
		copy(sorted, vals)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		s.sorted = sorted
	}

	return s
}

// stat reads one statistic out of the summary.
func (s summary) stat(st Stat) float64 {
	switch st {
	case Count:
		return float64(s.count)
	case Sum:
		return s.sum
	case Minimum:
		return s.min
	case Maximum:
		return s.max
	case Mean:
		return s.mean
	case Variance:
		return s.variance
	case Skewness:
		return s.skewness
	case Kurtosis:
		return s.kurtosis
	case Quantile10:
		return quantile(s.sorted, 10)
	case Quantile25:
		return quantile(s.sorted, 25)
	case Quantile50:
		return quantile(s.sorted, 50)
	case Quantile75:
		return quantile(s.sorted, 75)
	case Quantile90:
		return quantile(s.sorted, 90)
	default:
		return math.NaN()
	}
}

// quantile interpolates the q-th percentile (0..100) linearly between
// the neighboring order statistics of an ascending sample.
// Complexity: O(1).
func quantile(sorted []float32, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return float64(sorted[0])
	}
	pos := q / 100 * float64(n-1)
	lo := int(pos)
	if lo+1 >= n {
		return float64(sorted[n-1])
	}
	frac := pos - float64(lo)

	return float64(sorted[lo])*(1-frac) + float64(sorted[lo+1])*frac
}

// needSorted reports whether any requested statistic is a quantile.
func needSorted(stats []Stat) bool {
	for _, st := range stats {
		if st.isQuantile() {
			return true
		}
	}

	return false
}

// validateStats rejects statistics outside the supported set.
func validateStats(stats []Stat) error {
	for _, st := range stats {
		if !st.valid() {
			return ErrUnknownFeature
		}
	}

	return nil
}

// rootN reduces x by the ndim-th root: square root in 2D, cube root in
// 3D.
func rootN(x float64, ndim int) float64 {
	switch ndim {
	case 2:
		return math.Sqrt(x)
	case 3:
		return math.Cbrt(x)
	default:
		return math.Pow(x, 1/float64(ndim))
	}
}
