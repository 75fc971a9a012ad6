package engine

import (
	"math"

	"github.com/facetkit/facet/schema"
)

// isTimeSeries reports whether consecutive differences form a near-constant
// arithmetic progression over at least schema.TimeSeriesMinLength values.
// The mean step must be non-zero: a flat sequence reads as repeated
// categories, not as time passing. Non-finite values never form a series.
func isTimeSeries(values []float64) bool {
	if len(values) < schema.TimeSeriesMinLength {
		return false
	}
	meanStep := (values[len(values)-1] - values[0]) / float64(len(values)-1)
	if meanStep == 0 || math.IsNaN(meanStep) || math.IsInf(meanStep, 0) {
		return false
	}
	for i := 1; i < len(values); i++ {
		deviation := math.Abs(values[i] - values[i-1] - meanStep)
		if math.IsNaN(deviation) || deviation > schema.TimeSeriesJitterTolerance {
			return false
		}
	}
	return true
}

// hasCategoricalClustering reports whether the values collapse into few
// distinct groups: the distinct-to-total ratio is at or below
// schema.CategoricalDistinctRatioMax. A constant sequence of two or more
// values always clusters, whatever the ratio says.
func hasCategoricalClustering(values []float64) bool {
	if len(values) == 0 {
		return false
	}
	distinct := make(map[float64]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	if len(distinct) == 1 && len(values) > 1 {
		return true
	}
	ratio := float64(len(distinct)) / float64(len(values))
	return ratio <= schema.CategoricalDistinctRatioMax
}
