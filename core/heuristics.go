package core

import (
	"fmt"

	"github.com/facetkit/facet/schema"
)

// BuildHeuristicsModel assembles the display model for the engine's formal
// definitions: one bucket per complexity level plus the pattern detectors.
// The model is derived from the engine constants, so the display can never
// drift from the behavior.
func BuildHeuristicsModel() *schema.HeuristicsRenderModel {
	generic := schema.GetGenericThresholds()
	categorical := schema.GetCategoricalThresholds()

	buckets := make([]schema.HeuristicBucket, 0, len(schema.AllComplexities))
	for _, c := range schema.AllComplexities {
		buckets = append(buckets, schema.HeuristicBucket{
			Complexity:       c,
			GenericRange:     thresholdRange(c, generic),
			CategoricalRange: thresholdRange(c, categorical),
			Confidence:       schema.GetConfidence(c),
			FallbackChart:    schema.GetFallbackChart(c),
			CategoricalChart: schema.GetCategoricalChart(c),
		})
	}

	detectors := []schema.HeuristicDetector{
		{
			Name:   "timeSeries",
			Signal: "evenly spaced numeric sequence",
			Parameters: []string{
				fmt.Sprintf("minPoints=%d", schema.TimeSeriesMinLength),
				fmt.Sprintf("jitter=%.1f", schema.TimeSeriesJitterTolerance),
			},
			Effect: "recommends a line chart",
		},
		{
			Name:   "categoricalClustering",
			Signal: "numeric values cluster into few distinct groups",
			Parameters: []string{
				fmt.Sprintf("maxDistinctRatio=%.2f", schema.CategoricalDistinctRatioMax),
			},
			Effect: "marks the dataset as category-like",
		},
	}

	return &schema.HeuristicsRenderModel{
		Title:       "Facet Decision Heuristics",
		Description: "Thresholds and detectors used by the analyzer.",
		Buckets:     buckets,
		Detectors:   detectors,
		Notes: map[string]string{
			"bounds":     "Bucket bounds are inclusive on the lower edge.",
			"clustering": "Clustering compares distinct values against total values.",
			"confidence": "Confidence is a function of complexity alone.",
		},
	}
}

// thresholdRange renders the half-open size range of one complexity bucket.
func thresholdRange(c schema.Complexity, t schema.ComplexityThresholds) string {
	switch c {
	case schema.ComplexitySimple:
		return fmt.Sprintf("<%d", t.Moderate)
	case schema.ComplexityModerate:
		return fmt.Sprintf("%d-%d", t.Moderate, t.Complex-1)
	case schema.ComplexityComplex:
		return fmt.Sprintf("%d-%d", t.Complex, t.VeryComplex-1)
	default:
		return fmt.Sprintf(">=%d", t.VeryComplex)
	}
}
