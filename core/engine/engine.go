// Package engine implements the presentation decision engine: deterministic
// classification of dataset characteristics and deterministic field-order
// resolution. Every function here is pure, with no I/O and no shared state,
// so calls are safe from any number of goroutines without coordination.
package engine

import "github.com/facetkit/facet/schema"

// AnalyzeDataset classifies a dataset of any shape. It dispatches on the
// dataset kind so the bucketing logic exists exactly once, parameterized by
// threshold table.
func AnalyzeDataset(ds schema.Dataset) schema.AnalysisResult {
	switch ds.Kind {
	case schema.NumericKind:
		return AnalyzeNumerical(ds.Values)
	case schema.CategoricalKind:
		return AnalyzeCategorical(ds.Categories)
	default: // schema.CountedKind
		return AnalyzeGeneric(ds.Count)
	}
}

// bucketComplexity maps a size measure onto a complexity bucket using the
// given threshold set. Measures below the moderate bound are simple.
func bucketComplexity(measure int, t schema.ComplexityThresholds) schema.Complexity {
	switch {
	case measure >= t.VeryComplex:
		return schema.ComplexityVeryComplex
	case measure >= t.Complex:
		return schema.ComplexityComplex
	case measure >= t.Moderate:
		return schema.ComplexityModerate
	default:
		return schema.ComplexitySimple
	}
}
