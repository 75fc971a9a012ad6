package engine

import "github.com/facetkit/facet/schema"

// AnalyzeGeneric classifies a dataset whose only observable property is its
// item count. Generic sequences have no numeric shape, so the visualization
// type is categorical and the chart recommendation falls back to the
// size-driven convention: bar below complex, table at complex and above.
func AnalyzeGeneric(length int) schema.AnalysisResult {
	if length < 0 {
		length = 0
	}
	complexity := bucketComplexity(length, schema.GetGenericThresholds())
	return schema.AnalysisResult{
		DataPoints:        length,
		Complexity:        complexity,
		VisualizationType: schema.CategoricalViz,
		RecommendedChart:  schema.GetFallbackChart(complexity),
		Confidence:        schema.GetConfidence(complexity),
	}
}

// AnalyzeNumerical classifies an ordered sequence of real numbers.
// Complexity uses the generic thresholds on the value count. Two pattern
// detectors influence the shape fields: a time-series-like sequence becomes
// temporal with a line chart, and a sequence whose values cluster into few
// distinct groups keeps the numerical type but flags categories. Time series
// wins when both patterns are present.
func AnalyzeNumerical(values []float64) schema.AnalysisResult {
	complexity := bucketComplexity(len(values), schema.GetGenericThresholds())
	result := schema.AnalysisResult{
		DataPoints:        len(values),
		Complexity:        complexity,
		VisualizationType: schema.NumericalViz,
		RecommendedChart:  schema.BarChart,
		Confidence:        schema.GetConfidence(complexity),
	}

	if isTimeSeries(values) {
		result.HasTimeSeries = true
		result.VisualizationType = schema.TemporalViz
		result.RecommendedChart = schema.LineChart
		return result
	}
	if hasCategoricalClustering(values) {
		result.HasCategories = true
	}
	return result
}

// AnalyzeCategorical classifies a category label to count mapping. Data
// points are the sum of all counts, but complexity comes from the number of
// distinct categories: a pie while they fit a legend, a bar while they fit an
// axis, a table beyond that.
func AnalyzeCategorical(categories map[string]int) schema.AnalysisResult {
	dataPoints := 0
	for _, count := range categories {
		dataPoints += count
	}
	complexity := bucketComplexity(len(categories), schema.GetCategoricalThresholds())
	return schema.AnalysisResult{
		DataPoints:        dataPoints,
		Complexity:        complexity,
		VisualizationType: schema.CategoricalViz,
		RecommendedChart:  schema.GetCategoricalChart(complexity),
		Confidence:        schema.GetConfidence(complexity),
		HasCategories:     true,
	}
}
