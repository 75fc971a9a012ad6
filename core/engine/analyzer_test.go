package engine

import (
	"fmt"
	"testing"

	"github.com/facetkit/facet/schema"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeGenericComplexityBuckets(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		complexity schema.Complexity
		confidence float64
	}{
		{"Empty", 0, schema.ComplexitySimple, 0.9},
		{"Small", 5, schema.ComplexitySimple, 0.9},
		{"Simple Upper Bound", 9, schema.ComplexitySimple, 0.9},
		{"Moderate Lower Bound", 10, schema.ComplexityModerate, 1.0},
		{"Moderate", 15, schema.ComplexityModerate, 1.0},
		{"Moderate Upper Bound", 29, schema.ComplexityModerate, 1.0},
		{"Complex Lower Bound", 30, schema.ComplexityComplex, 0.8},
		{"Complex", 50, schema.ComplexityComplex, 0.8},
		{"Complex Upper Bound", 99, schema.ComplexityComplex, 0.8},
		{"Very Complex Lower Bound", 100, schema.ComplexityVeryComplex, 0.6},
		{"Very Complex", 150, schema.ComplexityVeryComplex, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeGeneric(tt.length)

			assert.Equal(t, tt.length, result.DataPoints)
			assert.Equal(t, tt.complexity, result.Complexity)
			assert.InDelta(t, tt.confidence, result.Confidence, 1e-9)
			assert.Equal(t, schema.CategoricalViz, result.VisualizationType)
			assert.False(t, result.HasTimeSeries)
			assert.False(t, result.HasCategories)
		})
	}
}

func TestAnalyzeGenericChartConvention(t *testing.T) {
	// Bar below complex, table at complex and above. This is a convention,
	// not an invariant; the complexity buckets above are the contract.
	assert.Equal(t, schema.BarChart, AnalyzeGeneric(5).RecommendedChart)
	assert.Equal(t, schema.BarChart, AnalyzeGeneric(15).RecommendedChart)
	assert.Equal(t, schema.TableChart, AnalyzeGeneric(50).RecommendedChart)
	assert.Equal(t, schema.TableChart, AnalyzeGeneric(150).RecommendedChart)
}

func TestAnalyzeGenericNegativeLength(t *testing.T) {
	result := AnalyzeGeneric(-3)

	assert.Equal(t, 0, result.DataPoints)
	assert.Equal(t, schema.ComplexitySimple, result.Complexity)
}

func TestAnalyzeCategoricalSmall(t *testing.T) {
	result := AnalyzeCategorical(map[string]int{"A": 3, "B": 2, "C": 1})

	assert.Equal(t, 6, result.DataPoints)
	assert.Equal(t, schema.ComplexitySimple, result.Complexity)
	assert.Equal(t, schema.PieChart, result.RecommendedChart)
	assert.Equal(t, schema.CategoricalViz, result.VisualizationType)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)
	assert.True(t, result.HasCategories)
	assert.False(t, result.HasTimeSeries)
}

func TestAnalyzeCategoricalModerate(t *testing.T) {
	// Ten categories whose counts sum to 55.
	categories := make(map[string]int)
	for i := 1; i <= 10; i++ {
		categories[fmt.Sprintf("cat%02d", i)] = i
	}

	result := AnalyzeCategorical(categories)

	assert.Equal(t, 55, result.DataPoints)
	assert.Equal(t, schema.ComplexityModerate, result.Complexity)
	assert.Equal(t, schema.BarChart, result.RecommendedChart)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
}

func TestAnalyzeCategoricalComplex(t *testing.T) {
	categories := make(map[string]int)
	for i := 0; i < 25; i++ {
		categories[fmt.Sprintf("cat%02d", i)] = 2
	}

	result := AnalyzeCategorical(categories)

	assert.Equal(t, 50, result.DataPoints)
	assert.Equal(t, schema.ComplexityComplex, result.Complexity)
	assert.Equal(t, schema.TableChart, result.RecommendedChart)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
}

func TestAnalyzeCategoricalVeryComplexExtrapolation(t *testing.T) {
	// The >=50 bound is an extrapolation beyond observed behavior; this pins
	// the documented choice rather than asserting new evidence.
	categories := make(map[string]int)
	for i := 0; i < 50; i++ {
		categories[fmt.Sprintf("cat%02d", i)] = 1
	}

	result := AnalyzeCategorical(categories)

	assert.Equal(t, schema.ComplexityVeryComplex, result.Complexity)
	assert.Equal(t, schema.TableChart, result.RecommendedChart)
	assert.InDelta(t, 0.6, result.Confidence, 1e-9)
}

func TestAnalyzeCategoricalBoundaries(t *testing.T) {
	build := func(n int) map[string]int {
		categories := make(map[string]int)
		for i := 0; i < n; i++ {
			categories[fmt.Sprintf("cat%02d", i)] = 1
		}
		return categories
	}

	assert.Equal(t, schema.ComplexitySimple, AnalyzeCategorical(build(4)).Complexity)
	assert.Equal(t, schema.ComplexityModerate, AnalyzeCategorical(build(5)).Complexity)
	assert.Equal(t, schema.ComplexityModerate, AnalyzeCategorical(build(19)).Complexity)
	assert.Equal(t, schema.ComplexityComplex, AnalyzeCategorical(build(20)).Complexity)
	assert.Equal(t, schema.ComplexityComplex, AnalyzeCategorical(build(49)).Complexity)
}

func TestAnalyzeCategoricalComplexityIgnoresDataPoints(t *testing.T) {
	// Five categories with huge counts stay simple: complexity follows the
	// distinct category count, not the summed data points.
	result := AnalyzeCategorical(map[string]int{"a": 100, "b": 100, "c": 100, "d": 100})

	assert.Equal(t, 400, result.DataPoints)
	assert.Equal(t, schema.ComplexitySimple, result.Complexity)
	assert.Equal(t, schema.PieChart, result.RecommendedChart)
}

func TestAnalyzeCategoricalEmpty(t *testing.T) {
	result := AnalyzeCategorical(map[string]int{})

	assert.Equal(t, 0, result.DataPoints)
	assert.Equal(t, schema.ComplexitySimple, result.Complexity)
	assert.Equal(t, schema.CategoricalViz, result.VisualizationType)
	assert.True(t, result.HasCategories)
}

func TestAnalyzeNumericalTimeSeries(t *testing.T) {
	// Arithmetic progression of length ten.
	values := []float64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}

	result := AnalyzeNumerical(values)

	assert.Equal(t, 10, result.DataPoints)
	assert.True(t, result.HasTimeSeries)
	assert.Equal(t, schema.TemporalViz, result.VisualizationType)
	assert.Equal(t, schema.LineChart, result.RecommendedChart)
	assert.Equal(t, schema.ComplexityModerate, result.Complexity)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
	assert.False(t, result.HasCategories)
}

func TestAnalyzeNumericalTimeSeriesDescending(t *testing.T) {
	values := []float64{20, 18, 16, 14, 12, 10, 8, 6, 4, 2}

	result := AnalyzeNumerical(values)

	assert.True(t, result.HasTimeSeries)
	assert.Equal(t, schema.LineChart, result.RecommendedChart)
}

func TestAnalyzeNumericalTimeSeriesTooShort(t *testing.T) {
	// Nine points is one short of the detector's minimum run.
	values := []float64{2, 4, 6, 8, 10, 12, 14, 16, 18}

	result := AnalyzeNumerical(values)

	assert.False(t, result.HasTimeSeries)
	assert.Equal(t, schema.NumericalViz, result.VisualizationType)
	assert.Equal(t, schema.BarChart, result.RecommendedChart)
}

func TestAnalyzeNumericalTimeSeriesWithJitter(t *testing.T) {
	// One value pushed five off the progression stays within tolerance.
	within := []float64{0, 2, 4, 6, 8, 15, 12, 14, 16, 18}
	assert.True(t, AnalyzeNumerical(within).HasTimeSeries)

	// Pushed six off, the progression breaks.
	beyond := []float64{0, 2, 4, 6, 8, 16, 12, 14, 16, 18}
	assert.False(t, AnalyzeNumerical(beyond).HasTimeSeries)
}

func TestAnalyzeNumericalCategoricalClustering(t *testing.T) {
	// Two distinct values across ten points, far outside any progression.
	values := []float64{10, 90, 10, 90, 10, 90, 10, 90, 10, 90}

	result := AnalyzeNumerical(values)

	assert.True(t, result.HasCategories)
	assert.False(t, result.HasTimeSeries)
	assert.Equal(t, schema.NumericalViz, result.VisualizationType)
	assert.Equal(t, schema.BarChart, result.RecommendedChart)
}

func TestAnalyzeNumericalClusteringRatioBoundary(t *testing.T) {
	// Four distinct of ten values sits exactly on the 40% boundary.
	atBoundary := []float64{100, 300, 100, 200, 400, 200, 300, 100, 400, 200}
	assert.True(t, AnalyzeNumerical(atBoundary).HasCategories)

	// Five distinct of ten values is past it.
	pastBoundary := []float64{100, 300, 500, 200, 400, 100, 300, 500, 200, 400}
	result := AnalyzeNumerical(pastBoundary)
	assert.False(t, result.HasCategories)
	assert.False(t, result.HasTimeSeries)
}

func TestAnalyzeNumericalAllIdentical(t *testing.T) {
	// A flat sequence is repeated categories, never a time series, even past
	// the detector's minimum run.
	short := []float64{7, 7, 7}
	result := AnalyzeNumerical(short)
	assert.True(t, result.HasCategories)
	assert.False(t, result.HasTimeSeries)

	long := []float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	result = AnalyzeNumerical(long)
	assert.True(t, result.HasCategories)
	assert.False(t, result.HasTimeSeries)
	assert.Equal(t, schema.NumericalViz, result.VisualizationType)
	assert.Equal(t, schema.ComplexityModerate, result.Complexity)
}

func TestAnalyzeNumericalTimeSeriesWinsOverClustering(t *testing.T) {
	// Clustered values that also climb in a near-constant progression: the
	// time-series reading wins and the category flag stays off.
	values := []float64{1, 1, 1, 2, 2, 2, 3, 3, 3, 4}

	result := AnalyzeNumerical(values)

	assert.True(t, result.HasTimeSeries)
	assert.False(t, result.HasCategories)
	assert.Equal(t, schema.TemporalViz, result.VisualizationType)
	assert.Equal(t, schema.LineChart, result.RecommendedChart)
}

func TestAnalyzeNumericalEmpty(t *testing.T) {
	result := AnalyzeNumerical(nil)

	assert.Equal(t, 0, result.DataPoints)
	assert.Equal(t, schema.ComplexitySimple, result.Complexity)
	assert.Equal(t, schema.NumericalViz, result.VisualizationType)
	assert.Equal(t, schema.BarChart, result.RecommendedChart)
	assert.False(t, result.HasTimeSeries)
	assert.False(t, result.HasCategories)
}

func TestAnalyzeNumericalSingleValue(t *testing.T) {
	result := AnalyzeNumerical([]float64{42})

	assert.Equal(t, 1, result.DataPoints)
	assert.False(t, result.HasCategories)
	assert.False(t, result.HasTimeSeries)
}

func TestConfidenceIndependentOfEntryPoint(t *testing.T) {
	// All three entry points land in moderate and must report the same
	// confidence: it is a function of complexity alone.
	generic := AnalyzeGeneric(15)

	values := make([]float64, 15)
	for i := range values {
		values[i] = float64((i * 37) % 11 * 100)
	}
	numerical := AnalyzeNumerical(values)

	categories := make(map[string]int)
	for i := 0; i < 7; i++ {
		categories[fmt.Sprintf("cat%d", i)] = 3
	}
	categorical := AnalyzeCategorical(categories)

	assert.Equal(t, schema.ComplexityModerate, generic.Complexity)
	assert.Equal(t, schema.ComplexityModerate, numerical.Complexity)
	assert.Equal(t, schema.ComplexityModerate, categorical.Complexity)
	assert.InDelta(t, 1.0, generic.Confidence, 1e-9)
	assert.InDelta(t, generic.Confidence, numerical.Confidence, 1e-9)
	assert.InDelta(t, generic.Confidence, categorical.Confidence, 1e-9)
}

func TestAnalyzeDatasetDispatch(t *testing.T) {
	counted := schema.CountedDataset(15)
	assert.Equal(t, AnalyzeGeneric(15), AnalyzeDataset(counted))

	values := []float64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}
	numeric := schema.NumericDataset(values)
	assert.Equal(t, AnalyzeNumerical(values), AnalyzeDataset(numeric))

	categories := map[string]int{"A": 3, "B": 2, "C": 1}
	categorical := schema.CategoricalDataset(categories)
	assert.Equal(t, AnalyzeCategorical(categories), AnalyzeDataset(categorical))
}

func TestAnalyzeDeterminism(t *testing.T) {
	values := []float64{10, 90, 10, 90, 10, 90, 10, 90, 10, 90}
	first := AnalyzeNumerical(values)
	second := AnalyzeNumerical(values)
	assert.Equal(t, first, second)

	categories := map[string]int{"A": 3, "B": 2, "C": 1}
	assert.Equal(t, AnalyzeCategorical(categories), AnalyzeCategorical(categories))
}

func BenchmarkAnalyzeNumerical(b *testing.B) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = float64(i % 17)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AnalyzeNumerical(values)
	}
}

func BenchmarkAnalyzeCategorical(b *testing.B) {
	categories := make(map[string]int)
	for i := 0; i < 100; i++ {
		categories[fmt.Sprintf("cat%03d", i)] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AnalyzeCategorical(categories)
	}
}
