package core

import (
	"testing"

	"github.com/facetkit/facet/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decisionWith(name string, points int, confidence float64, chart schema.ChartType, complexity schema.Complexity) schema.DatasetDecision {
	return schema.DatasetDecision{
		Name: name,
		Result: schema.AnalysisResult{
			DataPoints:       points,
			Confidence:       confidence,
			RecommendedChart: chart,
			Complexity:       complexity,
		},
	}
}

func TestCompareDecisions_StatusClassification(t *testing.T) {
	base := []schema.DatasetDecision{
		decisionWith("stable", 10, 0.9, schema.BarChart, schema.ComplexitySimple),
		decisionWith("grew", 10, 1.0, schema.BarChart, schema.ComplexityModerate),
		decisionWith("gone", 7, 0.9, schema.PieChart, schema.ComplexitySimple),
	}
	target := []schema.DatasetDecision{
		decisionWith("stable", 10, 0.9, schema.BarChart, schema.ComplexitySimple),
		decisionWith("grew", 40, 0.8, schema.TableChart, schema.ComplexityComplex),
		decisionWith("fresh", 12, 1.0, schema.LineChart, schema.ComplexityModerate),
	}

	result := compareDecisions(base, target, 10)

	// The unchanged dataset is summarized but not listed
	require.Len(t, result.Details, 3)

	byName := make(map[string]schema.ComparisonDetail)
	for _, d := range result.Details {
		byName[d.Name] = d
	}
	_, hasStable := byName["stable"]
	assert.False(t, hasStable)

	// Dataset present in both snapshots with every dimension moved
	grew := byName["grew"]
	assert.Equal(t, schema.ActiveStatus, grew.Status)
	require.NotNil(t, grew.Before)
	require.NotNil(t, grew.After)
	assert.Equal(t, 10, grew.Before.DataPoints)
	assert.Equal(t, 40, grew.After.DataPoints)
	assert.Equal(t, 30, grew.DeltaDataPoints)
	assert.InDelta(t, -0.2, grew.DeltaConfidence, 1e-9)
	assert.True(t, grew.ChartChanged)
	assert.True(t, grew.ComplexityMoved)

	// Dataset only in base carries its full size as shrinkage
	gone := byName["gone"]
	assert.Equal(t, schema.InactiveStatus, gone.Status)
	require.NotNil(t, gone.Before)
	assert.Nil(t, gone.After)
	assert.Equal(t, -7, gone.DeltaDataPoints)
	assert.InDelta(t, -0.9, gone.DeltaConfidence, 1e-9)
	assert.False(t, gone.ChartChanged)

	// Dataset only in target carries its full size as growth
	fresh := byName["fresh"]
	assert.Equal(t, schema.NewStatus, fresh.Status)
	assert.Nil(t, fresh.Before)
	require.NotNil(t, fresh.After)
	assert.Equal(t, 12, fresh.DeltaDataPoints)
	assert.InDelta(t, 1.0, fresh.DeltaConfidence, 1e-9)

	// Net deltas only cover datasets present in both snapshots
	assert.Equal(t, 30, result.Summary.NetDataPointsDelta)
	assert.InDelta(t, -0.2, result.Summary.NetConfidenceDelta, 1e-9)
	assert.Equal(t, 1, result.Summary.TotalNewDatasets)
	assert.Equal(t, 1, result.Summary.TotalInactiveDatasets)
	assert.Equal(t, 2, result.Summary.TotalActiveDatasets)
	assert.Equal(t, 1, result.Summary.TotalChartChanges)
}

func TestCompareDecisions_SortAndLimit(t *testing.T) {
	base := []schema.DatasetDecision{
		decisionWith("shrank", 20, 0.9, schema.BarChart, schema.ComplexityModerate),
		decisionWith("grewSame", 10, 0.9, schema.BarChart, schema.ComplexitySimple),
	}
	target := []schema.DatasetDecision{
		decisionWith("shrank", 0, 0.9, schema.BarChart, schema.ComplexityModerate),
		decisionWith("grewSame", 30, 0.9, schema.BarChart, schema.ComplexitySimple),
		decisionWith("alpha", 20, 0.9, schema.BarChart, schema.ComplexityModerate),
		decisionWith("beta", 20, 0.9, schema.BarChart, schema.ComplexityModerate),
	}

	result := compareDecisions(base, target, 10)
	require.Len(t, result.Details, 4)

	// |delta| ties break growth first, then name
	assert.Equal(t, "alpha", result.Details[0].Name)    // +20 (new)
	assert.Equal(t, "beta", result.Details[1].Name)     // +20 (new)
	assert.Equal(t, "grewSame", result.Details[2].Name) // +20
	assert.Equal(t, "shrank", result.Details[3].Name)   // -20

	limited := compareDecisions(base, target, 2)
	require.Len(t, limited.Details, 2)
	assert.Equal(t, "alpha", limited.Details[0].Name)

	// The summary still covers everything beyond the limit
	assert.Equal(t, 2, limited.Summary.TotalNewDatasets)
	assert.Equal(t, 2, limited.Summary.TotalActiveDatasets)
}

func TestCompareDecisions_Empty(t *testing.T) {
	result := compareDecisions(nil, nil, 10)

	assert.Empty(t, result.Details)
	assert.Equal(t, schema.ComparisonSummary{}, result.Summary)
}

func TestDetailChanged(t *testing.T) {
	assert.False(t, detailChanged(schema.ComparisonDetail{}))
	assert.True(t, detailChanged(schema.ComparisonDetail{DeltaDataPoints: 1}))
	assert.True(t, detailChanged(schema.ComparisonDetail{DeltaConfidence: 0.1}))
	assert.True(t, detailChanged(schema.ComparisonDetail{ChartChanged: true}))
	assert.True(t, detailChanged(schema.ComparisonDetail{ComplexityMoved: true}))
}

func TestDetermineStatus(t *testing.T) {
	tests := []struct {
		name         string
		baseExists   bool
		targetExists bool
		expected     schema.Status
	}{
		{"new dataset", false, true, schema.NewStatus},
		{"active dataset", true, true, schema.ActiveStatus},
		{"inactive dataset", true, false, schema.InactiveStatus},
		{"unknown case", false, false, schema.UnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := determineStatus(tt.baseExists, tt.targetExists)
			assert.Equal(t, tt.expected, result)
		})
	}
}
