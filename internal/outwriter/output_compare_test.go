package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparison() schema.ComparisonResult {
	return schema.ComparisonResult{
		Details: []schema.ComparisonDetail{
			{
				Name:   "revenue",
				Status: schema.ActiveStatus,
				Before: &schema.AnalysisResult{
					DataPoints:       30,
					Complexity:       schema.ComplexityComplex,
					RecommendedChart: schema.BarChart,
					Confidence:       0.8,
				},
				After: &schema.AnalysisResult{
					DataPoints:       45,
					Complexity:       schema.ComplexityComplex,
					RecommendedChart: schema.LineChart,
					Confidence:       0.8,
					HasTimeSeries:    true,
				},
				DeltaDataPoints: 15,
				ChartChanged:    true,
			},
			{
				Name:   "regions",
				Status: schema.NewStatus,
				After: &schema.AnalysisResult{
					DataPoints:       12,
					Complexity:       schema.ComplexityModerate,
					RecommendedChart: schema.BarChart,
					Confidence:       1.0,
				},
				DeltaDataPoints: 12,
			},
		},
		Summary: schema.ComparisonSummary{
			NetDataPointsDelta:  15,
			NetConfidenceDelta:  0.0,
			TotalNewDatasets:    1,
			TotalActiveDatasets: 1,
			TotalChartChanges:   1,
		},
	}
}

func TestWriteComparisonTable(t *testing.T) {
	result := sampleComparison()

	cfg := &contract.Config{
		Output:    schema.TextOut,
		Precision: 2,
		Workers:   2,
		Width:     160,
		Detail:    true,
	}

	var buf bytes.Buffer
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	err := writeComparisonTable(result, cfg, fmtFloat, intFmt, 80*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "revenue")
	assert.Contains(t, output, "regions")
	assert.Contains(t, output, "+15 ▲")
	assert.Contains(t, output, "active")
	assert.Contains(t, output, "new")
	assert.Contains(t, output, "Showing top 2 changes")
	assert.Contains(t, output, "Net data-point delta: 15, Net confidence delta: 0.00")
	assert.Contains(t, output, "New datasets: 1, Inactive datasets: 0, Active datasets: 1, Chart changes: 1")
	assert.Contains(t, output, "Comparison completed in 80ms with 2 workers.")
}

func TestWriteComparisonTableShrinkingDataset(t *testing.T) {
	result := schema.ComparisonResult{
		Details: []schema.ComparisonDetail{
			{
				Name:            "errors",
				Status:          schema.ActiveStatus,
				Before:          &schema.AnalysisResult{DataPoints: 50, RecommendedChart: schema.BarChart, Confidence: 0.8},
				After:           &schema.AnalysisResult{DataPoints: 20, RecommendedChart: schema.BarChart, Confidence: 1.0},
				DeltaDataPoints: -30,
				DeltaConfidence: 0.2,
			},
		},
	}

	cfg := &contract.Config{Output: schema.TextOut, Precision: 2, Workers: 1, Width: 160}

	var buf bytes.Buffer
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	err := writeComparisonTable(result, cfg, fmtFloat, intFmt, time.Millisecond, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "-30 ▼")
}

func TestWriteCSVResultsForComparison(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	result := sampleComparison()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForComparison(w, result, fmtFloat, intFmt)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Equal(t, "rank,dataset,status,before_points,after_points,delta_points,before_confidence,after_confidence,delta_confidence,before_chart,after_chart,chart_changed,complexity_moved", lines[0])
	assert.Equal(t, "1,revenue,active,30,45,15,0.80,0.80,0.00,bar,line,true,false", lines[1])

	// New dataset leaves the before side empty
	assert.Equal(t, "2,regions,new,,12,12,,1.00,0.00,,bar,false,false", lines[2])
}

func TestPrintComparisonResultsJSON(t *testing.T) {
	result := sampleComparison()

	cfg := &contract.Config{
		Output:     schema.JSONOut,
		OutputFile: filepath.Join(t.TempDir(), "compare.json"),
		Precision:  2,
	}

	err := PrintComparisonResults(result, cfg, time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var parsed map[string]any
	err = json.Unmarshal(content, &parsed)
	require.NoError(t, err)

	details, ok := parsed["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 2)

	first, ok := details[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "revenue", first["name"])
	assert.Equal(t, true, first["chart_changed"])

	summary, ok := parsed["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(15), summary["net_data_points_delta"])
}

func TestFormatResultPoints(t *testing.T) {
	r := &schema.AnalysisResult{DataPoints: 42}
	assert.Equal(t, "42", formatResultPoints(r, "%d", "-"))
	assert.Equal(t, "-", formatResultPoints(nil, "%d", "-"))
	assert.Equal(t, "", formatResultPoints(nil, "%d", ""))
}

func TestFormatChartTransition(t *testing.T) {
	tests := []struct {
		name     string
		detail   schema.ComparisonDetail
		expected string
	}{
		{
			name:     "both sides missing",
			detail:   schema.ComparisonDetail{},
			expected: "-",
		},
		{
			name: "new dataset shows target chart",
			detail: schema.ComparisonDetail{
				After: &schema.AnalysisResult{RecommendedChart: schema.PieChart},
			},
			expected: "pie",
		},
		{
			name: "inactive dataset shows base chart",
			detail: schema.ComparisonDetail{
				Before: &schema.AnalysisResult{RecommendedChart: schema.BarChart},
			},
			expected: "bar",
		},
		{
			name: "changed chart shows the transition",
			detail: schema.ComparisonDetail{
				Before:       &schema.AnalysisResult{RecommendedChart: schema.BarChart},
				After:        &schema.AnalysisResult{RecommendedChart: schema.LineChart},
				ChartChanged: true,
			},
			expected: "bar → line",
		},
		{
			name: "stable chart shows a single kind",
			detail: schema.ComparisonDetail{
				Before: &schema.AnalysisResult{RecommendedChart: schema.BarChart},
				After:  &schema.AnalysisResult{RecommendedChart: schema.BarChart},
			},
			expected: "bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatChartTransition(tt.detail))
		})
	}
}
