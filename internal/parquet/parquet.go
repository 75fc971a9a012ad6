// Package parquet provides data structures and functions for exporting facet
// decision history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/facetkit/facet/schema"
	"github.com/parquet-go/parquet-go"
)

// DecisionRun represents a single analysis run with metadata.
// This struct maps to the facet_decision_runs database table.
type DecisionRun struct {
	// RunID is the unique identifier for this decision run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalDatasets is the number of datasets decided in this run
	TotalDatasets int32 `parquet:"total_datasets,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// DatasetDecision represents one presentation decision made during a run.
// This struct maps to the facet_dataset_decisions database table.
type DatasetDecision struct {
	// RunID references the parent decision run
	RunID int64 `parquet:"run_id,snappy"`

	// DatasetName is the name the dataset was loaded under
	DatasetName string `parquet:"dataset_name,snappy"`

	// Source is the data file the dataset came from (nullable)
	Source *string `parquet:"source,optional,snappy"`

	// Kind is the dataset shape: counted, numeric or categorical
	Kind string `parquet:"kind,snappy"`

	// AnalysisTime is when this decision was made
	AnalysisTime time.Time `parquet:"analysis_time,snappy"`

	// DataPoints is the dataset size measure the complexity bucket was derived from
	DataPoints int32 `parquet:"data_points,snappy"`

	// Categories is the distinct category count for categorical datasets
	Categories int32 `parquet:"categories,snappy"`

	// Complexity is the size-driven bucket: simple through veryComplex
	Complexity string `parquet:"complexity,snappy"`

	// VisualizationType is the inferred shape of the data
	VisualizationType string `parquet:"visualization_type,snappy"`

	// ChartType is the chart kind that was recommended
	ChartType string `parquet:"chart_type,snappy"`

	// Confidence is the 0-1 recommendation confidence
	Confidence float64 `parquet:"confidence,snappy"`

	// HasTimeSeries reports whether the time-series detector fired
	HasTimeSeries bool `parquet:"has_time_series,snappy"`

	// HasCategories reports whether the clustering detector fired
	HasCategories bool `parquet:"has_categories,snappy"`
}

// WriteDecisionRunsParquet writes a slice of DecisionRun structs to a Parquet file.
func WriteDecisionRunsParquet(data []DecisionRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the DecisionRun struct tags
	writer := parquet.NewGenericWriter[DecisionRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteDatasetDecisionsParquet writes a slice of DatasetDecision structs to a Parquet file.
func WriteDatasetDecisionsParquet(data []DatasetDecision, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the DatasetDecision struct tags
	writer := parquet.NewGenericWriter[DatasetDecision](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchDecisionRuns generates sample DecisionRun data for demonstration.
func MockFetchDecisionRuns() []DecisionRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(400 * time.Millisecond)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"data_path":"sales.csv","limit":25,"no_cache":false}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := startTime2.Add(2 * time.Second)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"data_path":"metrics.json","limit":50,"no_cache":true}`

	startTime3 := now.Add(-10 * time.Minute)
	// The third run is still open: nullable fields stay nil

	return []DecisionRun{
		{
			RunID:         1,
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			TotalDatasets: 12,
			ConfigParams:  &configParams1,
		},
		{
			RunID:         2,
			StartTime:     startTime2,
			EndTime:       &endTime2,
			RunDurationMs: &durationMs2,
			TotalDatasets: 4,
			ConfigParams:  &configParams2,
		},
		{
			RunID:         3,
			StartTime:     startTime3,
			EndTime:       nil,
			RunDurationMs: nil,
			TotalDatasets: 0,
			ConfigParams:  nil,
		},
	}
}

// MockFetchDatasetDecisions generates sample DatasetDecision data for demonstration.
func MockFetchDatasetDecisions() []DatasetDecision {
	now := time.Now()
	source1 := "sales.csv"
	source2 := "metrics.json"

	return []DatasetDecision{
		{
			RunID:             1,
			DatasetName:       "revenue",
			Source:            &source1,
			Kind:              string(schema.NumericKind),
			AnalysisTime:      now.Add(-2 * time.Hour),
			DataPoints:        48,
			Categories:        0,
			Complexity:        string(schema.ComplexityComplex),
			VisualizationType: string(schema.TemporalViz),
			ChartType:         string(schema.LineChart),
			Confidence:        0.8,
			HasTimeSeries:     true,
			HasCategories:     false,
		},
		{
			RunID:             1,
			DatasetName:       "region",
			Source:            &source1,
			Kind:              string(schema.CategoricalKind),
			AnalysisTime:      now.Add(-2 * time.Hour),
			DataPoints:        48,
			Categories:        4,
			Complexity:        string(schema.ComplexitySimple),
			VisualizationType: string(schema.CategoricalViz),
			ChartType:         string(schema.PieChart),
			Confidence:        0.9,
			HasTimeSeries:     false,
			HasCategories:     true,
		},
		{
			RunID:             2,
			DatasetName:       "latency_ms",
			Source:            &source2,
			Kind:              string(schema.NumericKind),
			AnalysisTime:      now.Add(-24 * time.Hour),
			DataPoints:        7,
			Categories:        0,
			Complexity:        string(schema.ComplexitySimple),
			VisualizationType: string(schema.NumericalViz),
			ChartType:         string(schema.BarChart),
			Confidence:        0.9,
			HasTimeSeries:     false,
			HasCategories:     false,
		},
	}
}

// ConvertDecisionRunRecords converts schema.DecisionRunRecord to DecisionRun for Parquet export.
func ConvertDecisionRunRecords(records []schema.DecisionRunRecord) []DecisionRun {
	result := make([]DecisionRun, len(records))
	for i, record := range records {
		result[i] = DecisionRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalDatasets: record.TotalDatasets,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertDatasetDecisionRecords converts schema.DatasetDecisionRecord to DatasetDecision for Parquet export.
func ConvertDatasetDecisionRecords(records []schema.DatasetDecisionRecord) []DatasetDecision {
	result := make([]DatasetDecision, len(records))
	for i, record := range records {
		result[i] = DatasetDecision{
			RunID:             record.RunID,
			DatasetName:       record.DatasetName,
			Source:            record.Source,
			Kind:              record.Kind,
			AnalysisTime:      record.AnalysisTime,
			DataPoints:        record.DataPoints,
			Categories:        record.Categories,
			Complexity:        record.Complexity,
			VisualizationType: record.VisualizationType,
			ChartType:         record.ChartType,
			Confidence:        record.Confidence,
			HasTimeSeries:     record.HasTimeSeries,
			HasCategories:     record.HasCategories,
		}
	}
	return result
}
