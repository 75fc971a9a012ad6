package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	facetschema "github.com/facetkit/facet/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(DecisionRun))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"total_datasets",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestDatasetDecisionStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(DatasetDecision))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"run_id",
		"dataset_name",
		"source",
		"kind",
		"analysis_time",
		"data_points",
		"categories",
		"complexity",
		"visualization_type",
		"chart_type",
		"confidence",
		"has_time_series",
		"has_categories",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteDecisionRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "decision_runs.parquet")

	data := MockFetchDecisionRuns()
	require.NotEmpty(t, data, "Mock data should not be empty")

	err := WriteDecisionRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[DecisionRun](file)
	defer reader.Close()

	readData := make([]DecisionRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].RunID, readData[i].RunID, "RunID should match")
		assert.Equal(t, data[i].TotalDatasets, readData[i].TotalDatasets, "TotalDatasets should match")

		// Check nullable fields
		if data[i].EndTime == nil {
			assert.Nil(t, readData[i].EndTime, "EndTime should be nil")
		} else {
			require.NotNil(t, readData[i].EndTime, "EndTime should not be nil")
			assert.WithinDuration(t, *data[i].EndTime, *readData[i].EndTime, time.Nanosecond, "EndTime should match within nanosecond precision")
		}

		if data[i].RunDurationMs == nil {
			assert.Nil(t, readData[i].RunDurationMs, "RunDurationMs should be nil")
		} else {
			require.NotNil(t, readData[i].RunDurationMs, "RunDurationMs should not be nil")
			assert.Equal(t, *data[i].RunDurationMs, *readData[i].RunDurationMs, "RunDurationMs should match")
		}

		if data[i].ConfigParams == nil {
			assert.Nil(t, readData[i].ConfigParams, "ConfigParams should be nil")
		} else {
			require.NotNil(t, readData[i].ConfigParams, "ConfigParams should not be nil")
			assert.Equal(t, *data[i].ConfigParams, *readData[i].ConfigParams, "ConfigParams should match")
		}
	}
}

func TestWriteDatasetDecisionsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "dataset_decisions.parquet")

	data := MockFetchDatasetDecisions()
	require.NotEmpty(t, data, "Mock data should not be empty")

	err := WriteDatasetDecisionsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[DatasetDecision](file)
	defer reader.Close()

	readData := make([]DatasetDecision, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].RunID, readData[i].RunID, "RunID should match")
		assert.Equal(t, data[i].DatasetName, readData[i].DatasetName, "DatasetName should match")
		assert.Equal(t, data[i].Kind, readData[i].Kind, "Kind should match")
		assert.Equal(t, data[i].DataPoints, readData[i].DataPoints, "DataPoints should match")
		assert.Equal(t, data[i].Categories, readData[i].Categories, "Categories should match")
		assert.Equal(t, data[i].Complexity, readData[i].Complexity, "Complexity should match")
		assert.Equal(t, data[i].VisualizationType, readData[i].VisualizationType, "VisualizationType should match")
		assert.Equal(t, data[i].ChartType, readData[i].ChartType, "ChartType should match")
		assert.InDelta(t, data[i].Confidence, readData[i].Confidence, 0.001, "Confidence should match")
		assert.Equal(t, data[i].HasTimeSeries, readData[i].HasTimeSeries, "HasTimeSeries should match")
		assert.Equal(t, data[i].HasCategories, readData[i].HasCategories, "HasCategories should match")

		// Check nullable Source field
		if data[i].Source == nil {
			assert.Nil(t, readData[i].Source, "Source should be nil")
		} else {
			require.NotNil(t, readData[i].Source, "Source should not be nil")
			assert.Equal(t, *data[i].Source, *readData[i].Source, "Source should match")
		}
	}
}

func TestWriteDecisionRunsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_decision_runs.parquet")

	err := WriteDecisionRunsParquet([]DecisionRun{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteDatasetDecisionsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_dataset_decisions.parquet")

	err := WriteDatasetDecisionsParquet([]DatasetDecision{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteDecisionRunsParquet_InvalidPath(t *testing.T) {
	data := MockFetchDecisionRuns()
	err := WriteDecisionRunsParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestWriteDatasetDecisionsParquet_InvalidPath(t *testing.T) {
	data := MockFetchDatasetDecisions()
	err := WriteDatasetDecisionsParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestConvertDecisionRunRecords(t *testing.T) {
	now := time.Now()
	endTime := now.Add(1 * time.Second)
	durationMs := int32(1000)
	config := `{"data_path":"a.csv"}`

	records := []facetschema.DecisionRunRecord{
		{
			RunID:         7,
			StartTime:     now,
			EndTime:       &endTime,
			RunDurationMs: &durationMs,
			TotalDatasets: 3,
			ConfigParams:  &config,
		},
		{
			RunID:     8,
			StartTime: now,
		},
	}

	converted := ConvertDecisionRunRecords(records)
	require.Len(t, converted, 2)
	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, int32(3), converted[0].TotalDatasets)
	assert.Equal(t, &endTime, converted[0].EndTime)
	assert.Nil(t, converted[1].EndTime)
	assert.Nil(t, converted[1].ConfigParams)
}

func TestConvertDatasetDecisionRecords(t *testing.T) {
	now := time.Now()
	source := "data.csv"

	records := []facetschema.DatasetDecisionRecord{
		{
			RunID:             7,
			DatasetName:       "amount",
			Source:            &source,
			Kind:              string(facetschema.NumericKind),
			AnalysisTime:      now,
			DataPoints:        15,
			Complexity:        string(facetschema.ComplexityModerate),
			VisualizationType: string(facetschema.NumericalViz),
			ChartType:         string(facetschema.BarChart),
			Confidence:        1.0,
		},
	}

	converted := ConvertDatasetDecisionRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, "amount", converted[0].DatasetName)
	assert.Equal(t, &source, converted[0].Source)
	assert.Equal(t, int32(15), converted[0].DataPoints)
	assert.Equal(t, string(facetschema.ComplexityModerate), converted[0].Complexity)
}

func TestNullableFieldHandling(t *testing.T) {
	// Round-trip structs with various combinations of null fields
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "nullable_test.parquet")

	now := time.Now()
	endTime := now.Add(1 * time.Hour)
	durationMs := int32(3600000)
	config := `{"test":"config"}`

	testData := []DecisionRun{
		// All fields populated
		{
			RunID:         1,
			StartTime:     now,
			EndTime:       &endTime,
			RunDurationMs: &durationMs,
			TotalDatasets: 100,
			ConfigParams:  &config,
		},
		// All nullable fields are nil
		{
			RunID:         2,
			StartTime:     now,
			EndTime:       nil,
			RunDurationMs: nil,
			TotalDatasets: 0,
			ConfigParams:  nil,
		},
	}

	err := WriteDecisionRunsParquet(testData, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[DecisionRun](file)
	defer reader.Close()

	readData := make([]DecisionRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	assert.Equal(t, len(testData), n)

	assert.NotNil(t, readData[0].EndTime)
	assert.NotNil(t, readData[0].RunDurationMs)
	assert.NotNil(t, readData[0].ConfigParams)

	assert.Nil(t, readData[1].EndTime)
	assert.Nil(t, readData[1].RunDurationMs)
	assert.Nil(t, readData[1].ConfigParams)
}

func TestTimestampPrecision(t *testing.T) {
	// Timestamps should survive a round trip with nanosecond precision
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "timestamp_test.parquet")

	now := time.Now()

	testData := []DecisionRun{
		{
			RunID:         1,
			StartTime:     now,
			EndTime:       &now,
			RunDurationMs: nil,
			TotalDatasets: 0,
			ConfigParams:  nil,
		},
	}

	err := WriteDecisionRunsParquet(testData, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[DecisionRun](file)
	defer reader.Close()

	readData := make([]DecisionRun, reader.NumRows())
	_, err = reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}

	assert.WithinDuration(t, testData[0].StartTime, readData[0].StartTime, time.Nanosecond)
	assert.WithinDuration(t, *testData[0].EndTime, *readData[0].EndTime, time.Nanosecond)
}
