package core

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/internal/iocache"
	"github.com/facetkit/facet/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetFacetAnalyzeResults tests the main analysis entry point against a
// real data file.
func TestGetFacetAnalyzeResults(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	dataPath := writeDataFile(t, "sales.csv", "big,small\n1,x\n2,y\n3,\n4,\n5,\n")

	mockMgr := &iocache.MockCacheManager{}
	mockMgr.On("GetDatasetStore").Return(nil)
	mockMgr.On("GetDecisionStore").Return(nil)

	cfg := &contract.Config{
		DataPath:    dataPath,
		Workers:     2,
		ResultLimit: 10,
	}

	output, duration, err := GetFacetAnalyzeResults(ctx, cfg, mockMgr)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Positive(t, duration)

	// Ranked by data points, largest first
	require.Len(t, output.Decisions, 2)
	assert.Equal(t, "big", output.Decisions[0].Name)
	assert.Equal(t, 5, output.Decisions[0].Result.DataPoints)
	assert.Equal(t, "small", output.Decisions[1].Name)
	assert.Equal(t, 2, output.Decisions[1].Result.DataPoints)

	mockMgr.AssertExpectations(t)
}

// TestGetFacetAnalyzeResults_LimitApplies tests result limit truncation.
func TestGetFacetAnalyzeResults_LimitApplies(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	dataPath := writeDataFile(t, "sales.csv", "big,small\n1,x\n2,y\n3,\n4,\n5,\n")

	mockMgr := &iocache.MockCacheManager{}
	mockMgr.On("GetDatasetStore").Return(nil)
	mockMgr.On("GetDecisionStore").Return(nil)

	cfg := &contract.Config{
		DataPath:    dataPath,
		Workers:     1,
		ResultLimit: 1,
	}

	output, _, err := GetFacetAnalyzeResults(ctx, cfg, mockMgr)

	require.NoError(t, err)
	require.Len(t, output.Decisions, 1)
	assert.Equal(t, "big", output.Decisions[0].Name)
}

// TestExecuteFacetAnalyze tests the printing entry point for the 'analyze' command.
func TestExecuteFacetAnalyze(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	dataPath := writeDataFile(t, "sales.csv", "value\n1\n2\n3\n")

	mockMgr := &iocache.MockCacheManager{}
	mockMgr.On("GetDatasetStore").Return(nil)
	mockMgr.On("GetDecisionStore").Return(nil)

	cfg := &contract.Config{
		DataPath:    dataPath,
		Workers:     1,
		ResultLimit: 10,
		Output:      schema.TextOut,
		OutputFile:  filepath.Join(t.TempDir(), "out.txt"),
	}

	err := ExecuteFacetAnalyze(ctx, cfg, mockMgr)

	assert.NoError(t, err)
	assert.FileExists(t, cfg.OutputFile)
}

// TestExecuteFacetAnalyze_Error tests failure on a missing data file.
func TestExecuteFacetAnalyze_Error(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())

	mockMgr := &iocache.MockCacheManager{}
	mockMgr.On("GetDatasetStore").Return(nil)
	mockMgr.On("GetDecisionStore").Return(nil)

	cfg := &contract.Config{
		DataPath: filepath.Join(t.TempDir(), "absent.csv"),
		Workers:  1,
	}

	err := ExecuteFacetAnalyze(ctx, cfg, mockMgr)

	assert.Error(t, err)
}

// TestGetFacetFieldsResults tests field-order resolution with a hints file.
func TestGetFacetFieldsResults(t *testing.T) {
	hintsPath := writeDataFile(t, "hints.yaml", `groups:
  - id: identity
    fields:
      - id
      - name
`)

	cfg := &contract.Config{
		Fields:    []string{"total", "id", "name"},
		HintsPath: hintsPath,
	}

	decision, duration, err := GetFacetFieldsResults(context.Background(), cfg, &iocache.MockCacheManager{})

	require.NoError(t, err)
	assert.Positive(t, duration)
	assert.Equal(t, []string{"id", "name", "total"}, decision.Order)
	assert.Equal(t, "identity", decision.GroupOf["id"])
}

// TestExecuteFacetFields_NoInput tests failure when neither fields nor a data
// file are given.
func TestExecuteFacetFields_NoInput(t *testing.T) {
	err := ExecuteFacetFields(context.Background(), &contract.Config{}, &iocache.MockCacheManager{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no fields given")
}

// TestGetFacetCompareResults tests the comparison entry point against two
// real snapshots.
func TestGetFacetCompareResults(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	basePath := writeDataFile(t, "before.csv", "value\n1\n2\n3\n")
	targetPath := writeDataFile(t, "after.csv", "value\n1\n2\n3\n4\n")

	mockMgr := &iocache.MockCacheManager{}
	mockMgr.On("GetDatasetStore").Return(nil)
	mockMgr.On("GetDecisionStore").Return(nil)

	cfg := &contract.Config{
		Workers:     1,
		ResultLimit: 10,
		BasePath:    basePath,
		TargetPath:  targetPath,
	}

	result, duration, err := GetFacetCompareResults(ctx, cfg, mockMgr)

	require.NoError(t, err)
	assert.Positive(t, duration)
	require.Len(t, result.Details, 1)
	assert.Equal(t, "value", result.Details[0].Name)
	assert.Equal(t, 1, result.Details[0].DeltaDataPoints)
	assert.Equal(t, schema.ActiveStatus, result.Details[0].Status)
	assert.Equal(t, 1, result.Summary.TotalActiveDatasets)
}

// TestExecuteFacetCompare_BaseError tests failure when the base snapshot is missing.
func TestExecuteFacetCompare_BaseError(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())

	mockMgr := &iocache.MockCacheManager{}
	mockMgr.On("GetDatasetStore").Return(nil)
	mockMgr.On("GetDecisionStore").Return(nil)

	cfg := &contract.Config{
		Workers:    1,
		BasePath:   filepath.Join(t.TempDir(), "absent.csv"),
		TargetPath: filepath.Join(t.TempDir(), "alsoabsent.csv"),
	}

	err := ExecuteFacetCompare(ctx, cfg, mockMgr)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "analysis failed for")
}

// TestExecuteFacetHeuristics tests the static heuristics display entry point.
func TestExecuteFacetHeuristics(t *testing.T) {
	// The cache manager is unused for the static display
	mockMgr := &iocache.MockCacheManager{}

	cfg := &contract.Config{
		Output:     schema.TextOut,
		OutputFile: filepath.Join(t.TempDir(), "out.txt"),
	}

	err := ExecuteFacetHeuristics(context.Background(), cfg, mockMgr)

	assert.NoError(t, err)
	assert.FileExists(t, cfg.OutputFile)
}
