package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/facetkit/facet/core/engine"
	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/internal/outwriter"
	"github.com/facetkit/facet/schema"
)

// runAnalysisCore performs the common Loading, Filtering and Decision steps.
func runAnalysisCore(ctx context.Context, cfg *contract.Config, client contract.DataClient, mgr contract.CacheManager) (*schema.AnalyzeOutput, error) {
	if !shouldSuppressHeader(ctx) {
		outwriter.LogAnalysisHeader(cfg)
	}

	// --- 0. Begin Decision Tracking (if configured) ---
	var runID int64
	decisionStore := mgr.GetDecisionStore()
	if cfg.Track && decisionStore != nil {
		var err error
		runID, err = decisionStore.BeginRun(time.Now(), cfg.TrackingParams())
		if err != nil {
			contract.LogWarn("Decision tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 1. Loading Phase (with caching) ---
	datasets, cacheHit, err := cachedLoadDatasets(ctx, cfg, client, mgr)
	if err != nil {
		return nil, err
	}

	// --- 2. Filtering ---
	datasets = filterDatasets(datasets, cfg.Excludes)
	if len(datasets) == 0 {
		return nil, errors.New("no datasets found")
	}

	// --- 3. Core Decisions ---
	decisions := decideDatasets(cfg, datasets)

	// --- 4. End Decision Tracking ---
	if runID > 0 {
		if err := decisionStore.RecordDecisions(runID, decisions); err != nil {
			contract.LogWarn("Failed to record decisions", err)
		}
		if err := decisionStore.EndRun(runID, time.Now(), len(decisions)); err != nil {
			contract.LogWarn("Failed to finalize decision tracking", err)
		}
	}

	return &schema.AnalyzeOutput{
		Datasets:  datasets,
		Decisions: decisions,
		CacheHit:  cacheHit,
	}, nil
}

// runCompareAnalysisForPath runs the analysis for one side of a comparison.
// Headers are always suppressed and tracking never runs in compare mode.
func runCompareAnalysisForPath(ctx context.Context, cfg *contract.Config, client contract.DataClient, mgr contract.CacheManager, path string) ([]schema.DatasetDecision, error) {
	cfgSide := cfg.Clone()
	cfgSide.DataPath = path
	cfgSide.Track = false

	output, err := runAnalysisCore(WithSuppressHeader(ctx), cfgSide, client, mgr)
	if err != nil {
		return nil, fmt.Errorf("analysis failed for %s: %w", path, err)
	}
	return output.Decisions, nil
}

// filterDatasets drops datasets whose name matches any exclude pattern.
func filterDatasets(datasets []schema.NamedDataset, excludes []string) []schema.NamedDataset {
	filtered := make([]schema.NamedDataset, 0, len(datasets))
	for _, ds := range datasets {
		if !contract.ShouldExclude(ds.Name, excludes) {
			filtered = append(filtered, ds)
		}
	}
	return filtered
}

// decideDatasets processes all datasets in parallel using a worker pool.
// It spawns cfg.Workers number of goroutines to classify datasets concurrently
// and aggregates their decisions into a single slice.
func decideDatasets(cfg *contract.Config, datasets []schema.NamedDataset) []schema.DatasetDecision {
	// Initialize channels based on the final number of datasets to be processed.
	datasetCh := make(chan schema.NamedDataset, len(datasets))
	decisionCh := make(chan schema.DatasetDecision, len(datasets))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for ds := range datasetCh {
				decisionCh <- decideDataset(ds)
			}
		})
	}

	// Send datasets to worker channel
	for _, ds := range datasets {
		datasetCh <- ds
	}
	close(datasetCh)

	// Wait for all workers to finish processing
	wg.Wait()
	close(decisionCh)

	// Aggregate decisions directly into the slice
	decisions := make([]schema.DatasetDecision, 0, len(datasets))
	for d := range decisionCh {
		decisions = append(decisions, d)
	}

	return decisions
}

// decideDataset classifies a single dataset and binds the engine's result to
// the dataset's identity.
func decideDataset(ds schema.NamedDataset) schema.DatasetDecision {
	result := engine.AnalyzeDataset(ds.Dataset)
	return schema.DatasetDecision{
		Name:       ds.Name,
		Source:     ds.Source,
		Kind:       ds.Dataset.Kind,
		Categories: ds.Dataset.DistinctCategories(),
		Result:     result,
	}
}
