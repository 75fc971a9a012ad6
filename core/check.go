package core

import (
	"context"
	"fmt"
	"os"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/internal/outwriter"
	"github.com/facetkit/facet/schema"
)

// ExecuteFacetCheck runs the check command for CI/CD gating. It gates every
// dataset decision against the configured confidence floor, lints the hints
// file, and exits non-zero when anything falls short.
func ExecuteFacetCheck(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, err := GetFacetCheckResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	if err := outwriter.PrintCheckResult(result, cfg); err != nil {
		return err
	}

	if !result.Passed {
		fmt.Printf("%d problem(s) found\n", len(result.Violations)+len(result.HintsIssues))
		os.Exit(1)
	}
	return nil
}

// GetFacetCheckResults runs the confidence gate and hints lint without
// printing or exiting, so callers and tests can inspect the verdict.
func GetFacetCheckResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.CheckResult, error) {
	builder := NewCheckResultBuilder(ctx, cfg, mgr)

	// Validate prerequisites
	if _, err := builder.ValidatePrerequisites(); err != nil {
		return nil, err
	}

	// Run analysis
	if _, err := builder.RunAnalysis(); err != nil {
		return nil, err
	}

	// Lint hints
	if _, err := builder.LintHints(); err != nil {
		return nil, err
	}

	// Compute metrics and build result
	builder.ComputeMetrics()
	builder.BuildResult()

	return builder.GetResult(), nil
}
