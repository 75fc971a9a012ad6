// Package core has core logic for analysis, decisions and ranking.
package core

import (
	"context"
	"time"

	"github.com/facetkit/facet/core/algo"
	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/internal/outwriter"
	"github.com/facetkit/facet/schema"
)

// ExecutorFunc defines the function signature for executing different decision modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// ExecuteFacetAnalyze runs the dataset analysis and prints results to stdout.
// It serves as the main entry point for the 'analyze' command.
func ExecuteFacetAnalyze(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	output, duration, err := GetFacetAnalyzeResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintAnalysisResults(output, cfg, duration)
}

// GetFacetAnalyzeResults runs the dataset analysis and returns the ranked
// decisions without printing them. The MCP and HTTP front-ends call this
// directly.
func GetFacetAnalyzeResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.AnalyzeOutput, time.Duration, error) {
	start := time.Now()
	client := contract.NewLocalDataClient()
	output, err := runAnalysisCore(ctx, cfg, client, mgr)
	if err != nil {
		return nil, 0, err
	}
	output.Decisions = algo.RankDecisions(output.Decisions, cfg.ResultLimit)
	return output, time.Since(start), nil
}

// ExecuteFacetFields resolves a field order and prints it to stdout.
// It serves as the main entry point for the 'fields' command.
func ExecuteFacetFields(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	decision, duration, err := GetFacetFieldsResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintFieldOrder(decision, cfg, duration)
}

// GetFacetFieldsResults resolves the configured field set against the hints
// file and returns the decision without printing it.
func GetFacetFieldsResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.FieldOrderDecision, time.Duration, error) {
	start := time.Now()

	fields, err := resolveFieldSet(ctx, cfg, contract.NewLocalDataClient(), mgr)
	if err != nil {
		return schema.FieldOrderDecision{}, 0, err
	}

	rules, err := loadRules(cfg)
	if err != nil {
		return schema.FieldOrderDecision{}, 0, err
	}

	decision := ResolveFieldOrderDecision(fields, rules, cfg.Trait)
	return decision, time.Since(start), nil
}

// ExecuteFacetCompare runs two analyses (base and target data files) and
// prints the decision drift between them.
func ExecuteFacetCompare(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := GetFacetCompareResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintComparisonResults(result, cfg, duration)
}

// GetFacetCompareResults runs the base and target analyses and returns the
// comparison without printing it.
func GetFacetCompareResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.ComparisonResult, time.Duration, error) {
	start := time.Now()
	client := contract.NewLocalDataClient()

	// Print single header for the comparison
	if !shouldSuppressHeader(ctx) {
		outwriter.LogCompareHeader(cfg)
	}

	baseDecisions, err := runCompareAnalysisForPath(ctx, cfg, client, mgr, cfg.BasePath)
	if err != nil {
		return schema.ComparisonResult{}, 0, err
	}
	targetDecisions, err := runCompareAnalysisForPath(ctx, cfg, client, mgr, cfg.TargetPath)
	if err != nil {
		return schema.ComparisonResult{}, 0, err
	}

	result := compareDecisions(baseDecisions, targetDecisions, cfg.ResultLimit)
	return result, time.Since(start), nil
}

// ExecuteFacetHeuristics displays the formal definitions of the decision
// heuristics. This is a static display that does not require any data loading.
func ExecuteFacetHeuristics(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	return outwriter.PrintHeuristics(BuildHeuristicsModel(), cfg)
}
