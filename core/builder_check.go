package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/internal/hints"
	"github.com/facetkit/facet/schema"
)

// CheckResultBuilder builds the check result using a builder pattern.
type CheckResultBuilder struct {
	cfg              *contract.Config
	client           contract.DataClient
	mgr              contract.CacheManager
	ctx              context.Context
	fields           []string
	decisions        []schema.DatasetDecision
	hintsIssues      []string
	violations       []schema.CheckViolation
	avgConfidence    float64
	lowestConfidence float64
	lowestDataset    string
	result           *schema.CheckResult
}

// NewCheckResultBuilder creates a new builder for check results.
func NewCheckResultBuilder(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) *CheckResultBuilder {
	return &CheckResultBuilder{
		cfg:    cfg,
		client: contract.NewLocalDataClient(),
		mgr:    mgr,
		ctx:    ctx,
	}
}

// ValidatePrerequisites validates that the check has something to gate on.
func (b *CheckResultBuilder) ValidatePrerequisites() (*CheckResultBuilder, error) {
	if b.cfg.DataPath == "" && b.cfg.HintsPath == "" {
		return nil, fmt.Errorf("check command requires a data file or --hints flag. Example: facet check data.csv --min-confidence 0.7")
	}
	return b, nil
}

// RunAnalysis analyzes the data file when one is configured. A hints-only
// check skips this stage entirely.
func (b *CheckResultBuilder) RunAnalysis() (*CheckResultBuilder, error) {
	if b.cfg.DataPath == "" {
		b.fields = b.cfg.Fields
		return b, nil
	}

	// Gate runs never write decision history
	cfgRun := b.cfg.Clone()
	cfgRun.Track = false

	output, err := runAnalysisCore(WithSuppressHeader(b.ctx), cfgRun, b.client, b.mgr)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze data file: %w. Verify the path exists and holds CSV or JSON data", err)
	}
	b.decisions = output.Decisions

	// An explicit field list wins over dataset names for hints validation
	if len(b.cfg.Fields) > 0 {
		b.fields = b.cfg.Fields
	} else {
		b.fields = make([]string, 0, len(b.decisions))
		for _, d := range b.decisions {
			b.fields = append(b.fields, d.Name)
		}
	}
	return b, nil
}

// LintHints loads the hints file when one is configured and records every
// finding as a human-readable issue.
func (b *CheckResultBuilder) LintHints() (*CheckResultBuilder, error) {
	if b.cfg.HintsPath == "" {
		return b, nil
	}

	rules, err := hints.Load(b.cfg.HintsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load hints file: %w", err)
	}

	for _, finding := range hints.Validate(rules, b.fields) {
		b.hintsIssues = append(b.hintsIssues, finding.String())
	}
	return b, nil
}

// ComputeMetrics checks every decision against the confidence floor and
// tracks the aggregate confidence stats.
func (b *CheckResultBuilder) ComputeMetrics() *CheckResultBuilder {
	b.violations = []schema.CheckViolation{}

	var sum float64
	for i, d := range b.decisions {
		confidence := d.Result.Confidence
		sum += confidence

		if i == 0 || confidence < b.lowestConfidence ||
			(confidence == b.lowestConfidence && d.Name < b.lowestDataset) {
			b.lowestConfidence = confidence
			b.lowestDataset = d.Name
		}

		if confidence < b.cfg.MinConfidence {
			b.violations = append(b.violations, schema.CheckViolation{
				Dataset:    d.Name,
				Confidence: confidence,
				Threshold:  b.cfg.MinConfidence,
				Complexity: d.Result.Complexity,
			})
		}
	}
	if len(b.decisions) > 0 {
		b.avgConfidence = sum / float64(len(b.decisions))
	}

	// Worker pool order is non-deterministic, so sort worst first
	sort.Slice(b.violations, func(i, j int) bool {
		a, c := b.violations[i], b.violations[j]
		if a.Confidence != c.Confidence {
			return a.Confidence < c.Confidence
		}
		return a.Dataset < c.Dataset
	})

	return b
}

// BuildResult constructs the final CheckResult.
func (b *CheckResultBuilder) BuildResult() *CheckResultBuilder {
	b.result = &schema.CheckResult{
		Passed:           len(b.violations) == 0 && len(b.hintsIssues) == 0,
		Violations:       b.violations,
		HintsIssues:      b.hintsIssues,
		TotalDatasets:    len(b.decisions),
		TotalFields:      len(b.fields),
		MinConfidence:    b.cfg.MinConfidence,
		AvgConfidence:    b.avgConfidence,
		LowestConfidence: b.lowestConfidence,
		LowestDataset:    b.lowestDataset,
	}
	return b
}

// GetResult returns the built CheckResult.
func (b *CheckResultBuilder) GetResult() *schema.CheckResult {
	return b.result
}
