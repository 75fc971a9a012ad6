package cmd

import (
	"github.com/facetkit/facet/core"
	"github.com/facetkit/facet/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check [data-file]",
	Short: "Enforce presentation policy for CI/CD pipelines (fails build on violations)",
	Long: `Validate hints files and decision confidence, failing with a non-zero
exit code on any violation.

Two kinds of checks run, depending on the inputs given:
- With --hints, the hints file is linted: unknown fields in the
  explicit order, fields claimed by more than one group, and rules
  that reference nothing in the field list are all violations.
- With a data file and --min-confidence, every dataset whose decision
  confidence falls below the floor is a violation.

Use cases:
- Pull request gates - block merges that break report hints
- Release validation - ensure no low-confidence presentation choices
- Keep hints files honest as schemas drift

Examples:
  # Lint a hints file against a data file's columns
  facet check sales.csv --hints .facet-hints.yaml

  # Lint a hints file against an inline field list
  facet check --fields "title,status,priority" --hints .facet-hints.yaml

  # Gate on decision confidence
  facet check sales.csv --min-confidence 0.7

  # Combine both gates in one run
  facet check sales.csv --hints .facet-hints.yaml --min-confidence 0.7`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Validation is done in ExecuteFacetCheck
		if err := core.ExecuteFacetCheck(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Policy check failed", err)
		}
	},
}
