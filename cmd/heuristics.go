package cmd

import (
	"github.com/facetkit/facet/core"
	"github.com/facetkit/facet/internal/contract"
	"github.com/spf13/cobra"
)

// heuristicsCmd displays the formal definitions of the decision heuristics.
var heuristicsCmd = &cobra.Command{
	Use:     "heuristics",
	Aliases: []string{"metrics"},
	Short:   "Display the thresholds and detectors behind every decision",
	Long: `Show the complexity buckets, detectors and confidence levels the
analyzer uses to classify datasets.

Provides complete transparency into how decisions are made, including:
- Complexity bucket boundaries per dataset kind
- Chart type assigned to each bucket
- Detector rules for time series and category data
- Confidence carried by each bucket

No data is loaded - this is purely informational.

Use this to:
- Understand why a dataset landed in a bucket
- Explain chart choices to your team
- Document presentation methodology

Examples:
  # Show the decision heuristics
  facet heuristics

  # Export them as JSON for documentation
  facet heuristics --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFacetHeuristics(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot display heuristics", err)
		}
	},
}
