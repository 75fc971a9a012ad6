package cmd

import (
	"github.com/facetkit/facet/core"
	"github.com/facetkit/facet/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd performs dataset-level presentation analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <data-file>",
	Short: "Recommend a chart type for every dataset in a data file.",
	Long: `Load a data file, classify each dataset it contains and recommend
how to present it.

Every column (CSV) or array (JSON) becomes a dataset. Each dataset is
classified by kind, sized into a complexity bucket and matched with a
chart type, helping you:
- Pick the right visualization without eyeballing the data first
- Spot time series hiding inside plain numeric columns
- See which datasets are too large for anything but a table
- Keep presentation choices consistent across reports

Decisions are ranked by data-point count, largest first.

Examples:
  # Analyze every dataset in a CSV file
  facet analyze sales.csv

  # Show the signals behind each decision
  facet analyze sales.csv --explain --detail

  # Skip noisy columns and keep the top ten
  facet analyze sales.csv --exclude "_id,_internal" --limit 10

  # Record the run so it can be compared later
  facet analyze sales.csv --track

  # Export decisions to CSV for tracking
  facet analyze sales.csv --output csv --output-file decisions.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFacetAnalyze(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
