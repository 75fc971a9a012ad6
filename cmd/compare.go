package cmd

import (
	"github.com/facetkit/facet/core"
	"github.com/facetkit/facet/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd diffs presentation decisions between two data files.
var compareCmd = &cobra.Command{
	Use:   "compare <base-file> <target-file>",
	Short: "Compare presentation decisions between two data files.",
	Long: `Analyze two data files and report how the presentation decisions differ.

Both files are analyzed with the same settings, then matched dataset by
dataset. The report shows which datasets appeared or disappeared, which
kept their chart, and which changed chart or complexity between the two
versions of the data.

Useful for:
- Catching report layout changes before they ship
- Seeing how a schema migration affects dashboards
- Verifying that a data refresh kept its presentation stable

Examples:
  # Compare last month's export against this month's
  facet compare sales-2026-06.csv sales-2026-07.csv

  # Compare with per-dataset detail
  facet compare old.json new.json --detail

  # Export the comparison for review
  facet compare old.csv new.csv --output json --output-file diff.json`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFacetCompare(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run comparison", err)
		}
	},
}
