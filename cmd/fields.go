package cmd

import (
	"github.com/facetkit/facet/core"
	"github.com/facetkit/facet/internal/contract"
	"github.com/spf13/cobra"
)

// fieldsCmd resolves a display order for a set of fields.
var fieldsCmd = &cobra.Command{
	Use:   "fields [data-file]",
	Short: "Resolve the display order for a set of fields.",
	Long: `Decide the order in which fields should be displayed.

Fields come from a data file (its column or key names) or from the
--fields flag directly. Ordering rules come from a YAML hints file:
an explicit order wins, named groups keep related fields together,
and weights break the remaining ties. A trait override replaces the
order wholesale for a specific presentation context.

Fields that no rule mentions keep a stable alphabetical order, so the
result is deterministic even with no hints at all.

Examples:
  # Order the columns of a CSV file using a hints file
  facet fields sales.csv --hints .facet-hints.yaml

  # Order an inline field list without touching any file
  facet fields --fields "notes,title,status,priority" --hints .facet-hints.yaml

  # Apply the compact trait override
  facet fields sales.csv --hints .facet-hints.yaml --trait compact

  # No hints: stable alphabetical order
  facet fields --fields "gamma,alpha,beta"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFacetFields(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot resolve field order", err)
		}
	},
}
