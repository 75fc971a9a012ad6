// Package algo has ranking helpers shared by the analysis pipeline.
package algo

import (
	"sort"

	"github.com/facetkit/facet/schema"
)

// RankDecisions sorts decisions by their data-point count in descending order
// and returns the top 'limit' decisions. If limit is greater than the number
// of decisions, all decisions are returned in sorted order. Names break ties
// so concurrent analysis always ranks the same way.
func RankDecisions(decisions []schema.DatasetDecision, limit int) []schema.DatasetDecision {
	sort.Slice(decisions, func(i, j int) bool {
		a, b := decisions[i], decisions[j]
		if a.Result.DataPoints != b.Result.DataPoints {
			return a.Result.DataPoints > b.Result.DataPoints
		}
		return a.Name < b.Name
	})
	if len(decisions) > limit {
		return decisions[:limit]
	}
	return decisions
}
