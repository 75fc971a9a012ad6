package algo

import (
	"testing"

	"github.com/facetkit/facet/schema"
	"github.com/stretchr/testify/assert"
)

func decisionWithPoints(name string, points int) schema.DatasetDecision {
	return schema.DatasetDecision{
		Name:   name,
		Result: schema.AnalysisResult{DataPoints: points},
	}
}

// TestRankDecisions tests decision ranking logic.
func TestRankDecisions(t *testing.T) {
	decisions := []schema.DatasetDecision{
		decisionWithPoints("low", 10),
		decisionWithPoints("high", 90),
		decisionWithPoints("medium", 50),
		decisionWithPoints("critical", 95),
	}

	t.Run("rank and limit", func(t *testing.T) {
		ranked := RankDecisions(decisions, 2)
		assert.Equal(t, 2, len(ranked))
		assert.Equal(t, "critical", ranked[0].Name)
		assert.Equal(t, "high", ranked[1].Name)
	})

	t.Run("limit exceeds length", func(t *testing.T) {
		ranked := RankDecisions(decisions, 10)
		assert.Equal(t, 4, len(ranked))
	})

	t.Run("points in descending order", func(t *testing.T) {
		ranked := RankDecisions(decisions, 10)
		for i := 1; i < len(ranked); i++ {
			assert.LessOrEqual(t, ranked[i].Result.DataPoints, ranked[i-1].Result.DataPoints)
		}
	})
}

// TestRankDecisionsTieBreak tests that equal sizes rank by name.
func TestRankDecisionsTieBreak(t *testing.T) {
	decisions := []schema.DatasetDecision{
		decisionWithPoints("zeta", 50),
		decisionWithPoints("alpha", 50),
		decisionWithPoints("mid", 50),
	}

	ranked := RankDecisions(decisions, 10)

	assert.Equal(t, "alpha", ranked[0].Name)
	assert.Equal(t, "mid", ranked[1].Name)
	assert.Equal(t, "zeta", ranked[2].Name)
}
