package schema_test

import (
	"testing"

	"github.com/facetkit/facet/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		expected   string
	}{
		{"Strong Upper", 1.0, "Strong"},
		{"Strong Lower", 0.9, "Strong"},
		{"Solid Upper", 0.89, "Solid"},
		{"Solid Lower", 0.75, "Solid"},
		{"Fair Upper", 0.74, "Fair"},
		{"Fair Lower", 0.65, "Fair"},
		{"Weak Upper", 0.64, "Weak"},
		{"Weak Lower", 0.0, "Weak"},
		{"Negative Confidence", -0.5, "Weak"}, // Edge case
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := schema.GetPlainLabel(tt.confidence)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEnrichDecisions(t *testing.T) {
	decisions := []schema.DatasetDecision{
		{Name: "revenue", Result: schema.AnalysisResult{Confidence: 1.0}}, // Strong
		{Name: "regions", Result: schema.AnalysisResult{Confidence: 0.8}}, // Solid
		{Name: "backlog", Result: schema.AnalysisResult{Confidence: 0.6}}, // Weak
	}

	enriched := schema.EnrichDecisions(decisions)

	assert.Len(t, enriched, 3)

	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, "Strong", enriched[0].Label)
	assert.Equal(t, "revenue", enriched[0].Name)

	assert.Equal(t, 2, enriched[1].Rank)
	assert.Equal(t, "Solid", enriched[1].Label)
	assert.Equal(t, "regions", enriched[1].Name)

	assert.Equal(t, 3, enriched[2].Rank)
	assert.Equal(t, "Weak", enriched[2].Label)
	assert.Equal(t, "backlog", enriched[2].Name)
}
