package schema

// EnrichedDatasetDecision adds presentation data to a DatasetDecision.
type EnrichedDatasetDecision struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	DatasetDecision
}

// Confidence label constants.
const (
	StrongValue = "Strong" // Recommendation safe to auto-apply
	SolidValue  = "Solid"  // Recommendation reliable
	FairValue   = "Fair"   // Recommendation usable, worth a look
	WeakValue   = "Weak"   // Recommendation needs human review
)

// GetPlainLabel returns a plain text label describing how trustworthy a
// recommendation is, based on its confidence score. This is the core logic
// used for CSV, JSON, and table printing.
func GetPlainLabel(confidence float64) string {
	switch {
	case confidence >= 0.9:
		return StrongValue
	case confidence >= 0.75:
		return SolidValue
	case confidence >= 0.65:
		return FairValue
	default:
		return WeakValue
	}
}

// EnrichDecisions adds rank and label to a list of dataset decisions.
func EnrichDecisions(decisions []DatasetDecision) []EnrichedDatasetDecision {
	output := make([]EnrichedDatasetDecision, len(decisions))
	for i, d := range decisions {
		output[i] = EnrichedDatasetDecision{
			Rank:            i + 1,
			Label:           GetPlainLabel(d.Result.Confidence),
			DatasetDecision: d,
		}
	}
	return output
}
