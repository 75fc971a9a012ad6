package schema

// CheckResult holds the results of a policy check.
type CheckResult struct {
	Passed           bool             `json:"passed"`
	Violations       []CheckViolation `json:"violations,omitempty"`
	HintsIssues      []string         `json:"hints_issues,omitempty"`
	TotalDatasets    int              `json:"total_datasets"`
	TotalFields      int              `json:"total_fields"`
	MinConfidence    float64          `json:"min_confidence"`           // Configured confidence floor
	AvgConfidence    float64          `json:"avg_confidence"`           // Average confidence across checked datasets
	LowestConfidence float64          `json:"lowest_confidence"`        // Lowest confidence observed
	LowestDataset    string           `json:"lowest_dataset,omitempty"` // Dataset that produced the lowest confidence
}

// CheckViolation represents a dataset that failed the confidence gate.
type CheckViolation struct {
	Dataset    string     `json:"dataset"`
	Confidence float64    `json:"confidence"`
	Threshold  float64    `json:"threshold"`
	Complexity Complexity `json:"complexity"`
}
