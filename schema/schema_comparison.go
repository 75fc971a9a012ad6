package schema

// ComparisonDetail holds the base decision, target decision, and their deltas
// for one dataset name shared between two snapshots.
type ComparisonDetail struct {
	Name            string          `json:"name"`              // Dataset name joined across both snapshots
	Status          Status          `json:"status"`            // new, active or inactive as of the target snapshot
	Before          *AnalysisResult `json:"before,omitempty"`  // Decision from the base snapshot, nil for new datasets
	After           *AnalysisResult `json:"after,omitempty"`   // Decision from the target snapshot, nil for inactive datasets
	DeltaDataPoints int             `json:"delta_data_points"` // After minus before (positive means growth)
	DeltaConfidence float64         `json:"delta_confidence"`  // After minus before (positive means more trust)
	ChartChanged    bool            `json:"chart_changed"`     // Recommended chart kind differs between snapshots
	ComplexityMoved bool            `json:"complexity_moved"`  // Complexity bucket differs between snapshots
}

// ComparisonSummary has high-level deltas and counts.
type ComparisonSummary struct {
	// 1. Net data-point delta across datasets present in both snapshots
	NetDataPointsDelta int `json:"net_data_points_delta"`

	// 2. Net confidence delta across datasets present in both snapshots
	NetConfidenceDelta float64 `json:"net_confidence_delta"`

	// 3. Dataset status counts
	TotalNewDatasets      int `json:"total_new_datasets"`
	TotalInactiveDatasets int `json:"total_inactive_datasets"`
	TotalActiveDatasets   int `json:"total_active_datasets"`

	// 4. Presentation changes
	TotalChartChanges int `json:"total_chart_changes"`
}

// ComparisonResult holds the comparison details and summary.
type ComparisonResult struct {
	Details []ComparisonDetail `json:"details"`
	Summary ComparisonSummary  `json:"summary"`
}
