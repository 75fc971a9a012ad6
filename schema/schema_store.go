package schema

import "time"

// DecisionRunRecord represents a row from the facet_decision_runs table.
type DecisionRunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalDatasets int32
	ConfigParams  *string
}

// DatasetDecisionRecord represents a row from the facet_dataset_decisions table.
type DatasetDecisionRecord struct {
	RunID             int64
	DatasetName       string
	Source            *string
	Kind              string
	AnalysisTime      time.Time
	DataPoints        int32
	Categories        int32
	Complexity        string
	VisualizationType string
	ChartType         string
	Confidence        float64
	HasTimeSeries     bool
	HasCategories     bool
}
