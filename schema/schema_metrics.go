package schema

// HeuristicBucket describes one complexity bucket for display purposes: the
// size ranges that select it, its confidence, and the chart defaults it implies.
type HeuristicBucket struct {
	Complexity       Complexity `json:"complexity"`
	GenericRange     string     `json:"generic_range"`     // Item-count range, e.g. "10-29"
	CategoricalRange string     `json:"categorical_range"` // Distinct-category range, e.g. "5-19"
	Confidence       float64    `json:"confidence"`
	FallbackChart    ChartType  `json:"fallback_chart"`
	CategoricalChart ChartType  `json:"categorical_chart"`
}

// HeuristicDetector describes one numeric pattern detector for display purposes.
type HeuristicDetector struct {
	Name       string   `json:"name"`
	Signal     string   `json:"signal"`
	Parameters []string `json:"parameters"`
	Effect     string   `json:"effect"`
}

// HeuristicsRenderModel contains all processed data needed for displaying the
// engine's formal definitions.
type HeuristicsRenderModel struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Buckets     []HeuristicBucket   `json:"buckets"`
	Detectors   []HeuristicDetector `json:"detectors"`
	Notes       map[string]string   `json:"notes"`
}
