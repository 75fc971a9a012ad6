// Package schema has the shared models, enums and heuristic tables for all parts of facet.
package schema

// Dataset is the tagged input value for the analyzer. Exactly one of the
// shape fields is meaningful, selected by Kind: a bare item count, an ordered
// numeric sequence, or a category label to count mapping.
type Dataset struct {
	Kind       DatasetKind    `json:"kind"`                 // Which shape field below is populated
	Count      int            `json:"count,omitempty"`      // Item count for counted datasets
	Values     []float64      `json:"values,omitempty"`     // Ordered values for numeric datasets
	Categories map[string]int `json:"categories,omitempty"` // Label to non-negative count for categorical datasets
}

// CountedDataset builds a dataset whose only observable property is its length.
func CountedDataset(n int) Dataset {
	return Dataset{Kind: CountedKind, Count: n}
}

// NumericDataset builds a dataset from an ordered sequence of real numbers.
func NumericDataset(values []float64) Dataset {
	return Dataset{Kind: NumericKind, Values: values}
}

// CategoricalDataset builds a dataset from a category label to count mapping.
func CategoricalDataset(categories map[string]int) Dataset {
	return Dataset{Kind: CategoricalKind, Categories: categories}
}

// Size returns the data-point count of the dataset: the raw count for counted
// datasets, the value count for numeric datasets, and the sum of all category
// counts for categorical datasets.
func (d Dataset) Size() int {
	switch d.Kind {
	case NumericKind:
		return len(d.Values)
	case CategoricalKind:
		total := 0
		for _, n := range d.Categories {
			total += n
		}
		return total
	default:
		return d.Count
	}
}

// DistinctCategories returns the number of distinct category labels, or zero
// for non-categorical datasets.
func (d Dataset) DistinctCategories() int {
	if d.Kind != CategoricalKind {
		return 0
	}
	return len(d.Categories)
}

// NamedDataset is a dataset bound to the identity it was loaded under,
// typically a CSV column header or a JSON document name.
type NamedDataset struct {
	Name    string  `json:"name"`   // Display name, e.g. the column header
	Source  string  `json:"source"` // File the dataset was loaded from
	Dataset Dataset `json:"dataset"`
}

// AnalysisResult describes how a dataset should be presented. It is a
// deterministic function of the input dataset: identical input always yields
// an identical result.
type AnalysisResult struct {
	DataPoints        int               `json:"data_points"`            // Item count, or sum of category counts
	Complexity        Complexity        `json:"complexity"`             // Size-driven bucket
	VisualizationType VisualizationType `json:"visualization_type"`     // Inferred shape of the data
	RecommendedChart  ChartType         `json:"recommended_chart_type"` // Chart kind the caller should default to
	Confidence        float64           `json:"confidence"`             // 0-1, a function of complexity alone
	HasTimeSeries     bool              `json:"has_time_series"`        // Numeric sequence looks like a time series
	HasCategories     bool              `json:"has_categories"`         // Values cluster into few distinct groups
}

// DatasetDecision is one analyzer decision bound to its dataset identity.
// It is the unit the CLI ranks, prints, caches and records.
type DatasetDecision struct {
	Name       string         `json:"name"`
	Source     string         `json:"source,omitempty"`
	Kind       DatasetKind    `json:"kind"`
	Categories int            `json:"categories,omitempty"` // Distinct category count for categorical datasets
	Result     AnalysisResult `json:"result"`
}
