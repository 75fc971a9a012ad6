package schema

// Custom string types for type safety.
type (
	// Complexity is the coarse four-level bucket describing how much data is present.
	Complexity string

	// VisualizationType is the inferred shape of the data, independent of volume.
	VisualizationType string

	// ChartType is the chart kind recommended for a dataset.
	ChartType string

	// DatasetKind selects which shape of the Dataset value is populated.
	DatasetKind string

	// Trait is a caller-defined presentation context (e.g. a compact layout)
	// that can swap in an alternate complete rule set for field ordering.
	Trait string

	// OutputMode represents the format of the output.
	OutputMode string

	// Status represents the status of a dataset between two snapshots.
	Status string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All complexity buckets, ordered from least to most data.
const (
	ComplexitySimple      Complexity = "simple"
	ComplexityModerate    Complexity = "moderate"
	ComplexityComplex     Complexity = "complex"
	ComplexityVeryComplex Complexity = "veryComplex"
)

// All visualization types supported.
const (
	CategoricalViz VisualizationType = "categorical"
	NumericalViz   VisualizationType = "numerical"
	TemporalViz    VisualizationType = "temporal"
)

// All chart types supported.
const (
	BarChart   ChartType = "bar"
	LineChart  ChartType = "line"
	PieChart   ChartType = "pie"
	TableChart ChartType = "table"
)

// All dataset kinds supported.
const (
	CountedKind     DatasetKind = "counted"
	NumericKind     DatasetKind = "numeric"
	CategoricalKind DatasetKind = "categorical"
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All status supported.
const (
	NewStatus      Status = "new"
	ActiveStatus   Status = "active"
	InactiveStatus Status = "inactive"
	UnknownStatus  Status = "unknown"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Pattern detector parameters for numeric sequences.
const (
	// TimeSeriesMinLength is the shortest sequence the time-series detector considers.
	TimeSeriesMinLength = 10

	// TimeSeriesJitterTolerance is the largest absolute deviation of any
	// consecutive difference from the mean step that still counts as a
	// near-constant progression.
	TimeSeriesJitterTolerance = 5.0

	// CategoricalDistinctRatioMax is the highest distinct-to-total value ratio
	// that still counts as categorical clustering.
	CategoricalDistinctRatioMax = 0.4
)

// AllComplexities returns complexity buckets from least to most data.
var AllComplexities = []Complexity{ComplexitySimple, ComplexityModerate, ComplexityComplex, ComplexityVeryComplex}

// AllChartTypes lists every chart kind the engine can recommend.
var AllChartTypes = []ChartType{BarChart, LineChart, PieChart, TableChart}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ComplexityThresholds holds the lower bound of each bucket above simple for
// one size measure. A measure below Moderate is simple.
type ComplexityThresholds struct {
	Moderate    int `json:"moderate"`
	Complex     int `json:"complex"`
	VeryComplex int `json:"very_complex"`
}

// GetGenericThresholds returns the thresholds applied to plain item counts,
// used for generic and numeric datasets.
func GetGenericThresholds() ComplexityThresholds {
	return ComplexityThresholds{Moderate: 10, Complex: 30, VeryComplex: 100}
}

// GetCategoricalThresholds returns the thresholds applied to the distinct
// category count of categorical datasets. The VeryComplex bound is an
// extrapolation; observed behavior only exercises simple through complex.
func GetCategoricalThresholds() ComplexityThresholds {
	return ComplexityThresholds{Moderate: 5, Complex: 20, VeryComplex: 50}
}

// GetConfidence returns the recommendation confidence for a complexity
// bucket. Moderate data gives the most reliable signal: enough points to see
// a pattern, not so many that exceptions dilute it.
func GetConfidence(c Complexity) float64 {
	switch c {
	case ComplexityModerate:
		return 1.0
	case ComplexityComplex:
		return 0.8
	case ComplexityVeryComplex:
		return 0.6
	default: // ComplexitySimple
		return 0.9
	}
}

// GetCategoricalChart returns the chart kind for a categorical dataset of the
// given complexity: pie while categories fit a legend, bar while they fit an
// axis, table beyond that.
func GetCategoricalChart(c Complexity) ChartType {
	switch c {
	case ComplexityModerate:
		return BarChart
	case ComplexityComplex, ComplexityVeryComplex:
		return TableChart
	default: // ComplexitySimple
		return PieChart
	}
}

// GetFallbackChart returns the chart kind for datasets with no shape signal
// beyond their size. This is a convention, not an invariant: bar below
// complex, table at complex and above.
func GetFallbackChart(c Complexity) ChartType {
	switch c {
	case ComplexityComplex, ComplexityVeryComplex:
		return TableChart
	default:
		return BarChart
	}
}
