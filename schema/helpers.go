package schema

import (
	"fmt"
	"sort"
	"strings"
)

// ChartGlyph returns the display glyph for a chart kind.
func ChartGlyph(c ChartType) string {
	switch c {
	case LineChart:
		return "📈"
	case PieChart:
		return "🥧"
	case TableChart:
		return "📋"
	default: // BarChart
		return "📊"
	}
}

// FormatPatterns renders the pattern flags of a result as a short token for
// table cells: "ts", "cat", "ts,cat" or "-".
func FormatPatterns(r AnalysisResult) string {
	var parts []string
	if r.HasTimeSeries {
		parts = append(parts, "ts")
	}
	if r.HasCategories {
		parts = append(parts, "cat")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

// FormatFieldList formats field ids as "a, b, c (+2 more)", showing at most
// max entries. A non-positive max shows everything.
func FormatFieldList(fields []string, max int) string {
	if max <= 0 || len(fields) <= max {
		return strings.Join(fields, ", ")
	}
	shown := strings.Join(fields[:max], ", ")
	return fmt.Sprintf("%s (+%d more)", shown, len(fields)-max)
}

// TopCategories returns up to n category labels ordered by descending count,
// ties broken by label. Used for detail display of categorical datasets.
func TopCategories(categories map[string]int, n int) []string {
	labels := make([]string, 0, len(categories))
	for label := range categories {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if categories[labels[i]] != categories[labels[j]] {
			return categories[labels[i]] > categories[labels[j]]
		}
		return labels[i] < labels[j]
	})
	if len(labels) > n && n >= 0 {
		labels = labels[:n]
	}
	return labels
}
