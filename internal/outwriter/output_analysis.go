package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAnalysisResults outputs the ranked dataset decisions, dispatching based
// on the output format configured.
func PrintAnalysisResults(output *schema.AnalyzeOutput, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printAnalysisJSON(output.Decisions, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printAnalysisCSV(output.Decisions, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisTable(output, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// printAnalysisJSON handles opening the file and calling the JSON writer.
func printAnalysisJSON(decisions []schema.DatasetDecision, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForDecisions(w, decisions)
	}, "Wrote JSON")
}

// printAnalysisCSV handles opening the file and calling the CSV writer.
func printAnalysisCSV(decisions []schema.DatasetDecision, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForDecisions(csvWriter, decisions, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeAnalysisTable generates and writes the human-readable table.
func writeAnalysisTable(output *schema.AnalyzeOutput, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Dataset", "Points", "Complexity", "Chart", "Confidence", "Label"}
	if cfg.Detail {
		headers = append(headers, "Kind", "Categories", "Patterns")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, d := range output.Decisions {
		name := contract.TruncateName(d.Name, getMaxTableNameWidth(cfg))
		points := fmt.Sprintf(intFmt, d.Result.DataPoints)
		chart := formatChartCell(d.Result.RecommendedChart, cfg.UseEmojis)
		label := formatLabelCell(d.Result.Confidence, cfg.UseColors)

		// Prepare the row data as a slice of strings
		row := []string{
			strconv.Itoa(i + 1),           // Rank
			name,                          // Dataset
			points,                        // Points
			string(d.Result.Complexity),   // Complexity
			chart,                         // Chart
			fmtFloat(d.Result.Confidence), // Confidence
			label,                         // Label
		}
		if cfg.Detail {
			row = append(
				row,
				string(d.Kind),                    // Kind
				fmt.Sprintf(intFmt, d.Categories), // Categories
				schema.FormatPatterns(d.Result),   // Patterns
			)
		}
		if cfg.Explain {
			row = append(row, formatDecisionExplain(&d)) // Signal chain explanation
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	// Compute summary stats
	numDatasets := len(output.Decisions)
	totalPoints := 0
	for _, d := range output.Decisions {
		totalPoints += d.Result.DataPoints
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d datasets (total data points: %d)\n", numDatasets, totalPoints); err != nil {
		return err
	}
	cacheNote := ""
	if output.CacheHit {
		cacheNote = " (cache hit)"
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s%s\n", duration, cfg.Workers, cfg.CacheBackend, cacheNote); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForDecisions writes the dataset decisions in CSV format.
func writeCSVResultsForDecisions(w *csv.Writer, decisions []schema.DatasetDecision, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"dataset",
		"source",
		"kind",
		"data_points",
		"categories",
		"complexity",
		"visualization",
		"chart",
		"confidence",
		"label",
		"patterns",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, d := range decisions {
		rec := []string{
			strconv.Itoa(i + 1), // Rank
			d.Name,              // Dataset Name
			d.Source,            // Source File
			string(d.Kind),      // Dataset Kind
			fmt.Sprintf(intFmt, d.Result.DataPoints),  // Data Points
			fmt.Sprintf(intFmt, d.Categories),         // Distinct Categories
			string(d.Result.Complexity),               // Complexity Bucket
			string(d.Result.VisualizationType),        // Visualization Type
			string(d.Result.RecommendedChart),         // Recommended Chart
			fmtFloat(d.Result.Confidence),             // Confidence
			schema.GetPlainLabel(d.Result.Confidence), // Label
			schema.FormatPatterns(d.Result),           // Detected Patterns
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForDecisions writes the dataset decisions in JSON format.
func writeJSONResultsForDecisions(w io.Writer, decisions []schema.DatasetDecision) error {
	// Enrich with rank and label, then use the generic JSON writer
	return writeJSON(w, schema.EnrichDecisions(decisions))
}

// formatChartCell renders the chart column, with a glyph when emojis are on.
func formatChartCell(c schema.ChartType, useEmojis bool) string {
	if useEmojis {
		return schema.ChartGlyph(c) + " " + string(c)
	}
	return string(c)
}

// formatLabelCell renders the confidence label, colored when colors are on.
func formatLabelCell(confidence float64, useColors bool) string {
	if useColors {
		return contract.GetColorLabel(confidence)
	}
	return schema.GetPlainLabel(confidence)
}

// formatDecisionExplain renders the signal chain that led to a recommendation,
// e.g. "time series > moderate > line" or "12 categories > moderate > bar".
func formatDecisionExplain(d *schema.DatasetDecision) string {
	var parts []string
	switch {
	case d.Result.HasTimeSeries:
		parts = append(parts, "time series")
	case d.Result.HasCategories:
		parts = append(parts, "clustered values")
	case d.Kind == schema.CategoricalKind:
		parts = append(parts, fmt.Sprintf("%d categories", d.Categories))
	default:
		parts = append(parts, fmt.Sprintf("%d items", d.Result.DataPoints))
	}
	parts = append(parts, string(d.Result.Complexity), string(d.Result.RecommendedChart))
	return strings.Join(parts, " > ")
}
