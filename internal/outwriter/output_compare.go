package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintComparisonResults outputs the snapshot comparison, dispatching based on
// the output format configured.
func PrintComparisonResults(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
		if err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForComparison(csvWriter, result, fmtFloat, intFmt)
		}, "Wrote CSV")
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(result, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeComparisonTable writes the details in a custom comparison format.
func writeComparisonTable(result schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers (Comparison Mode)
	// Note: Use clear headers for base, target, and the change (Delta)
	headers := []string{
		"Rank",
		"Dataset",
		"Before",
		"After",
		"Delta",
		"Status",
	}
	if cfg.Detail {
		headers = append(headers, "Δ Conf", "Chart")
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	var data [][]string
	var red, green, yellow func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}
	for i, r := range result.Details {
		var deltaStr string
		deltaValue := r.DeltaDataPoints
		switch {
		case deltaValue > 0:
			// Explicitly add + sign, growth is shown in green
			deltaStr = green(fmt.Sprintf("+%d ▲", deltaValue))
		case deltaValue < 0:
			// Keeps the - sign from the int, shrinkage is shown in red
			deltaStr = red(fmt.Sprintf("%d ▼", deltaValue))
		default:
			// For zero deltas, format simply without an indicator
			deltaStr = yellow("0")
		}

		name := contract.TruncateName(r.Name, getMaxTableNameWidth(cfg))
		before := formatResultPoints(r.Before, intFmt, "-")
		after := formatResultPoints(r.After, intFmt, "-")

		// Prepare the row data as a slice of strings
		row := []string{
			strconv.Itoa(i + 1), // Rank
			name,                // Dataset
			before,              // Base Points
			after,               // Target Points
			deltaStr,            // Delta Points
			string(r.Status),    // Status
		}
		if cfg.Detail {
			deltaConf := fmt.Sprintf("%+.*f", cfg.Precision, r.DeltaConfidence)
			row = append(
				row,
				deltaConf,                // Confidence Delta
				formatChartTransition(r), // Chart Transition
			)
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
	numItems := len(result.Details)
	if _, err := fmt.Fprintf(writer, "Showing top %d changes\n", numItems); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Net data-point delta: %d, Net confidence delta: %.*f\n", result.Summary.NetDataPointsDelta, cfg.Precision, result.Summary.NetConfidenceDelta); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "New datasets: %d, Inactive datasets: %d, Active datasets: %d, Chart changes: %d\n", result.Summary.TotalNewDatasets, result.Summary.TotalInactiveDatasets, result.Summary.TotalActiveDatasets, result.Summary.TotalChartChanges); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Comparison completed in %v with %d workers.\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForComparison writes the schema.ComparisonResult data to a CSV writer.
func writeCSVResultsForComparison(w *csv.Writer, result schema.ComparisonResult, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"dataset",
		"status",
		"before_points",
		"after_points",
		"delta_points",
		"before_confidence",
		"after_confidence",
		"delta_confidence",
		"before_chart",
		"after_chart",
		"chart_changed",
		"complexity_moved",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, r := range result.Details {
		row := []string{
			strconv.Itoa(i + 1),
			r.Name,
			string(r.Status),
			formatResultPoints(r.Before, intFmt, ""),
			formatResultPoints(r.After, intFmt, ""),
			fmt.Sprintf(intFmt, r.DeltaDataPoints),
			formatResultConfidence(r.Before, fmtFloat, ""),
			formatResultConfidence(r.After, fmtFloat, ""),
			fmtFloat(r.DeltaConfidence),
			formatResultChart(r.Before, ""),
			formatResultChart(r.After, ""),
			strconv.FormatBool(r.ChartChanged),
			strconv.FormatBool(r.ComplexityMoved),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// formatResultPoints renders the data-point count of one comparison side.
// New and inactive datasets are missing one side, rendered as the placeholder.
func formatResultPoints(r *schema.AnalysisResult, intFmt, missing string) string {
	if r == nil {
		return missing
	}
	return fmt.Sprintf(intFmt, r.DataPoints)
}

// formatResultConfidence renders the confidence of one comparison side.
func formatResultConfidence(r *schema.AnalysisResult, fmtFloat func(float64) string, missing string) string {
	if r == nil {
		return missing
	}
	return fmtFloat(r.Confidence)
}

// formatResultChart renders the recommended chart of one comparison side.
func formatResultChart(r *schema.AnalysisResult, missing string) string {
	if r == nil {
		return missing
	}
	return string(r.RecommendedChart)
}

// formatChartTransition renders the chart movement between the two snapshots:
// the stable chart kind, or "bar → line" when the recommendation changed.
func formatChartTransition(r schema.ComparisonDetail) string {
	switch {
	case r.Before == nil && r.After == nil:
		return "-"
	case r.Before == nil:
		return string(r.After.RecommendedChart)
	case r.After == nil:
		return string(r.Before.RecommendedChart)
	case r.ChartChanged:
		return fmt.Sprintf("%s → %s", r.Before.RecommendedChart, r.After.RecommendedChart)
	default:
		return string(r.After.RecommendedChart)
	}
}
