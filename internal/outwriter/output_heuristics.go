package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"
)

// getDisplayNameForBucket returns the display name with emoji for a complexity bucket.
func getDisplayNameForBucket(complexity string) string {
	switch complexity {
	case "simple":
		return "🟢 SIMPLE"
	case "moderate":
		return "🟡 MODERATE"
	case "complex":
		return "🟠 COMPLEX"
	case "veryComplex":
		return "🔴 VERY COMPLEX"
	default:
		return strings.ToUpper(complexity)
	}
}

// PrintHeuristics displays the formal definitions of the decision heuristics.
// This is a static display that does not require any data loading.
func PrintHeuristics(renderModel *schema.HeuristicsRenderModel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return printHeuristicsJSON(renderModel, cfg)
	case schema.CSVOut:
		return printHeuristicsCSV(renderModel, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printHeuristicsText(w, renderModel)
		}, "Wrote text")
	}
}

// printHeuristicsText displays the heuristics in human-readable text format.
func printHeuristicsText(w io.Writer, renderModel *schema.HeuristicsRenderModel) error {
	if _, err := fmt.Fprintf(w, "📐 %s\n", renderModel.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", strings.Repeat("=", len([]rune(renderModel.Title))+3)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.Description); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	for _, bucket := range renderModel.Buckets {
		// Add emoji prefix for display
		displayName := getDisplayNameForBucket(string(bucket.Complexity))
		if _, err := fmt.Fprintf(w, "%s: %s items / %s categories\n", displayName, bucket.GenericRange, bucket.CategoricalRange); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Confidence: %.2f\n", bucket.Confidence); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Charts: %s fallback, %s categorical\n", bucket.FallbackChart, bucket.CategoricalChart); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "🔬 Pattern Detectors\n"); err != nil {
		return err
	}
	for _, detector := range renderModel.Detectors {
		if _, err := fmt.Fprintf(w, "%s: %s\n", detector.Name, detector.Signal); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Parameters: %s\n", strings.Join(detector.Parameters, ", ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Effect: %s\n", detector.Effect); err != nil {
			return err
		}
	}

	if len(renderModel.Notes) > 0 {
		if _, err := fmt.Fprintf(w, "\n🔗 Notes\n"); err != nil {
			return err
		}
		noteKeys := make([]string, 0, len(renderModel.Notes))
		for k := range renderModel.Notes {
			noteKeys = append(noteKeys, k)
		}
		slices.Sort(noteKeys)
		for _, key := range noteKeys {
			if _, err := fmt.Fprintf(w, "%s\n", renderModel.Notes[key]); err != nil {
				return err
			}
		}
	}

	return nil
}

// printHeuristicsJSON displays the heuristics in JSON format.
func printHeuristicsJSON(renderModel *schema.HeuristicsRenderModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, renderModel)
	}, "Wrote JSON")
}

// printHeuristicsCSV displays the heuristics in CSV format.
func printHeuristicsCSV(renderModel *schema.HeuristicsRenderModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		writer := csv.NewWriter(w)
		defer writer.Flush()
		return writeCSVHeuristics(writer, renderModel)
	}, "Wrote CSV")
}

// writeCSVHeuristics writes the complexity buckets in CSV format.
func writeCSVHeuristics(w *csv.Writer, renderModel *schema.HeuristicsRenderModel) error {
	// Write header
	header := []string{"Complexity", "Generic Range", "Categorical Range", "Confidence", "Fallback Chart", "Categorical Chart"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write each bucket
	for _, bucket := range renderModel.Buckets {
		record := []string{
			string(bucket.Complexity),
			bucket.GenericRange,
			bucket.CategoricalRange,
			fmt.Sprintf("%.2f", bucket.Confidence),
			string(bucket.FallbackChart),
			string(bucket.CategoricalChart),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	return nil
}
