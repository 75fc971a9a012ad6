package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"
)

// PrintCheckResult outputs the policy check verdict, dispatching based on the
// output format configured. The caller decides the process exit code.
func PrintCheckResult(result *schema.CheckResult, cfg *contract.Config) error {
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
			return writeCSVResultsForCheck(w, result)
		}, "Wrote CSV")
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckText(w, result, cfg)
		}, "Wrote text")
	}
	return nil
}

// writeCheckText renders the verdict in human-readable form.
func writeCheckText(w io.Writer, result *schema.CheckResult, cfg *contract.Config) error {
	verdict := "FAIL"
	glyph := headerGlyph(cfg, "❌ ")
	if result.Passed {
		verdict = "PASS"
		glyph = headerGlyph(cfg, "✅ ")
	}

	switch {
	case result.Passed && result.TotalDatasets == 0:
		// Hints-only run with nothing to gate on
		if _, err := fmt.Fprintf(w, "%s%s: no problems found\n", glyph, verdict); err != nil {
			return err
		}
	case result.Passed:
		if _, err := fmt.Fprintf(w, "%s%s: all %d datasets at or above confidence %.2f\n", glyph, verdict, result.TotalDatasets, result.MinConfidence); err != nil {
			return err
		}
	case len(result.Violations) == 0:
		// Failure driven by hints findings alone
		if _, err := fmt.Fprintf(w, "%s%s: hints issues found\n", glyph, verdict); err != nil {
			return err
		}
	default:
		if _, err := fmt.Fprintf(w, "%s%s: %d violation(s) found\n", glyph, verdict, len(result.Violations)); err != nil {
			return err
		}
		for _, v := range result.Violations {
			if _, err := fmt.Fprintf(w, "  - %s: confidence %.2f below %.2f (%s)\n", v.Dataset, v.Confidence, v.Threshold, v.Complexity); err != nil {
				return err
			}
		}
	}

	if len(result.HintsIssues) > 0 {
		if _, err := fmt.Fprintf(w, "Hints issues:\n"); err != nil {
			return err
		}
		for _, issue := range result.HintsIssues {
			if _, err := fmt.Fprintf(w, "  - %s\n", issue); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "Checked %d datasets and %d fields\n", result.TotalDatasets, result.TotalFields); err != nil {
		return err
	}
	if result.TotalDatasets > 0 {
		if _, err := fmt.Fprintf(w, "Average confidence: %.2f, lowest: %.2f (%s)\n", result.AvgConfidence, result.LowestConfidence, result.LowestDataset); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVResultsForCheck writes one row per violation, so a passing check
// yields a header-only file.
func writeCSVResultsForCheck(w io.Writer, result *schema.CheckResult) error {
	header := []string{"dataset", "confidence", "threshold", "complexity"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, v := range result.Violations {
			row := []string{
				v.Dataset,
				strconv.FormatFloat(v.Confidence, 'f', 2, 64),
				strconv.FormatFloat(v.Threshold, 'f', 2, 64),
				string(v.Complexity),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
