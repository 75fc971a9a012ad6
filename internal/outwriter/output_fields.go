package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintFieldOrder outputs a resolved field order, dispatching based on the
// output format configured.
func PrintFieldOrder(decision schema.FieldOrderDecision, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, decision)
		}, "Wrote JSON")
		if err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForFieldOrder(csvWriter, decision)
		}, "Wrote CSV")
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFieldOrderTable(decision, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeFieldOrderTable generates and writes the human-readable table.
func writeFieldOrderTable(decision schema.FieldOrderDecision, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Position", "Field"}
	showGroups := len(decision.GroupOf) > 0
	if showGroups {
		headers = append(headers, "Group")
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, field := range decision.Order {
		row := []string{strconv.Itoa(i + 1), field}
		if showGroups {
			row = append(row, decision.GroupOf[field])
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
	trait := string(decision.Trait)
	if trait == "" {
		trait = "none"
	}
	if _, err := fmt.Fprintf(writer, "Resolved %d fields (trait: %s)\n", len(decision.Order), trait); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Resolution completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForFieldOrder writes the resolved order in CSV format.
func writeCSVResultsForFieldOrder(w *csv.Writer, decision schema.FieldOrderDecision) error {
	header := []string{"position", "field", "group"}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, field := range decision.Order {
		row := []string{
			strconv.Itoa(i + 1),     // Position
			field,                   // Field ID
			decision.GroupOf[field], // Group ID, empty when ungrouped
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
