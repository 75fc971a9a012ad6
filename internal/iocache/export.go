package iocache

import (
	"errors"
	"fmt"

	"github.com/facetkit/facet/internal/parquet"
)

// ExecuteDecisionExport performs the actual export of decision history to Parquet files.
func ExecuteDecisionExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the decision store
	store := Manager.GetDecisionStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get decision status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no decision data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total decision runs: %d\n", status.TotalRuns)
	fmt.Printf("Total decision records: %d\n", status.TableSizes["facet_dataset_decisions"])

	// Retrieve all decision runs
	decisionRuns, err := store.GetAllDecisionRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve decision runs: %w", err)
	}

	// Retrieve all dataset decisions
	datasetDecisions, err := store.GetAllDatasetDecisions()
	if err != nil {
		return fmt.Errorf("failed to retrieve dataset decisions: %w", err)
	}

	// Convert to Parquet format
	parquetDecisionRuns := parquet.ConvertDecisionRunRecords(decisionRuns)
	parquetDatasetDecisions := parquet.ConvertDatasetDecisionRecords(datasetDecisions)

	// Write decision runs to Parquet
	decisionRunsFile := outputFile + ".decision_runs.parquet"
	if err := parquet.WriteDecisionRunsParquet(parquetDecisionRuns, decisionRunsFile); err != nil {
		return fmt.Errorf("failed to write decision runs: %w", err)
	}
	fmt.Printf("Exported %d decision runs to: %s\n", len(parquetDecisionRuns), decisionRunsFile)

	// Write dataset decisions to Parquet
	datasetDecisionsFile := outputFile + ".dataset_decisions.parquet"
	if err := parquet.WriteDatasetDecisionsParquet(parquetDatasetDecisions, datasetDecisionsFile); err != nil {
		return fmt.Errorf("failed to write dataset decisions: %w", err)
	}
	fmt.Printf("Exported %d dataset decision records to: %s\n", len(parquetDatasetDecisions), datasetDecisionsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
