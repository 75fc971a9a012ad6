// Package main provides a comprehensive performance benchmarking tool for the Facet CLI.
// It measures execution times across different data file sizes and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - facet binary installed and available in PATH
// - A writable base directory; missing data files are generated on the fly
//
// Usage: go run benchmark/main.go [data-base-dir]
//
//	data-base-dir: Directory holding the generated benchmark data files
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset     string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	DataBase     string
	Timeout      time.Duration
	Workers      int
	NoCacheRuns  int
	CacheRuns    int
	TestDatasets []string
	DatasetRows  map[string]int
	DatasetCols  map[string]int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [data-base-dir]\n", os.Args[0])
		os.Exit(1)
	}
	dataBase := os.Args[1]

	config := BenchmarkConfig{
		DataBase:     dataBase,
		Timeout:      5 * time.Minute,
		Workers:      8,
		NoCacheRuns:  3,
		CacheRuns:    4,
		TestDatasets: []string{"small", "medium", "large", "huge"},
		DatasetRows: map[string]int{
			"small":  100,
			"medium": 5_000,
			"large":  50_000,
			"huge":   500_000,
		},
		DatasetCols: map[string]int{
			"small":  5,
			"medium": 10,
			"large":  20,
			"huge":   40,
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the cache using facet cache clear
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("facet", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies the facet binary exists and generates any missing data files.
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if facet is available
	if _, err := exec.LookPath("facet"); err != nil {
		return fmt.Errorf("facet binary not found in PATH")
	}

	if err := os.MkdirAll(config.DataBase, 0o755); err != nil {
		return fmt.Errorf("cannot create data directory %s: %w", config.DataBase, err)
	}

	// Generate data files that don't exist yet. Each dataset gets a base
	// file and a variant with extra rows and one extra column for compare.
	for _, name := range config.TestDatasets {
		rows := config.DatasetRows[name]
		cols := config.DatasetCols[name]

		basePath := filepath.Join(config.DataBase, name+".csv")
		if err := ensureDataFile(basePath, rows, cols); err != nil {
			return err
		}
		variantPath := filepath.Join(config.DataBase, name+"_v2.csv")
		if err := ensureDataFile(variantPath, rows+rows/10, cols+1); err != nil {
			return err
		}
	}

	return nil
}

// ensureDataFile generates a deterministic CSV at path unless it already exists.
func ensureDataFile(path string, rows, cols int) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create data file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Header: one even sequence, numeric columns, one label column.
	header := make([]string, 0, cols)
	header = append(header, "seq")
	for c := 0; c < cols-2; c++ {
		header = append(header, fmt.Sprintf("metric_%02d", c))
	}
	header = append(header, "category")
	if err := writer.Write(header); err != nil {
		return err
	}

	// Simple LCG keeps the values deterministic across runs.
	state := uint64(42)
	next := func() uint64 {
		state = state*6364136223846793005 + 1442695040888963407
		return state >> 33
	}

	labels := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	record := make([]string, len(header))
	for r := 0; r < rows; r++ {
		record[0] = strconv.Itoa(10 * (r + 1))
		for c := 1; c < len(header)-1; c++ {
			record[c] = strconv.FormatUint(next()%100_000, 10)
		}
		record[len(header)-1] = labels[next()%uint64(len(labels))]
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured data files.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d workers, no-cache: %d runs, cache: %d runs\n",
		len(config.TestDatasets), config.Timeout, config.Workers, config.NoCacheRuns, config.CacheRuns)

	for _, name := range config.TestDatasets {
		fmt.Printf("Benchmarking %s\n", name)

		baseFile := name + ".csv"
		variantFile := name + "_v2.csv"

		// Analyze
		result := runBenchmarkSuite(config, name, "analyze", "analyze", baseFile)
		results = append(results, result)

		// Compare against the variant
		desc := fmt.Sprintf("compare (%s -> %s)", baseFile, variantFile)
		result = runBenchmarkSuite(config, name, "compare", desc, baseFile+" "+variantFile)
		results = append(results, result)

		// Field order resolution from the file's columns
		result = runBenchmarkSuite(config, name, "fields", "fields resolution", baseFile)
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, dataset, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, dataset)

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, command, extraArgs, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:     dataset,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a facet command multiple times with specified cache backend and returns cold time and warm times.
func runBenchmark(config BenchmarkConfig, command, extraArgs, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command}
	if extraArgs != "" {
		args = append(args, parseArgs(extraArgs)...)
	}
	args = append(args, "--cache-backend", cacheBackend)
	args = append(args, "--workers", strconv.Itoa(config.Workers))

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("facet", args...)
		cmd.Dir = config.DataBase

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

func parseArgs(argsStr string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range argsStr {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes && current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			} else if inQuotes {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// isSuccess checks if command output indicates successful completion.
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	var completionPhrase string
	switch command {
	case "compare":
		completionPhrase = "Comparison completed in"
	case "fields":
		completionPhrase = "Resolution completed in"
	default:
		completionPhrase = "Analysis completed in"
	}

	return strings.Contains(outputStr, completionPhrase)
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/facet_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "analyze", "Analyze:")
	printCommandSummary(results, "compare", "Compare:")
	printCommandSummary(results, "fields", "Fields:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type.
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-cache: %s, Cold: %s, Warm: %s\n", result.Dataset, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}
