package contract

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/facetkit/facet/schema"
)

// NumericColumnRatio is the share of non-empty cells that must parse as
// numbers before a column is treated as a numeric sequence instead of a
// categorical value set.
const NumericColumnRatio = 0.8

// LocalDataClient implements the DataClient interface by reading data files
// from the local filesystem.
type LocalDataClient struct{}

var _ DataClient = &LocalDataClient{} // Compile-time check

// NewLocalDataClient creates a new instance of the local data client.
func NewLocalDataClient() *LocalDataClient {
	return &LocalDataClient{}
}

// LoadDatasets reads a data file and returns its named datasets. The file
// format is chosen by extension: .csv parses one dataset per column, .json
// parses one or more datasets depending on the document shape.
func (c *LocalDataClient) LoadDatasets(ctx context.Context, path string) ([]schema.NamedDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSVDatasets(path)
	case ".json":
		return loadJSONDatasets(path)
	default:
		return nil, fmt.Errorf("unsupported data file %q: expected a .csv or .json extension", path)
	}
}

// Fingerprint implements the DataClient interface. The token combines the
// cleaned path with the file's size and mtime, so edits and replacements both
// change it without reading any content.
func (c *LocalDataClient) Fingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot stat data file: %w", err)
	}
	return fmt.Sprintf("%s|%d|%d", filepath.Clean(path), info.Size(), info.ModTime().UnixNano()), nil
}

// loadCSVDatasets parses a CSV file into one dataset per column. The first
// row is the header; every later row contributes one cell per column.
func loadCSVDatasets(path string) ([]schema.NamedDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open data file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // Ragged rows are tolerated; short rows simply lack cells
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSV file %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file %q has no header row", path)
	}

	header := records[0]
	datasets := make([]schema.NamedDataset, 0, len(header))
	for col, name := range header {
		cells := make([]string, 0, len(records)-1)
		for _, row := range records[1:] {
			if col >= len(row) {
				continue
			}
			if cell := strings.TrimSpace(row[col]); cell != "" {
				cells = append(cells, cell)
			}
		}
		datasets = append(datasets, classifyColumn(strings.TrimSpace(name), path, cells))
	}

	return datasets, nil
}

// classifyColumn turns one column of non-empty cells into a named dataset:
// numeric when at least NumericColumnRatio of the cells parse as floats
// (keeping parsed values in row order), categorical otherwise.
func classifyColumn(name, source string, cells []string) schema.NamedDataset {
	values := make([]float64, 0, len(cells))
	for _, cell := range cells {
		if v, err := strconv.ParseFloat(cell, 64); err == nil {
			values = append(values, v)
		}
	}

	named := schema.NamedDataset{Name: name, Source: source}
	if len(cells) > 0 && float64(len(values)) >= NumericColumnRatio*float64(len(cells)) {
		named.Dataset = schema.NumericDataset(values)
		return named
	}

	categories := make(map[string]int, len(cells))
	for _, cell := range cells {
		categories[cell]++
	}
	named.Dataset = schema.CategoricalDataset(categories)
	return named
}

// loadJSONDatasets parses a JSON file by top-level shape: an array of numbers
// becomes one numeric dataset, an object of label counts becomes one
// categorical dataset, an array of objects becomes per-key columns, and any
// other array becomes a counted dataset.
func loadJSONDatasets(path string) ([]schema.NamedDataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open data file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON file %q: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch v := doc.(type) {
	case []any:
		return loadJSONArray(v, stem, path)
	case map[string]any:
		return loadJSONObject(v, stem, path)
	default:
		return nil, fmt.Errorf("unsupported JSON shape in %q: expected a top-level array or object", path)
	}
}

// loadJSONArray classifies a top-level JSON array: all numbers make one
// numeric dataset, all objects make per-key columns, anything else counts.
func loadJSONArray(items []any, stem, path string) ([]schema.NamedDataset, error) {
	values := make([]float64, 0, len(items))
	objects := 0
	for _, item := range items {
		switch it := item.(type) {
		case float64:
			values = append(values, it)
		case map[string]any:
			objects++
		}
	}

	if len(items) > 0 && len(values) == len(items) {
		return []schema.NamedDataset{{
			Name:    stem,
			Source:  path,
			Dataset: schema.NumericDataset(values),
		}}, nil
	}

	if len(items) > 0 && objects == len(items) {
		return loadJSONRecords(items, path)
	}

	return []schema.NamedDataset{{
		Name:    stem,
		Source:  path,
		Dataset: schema.CountedDataset(len(items)),
	}}, nil
}

// loadJSONRecords flattens an array of objects into per-key columns, each
// classified like a CSV column. Keys are sorted so dataset order is stable.
func loadJSONRecords(items []any, path string) ([]schema.NamedDataset, error) {
	columns := map[string][]string{}
	for _, item := range items {
		record := item.(map[string]any)
		for key, value := range record {
			cell := jsonCell(value)
			if cell == "" {
				continue
			}
			columns[key] = append(columns[key], cell)
		}
	}

	keys := make([]string, 0, len(columns))
	for key := range columns {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	datasets := make([]schema.NamedDataset, 0, len(keys))
	for _, key := range keys {
		datasets = append(datasets, classifyColumn(key, path, columns[key]))
	}
	return datasets, nil
}

// loadJSONObject reads a label to count mapping into one categorical dataset.
func loadJSONObject(doc map[string]any, stem, path string) ([]schema.NamedDataset, error) {
	categories := make(map[string]int, len(doc))
	for label, value := range doc {
		count, ok := value.(float64)
		if !ok || count != math.Trunc(count) || count < 0 {
			return nil, fmt.Errorf("JSON object in %q is not a label to count mapping: value for %q is not a non-negative integer", path, label)
		}
		categories[label] = int(count)
	}

	return []schema.NamedDataset{{
		Name:    stem,
		Source:  path,
		Dataset: schema.CategoricalDataset(categories),
	}}, nil
}

// jsonCell renders a scalar JSON value the way it would appear in a CSV cell.
// Nested arrays and objects yield an empty string and are skipped.
func jsonCell(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
