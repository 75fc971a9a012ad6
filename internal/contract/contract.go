// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/facetkit/facet/schema"
)

// DataClient defines the necessary operations for loading datasets from disk.
// This allows the core decision logic to be tested without touching the filesystem.
type DataClient interface {
	// --- Loading ---

	// LoadDatasets reads a data file (CSV or JSON) and returns the named
	// datasets it contains, one per column or document shape.
	LoadDatasets(ctx context.Context, path string) ([]schema.NamedDataset, error)

	// --- Change Detection ---

	// Fingerprint returns a cheap change token for a data file, derived from
	// file metadata rather than content. Two calls return the same token as
	// long as the file has not been replaced or rewritten.
	Fingerprint(path string) (string, error)
}

// CacheManager defines the interface for managing persistent stores.
// This allows the storage layer to be mocked for testing.
type CacheManager interface {
	GetDatasetStore() CacheStore
	GetDecisionStore() DecisionStore
}

// CacheStore defines the interface for dataset cache storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// DecisionStore defines the interface for tracking analysis runs and the
// decisions they produced.
type DecisionStore interface {
	// BeginRun creates a new decision run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// RecordDecisions stores the per-dataset decisions made during a run
	RecordDecisions(runID int64, decisions []schema.DatasetDecision) error

	// EndRun updates the decision run with completion data
	EndRun(runID int64, endTime time.Time, totalDatasets int) error

	// GetAllDecisionRuns retrieves every decision run, oldest first
	GetAllDecisionRuns() ([]schema.DecisionRunRecord, error)

	// GetAllDatasetDecisions retrieves every recorded decision, oldest run first
	GetAllDatasetDecisions() ([]schema.DatasetDecisionRecord, error)

	// GetStatus returns status information about the decision store
	GetStatus() (schema.DecisionStatus, error)

	// Close closes the underlying connection
	Close() error
}
