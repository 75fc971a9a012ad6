package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"
)

// datasetTable is the name of the table for dataset caching.
const datasetTable = "facet_dataset_cache"

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for dataset cache storage.
func GetDBFilePath() string {
	return contract.GetCacheDBFilePath()
}

// GetDecisionsDBFilePath returns the path to the SQLite DB file for decision storage.
func GetDecisionsDBFilePath() string {
	return contract.GetDecisionsDBFilePath()
}

// InitCaching initializes the global cache manager with separate dataset and decision stores.
// cacheBackend and cacheConnStr can be empty to disable cache initialization.
// decisionsBackend and decisionsConnStr can be empty to disable decision tracking.
func InitCaching(cacheBackend schema.DatabaseBackend, cacheConnStr string, decisionsBackend schema.DatabaseBackend, decisionsConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var err error

		// Initialize Dataset Cache Store only if backend is configured
		var datasetCacheStore contract.CacheStore
		if cacheBackend != "" {
			datasetCacheStore, err = NewCacheStore(datasetTable, cacheBackend, cacheConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize dataset caching: %w", err)
				return
			}
		}

		// Initialize Decision Store only if backend is configured
		var decisionStore contract.DecisionStore
		if decisionsBackend != "" {
			decisionStore, err = NewDecisionStore(decisionsBackend, decisionsConnStr)
			if err != nil {
				if datasetCacheStore != nil {
					_ = datasetCacheStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize decision store: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.dataset = datasetCacheStore
		Manager.decision = decisionStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseCaching should be called on application shutdown.
func CloseCaching() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.dataset != nil {
			_ = Manager.dataset.Close()
		}
		if Manager.decision != nil {
			_ = Manager.decision.Close()
		}
	})
}

// ClearCache clears the dataset cache for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, datasetTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, datasetTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported cache backend for clearing: %s", backend)
	}
}

// ClearDecisions clears the decision history for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the decision tables.
// For NoneBackend, it does nothing.
func ClearDecisions(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		// Clear decision tables
		tables := []string{decisionRunsTable, datasetDecisionsTable}
		for _, table := range tables {
			if err := clearSQLTable("mysql", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.PostgreSQLBackend:
		// Clear decision tables
		tables := []string{decisionRunsTable, datasetDecisionsTable}
		for _, table := range tables {
			if err := clearSQLTable("pgx", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported decisions backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
