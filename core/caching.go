package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// cacheMaxAge is how long a cached dataset entry stays valid.
const cacheMaxAge = 7 * 24 * time.Hour

// cachedLoadDatasets loads the datasets for cfg.DataPath through the dataset
// cache. The bool reports whether the datasets came from the cache.
func cachedLoadDatasets(ctx context.Context, cfg *contract.Config, client contract.DataClient, mgr contract.CacheManager) ([]schema.NamedDataset, bool, error) {
	store := mgr.GetDatasetStore()
	if store == nil || cfg.NoCache {
		// Fallback to direct loading
		datasets, err := client.LoadDatasets(ctx, cfg.DataPath)
		return datasets, false, err
	}

	key := generateCacheKey(cfg, client)

	// Check for cache hit
	if datasets := checkCacheHit(store, key); datasets != nil {
		return datasets, true, nil
	}

	// Cache miss: load and store
	datasets, err := loadAndStore(ctx, cfg, client, store, key)
	return datasets, false, err
}

// checkCacheHit attempts to retrieve and validate a cached result
func checkCacheHit(store contract.CacheStore, key string) []schema.NamedDataset {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= cacheMaxAge {
			var datasets []schema.NamedDataset
			if err := json.Unmarshal(data, &datasets); err == nil {
				return datasets // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// loadAndStore loads the datasets from disk and stores them in cache
func loadAndStore(ctx context.Context, cfg *contract.Config, client contract.DataClient, store contract.CacheStore, key string) ([]schema.NamedDataset, error) {
	datasets, err := client.LoadDatasets(ctx, cfg.DataPath)
	if err != nil {
		return nil, err
	}

	// Store in cache
	if data, err := json.Marshal(datasets); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return datasets, nil
}

// generateCacheKey creates a unique key based on the data file identity.
// The fingerprint invalidates the cache when the file is replaced or rewritten.
func generateCacheKey(cfg *contract.Config, client contract.DataClient) string {
	fingerprint, err := client.Fingerprint(cfg.DataPath)
	if err != nil {
		fingerprint = ""
	}

	key := fmt.Sprintf("%s:%s:%d", cfg.DataPath, fingerprint, currentCacheVersion)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
