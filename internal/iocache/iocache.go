// Package iocache is for caching I/O calls.
package iocache

import (
	"sync"

	"github.com/facetkit/facet/internal/contract"
)

// CacheStoreManager manages multiple store instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	dataset      contract.CacheStore
	decision     contract.DecisionStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetDatasetStore returns the dataset CacheStore.
func (mgr *CacheStoreManager) GetDatasetStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.dataset
}

// GetDecisionStore returns the decision DecisionStore.
func (mgr *CacheStoreManager) GetDecisionStore() contract.DecisionStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.decision
}
