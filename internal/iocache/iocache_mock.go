package iocache

import (
	"time"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"
	"github.com/stretchr/testify/mock"
)

// MockCacheManager is a mock implementation of CacheManager for testing.
type MockCacheManager struct {
	mock.Mock
}

var _ contract.CacheManager = &MockCacheManager{} // Compile-time check

// GetDatasetStore implements the CacheManager interface.
func (m *MockCacheManager) GetDatasetStore() contract.CacheStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CacheStore)
	return store
}

// GetDecisionStore implements the CacheManager interface.
func (m *MockCacheManager) GetDecisionStore() contract.DecisionStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.DecisionStore)
	return store
}

// MockCacheStore is a mock implementation of CacheStore for testing.
type MockCacheStore struct {
	mock.Mock
}

var _ contract.CacheStore = &MockCacheStore{} // Compile-time check

// Get implements the CacheStore interface.
func (m *MockCacheStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	return args.Get(0).([]byte), args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the CacheStore interface.
func (m *MockCacheStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// Close implements the CacheStore interface.
func (m *MockCacheStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the CacheStore interface.
func (m *MockCacheStore) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}

// MockDecisionStore is a mock implementation of DecisionStore for testing.
type MockDecisionStore struct {
	mock.Mock
}

var _ contract.DecisionStore = &MockDecisionStore{} // Compile-time check

// BeginRun implements the DecisionStore interface.
func (m *MockDecisionStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// RecordDecisions implements the DecisionStore interface.
func (m *MockDecisionStore) RecordDecisions(runID int64, decisions []schema.DatasetDecision) error {
	args := m.Called(runID, decisions)
	return args.Error(0)
}

// EndRun implements the DecisionStore interface.
func (m *MockDecisionStore) EndRun(runID int64, endTime time.Time, totalDatasets int) error {
	args := m.Called(runID, endTime, totalDatasets)
	return args.Error(0)
}

// GetAllDecisionRuns implements the DecisionStore interface.
func (m *MockDecisionStore) GetAllDecisionRuns() ([]schema.DecisionRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.DecisionRunRecord)
	return runs, args.Error(1)
}

// GetAllDatasetDecisions implements the DecisionStore interface.
func (m *MockDecisionStore) GetAllDatasetDecisions() ([]schema.DatasetDecisionRecord, error) {
	args := m.Called()
	decisions, _ := args.Get(0).([]schema.DatasetDecisionRecord)
	return decisions, args.Error(1)
}

// GetStatus implements the DecisionStore interface.
func (m *MockDecisionStore) GetStatus() (schema.DecisionStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.DecisionStatus), args.Error(1)
}

// Close implements the DecisionStore interface.
func (m *MockDecisionStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
