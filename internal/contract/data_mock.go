package contract

import (
	"context"

	"github.com/facetkit/facet/schema"
	"github.com/stretchr/testify/mock"
)

// MockDataClient is a mock implementation of the DataClient interface for testing.
type MockDataClient struct {
	mock.Mock
}

var _ DataClient = &MockDataClient{} // Compile-time check

// LoadDatasets implements the contract.DataClient interface.
func (m *MockDataClient) LoadDatasets(ctx context.Context, path string) ([]schema.NamedDataset, error) {
	ret := m.Called(ctx, path)
	datasets, _ := ret.Get(0).([]schema.NamedDataset)
	return datasets, ret.Error(1)
}

// Fingerprint implements the contract.DataClient interface.
func (m *MockDataClient) Fingerprint(path string) (string, error) {
	ret := m.Called(path)
	token, _ := ret.Get(0).(string)
	return token, ret.Error(1)
}
