package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/collectionshq/collections-in-go/pkg/model"
	"github.com/collectionshq/collections-in-go/pkg/server/store"
)

// MockCollectionsStore implements store.CollectionsStore for testing using testify/mock
type MockCollectionsStore struct {
	mock.Mock
}

func NewMockCollectionsStore() *MockCollectionsStore {
	return &MockCollectionsStore{}
}

func (m *MockCollectionsStore) CreateCollection(params store.CreateCollectionParams) (*model.Collection, *model.Operation, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Collection), args.Get(1).(*model.Operation), args.Error(2)
}

func (m *MockCollectionsStore) GetCollection(collectionID string) (*model.Collection, error) {
	args := m.Called(collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Collection), args.Error(1)
}

func (m *MockCollectionsStore) DeleteCollection(collectionID string, deletedBy string) error {
	args := m.Called(collectionID, deletedBy)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
