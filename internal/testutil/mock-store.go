package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"model-serving-service/internal/domain"
)

// MockArtifactStore is a mock of domain.ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) SaveModel(ctx context.Context, artifact *domain.TrainedArtifact, path string) error {
	args := m.Called(ctx, artifact, path)
	return args.Error(0)
}

func (m *MockArtifactStore) SaveDataset(ctx context.Context, dataset *domain.Dataset, path string) error {
	args := m.Called(ctx, dataset, path)
	return args.Error(0)
}

func (m *MockArtifactStore) LoadModel(ctx context.Context, path string) (*domain.TrainedArtifact, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainedArtifact), args.Error(1)
}

// MockTrainer is a mock of the lifecycle manager's ModelTrainer dependency.
type MockTrainer struct {
	mock.Mock
}

func (m *MockTrainer) Train(ds *domain.Dataset, seed int64) (*domain.TrainedArtifact, error) {
	args := m.Called(ds, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainedArtifact), args.Error(1)
}
