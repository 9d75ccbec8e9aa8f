package domain

import "context"

// ArtifactStore persists trained artifacts and their companion datasets as
// opaque blobs at named locations. LoadModel returns ErrArtifactNotFound when
// nothing exists at the path; every other failure is an I/O error surfaced to
// the caller.
type ArtifactStore interface {
	SaveModel(ctx context.Context, artifact *TrainedArtifact, path string) error
	SaveDataset(ctx context.Context, dataset *Dataset, path string) error
	LoadModel(ctx context.Context, path string) (*TrainedArtifact, error)
}
