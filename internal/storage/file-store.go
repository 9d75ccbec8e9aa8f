package storage

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"model-serving-service/internal/domain"
	"model-serving-service/internal/ml"
)

// FileStore persists artifacts on the local filesystem: the model as a JSON
// envelope (metadata plus forest), the dataset as CSV with a
// feature_0..feature_{n-1},target header. Parent directories are created on
// write.
type FileStore struct{}

func NewFileStore() *FileStore {
	return &FileStore{}
}

type modelEnvelope struct {
	Metadata domain.ModelMetadata `json:"metadata"`
	Model    *ml.RandomForest     `json:"model"`
}

func (s *FileStore) SaveModel(ctx context.Context, artifact *domain.TrainedArtifact, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	forest, ok := artifact.Classifier.(*ml.RandomForest)
	if !ok {
		return fmt.Errorf("unsupported classifier type %T", artifact.Classifier)
	}

	payload, err := json.Marshal(modelEnvelope{Metadata: artifact.Meta, Model: forest})
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}

	return runBounded(ctx, func() error {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create model dir: %w", err)
		}
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return fmt.Errorf("write model: %w", err)
		}
		return nil
	})
}

// runBounded runs fn but returns as soon as the context expires, so a stuck
// disk never holds the caller past its deadline. A timed-out fn finishes in
// the background and its result is discarded.
func runBounded(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *FileStore) SaveDataset(ctx context.Context, dataset *domain.Dataset, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return runBounded(ctx, func() error {
		return s.writeDataset(dataset, path)
	})
}

func (s *FileStore) writeDataset(dataset *domain.Dataset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	nFeatures := 0
	if dataset.Len() > 0 {
		nFeatures = len(dataset.Rows[0])
	}
	header := make([]string, 0, nFeatures+1)
	for i := 0; i < nFeatures; i++ {
		header = append(header, fmt.Sprintf("feature_%d", i))
	}
	header = append(header, "target")
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write dataset header: %w", err)
	}

	record := make([]string, nFeatures+1)
	for i, row := range dataset.Rows {
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		record[nFeatures] = strconv.Itoa(dataset.Labels[i])
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write dataset row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush dataset: %w", err)
	}
	return nil
}

func (s *FileStore) LoadModel(ctx context.Context, path string) (*domain.TrainedArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var payload []byte
	err := runBounded(ctx, func() error {
		var readErr error
		payload, readErr = os.ReadFile(path)
		return readErr
	})
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrArtifactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	var envelope modelEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if envelope.Model == nil {
		return nil, fmt.Errorf("decode model: no forest in %s", path)
	}
	// A JSON-valid but malformed forest must never become the live model; a
	// broken node graph would fail every prediction after adoption.
	if err := envelope.Model.Validate(); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}

	return &domain.TrainedArtifact{Classifier: envelope.Model, Meta: envelope.Metadata}, nil
}
