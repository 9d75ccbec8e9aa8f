package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"model-serving-service/internal/domain"
)

// ModelTrainer fits a classifier on a dataset and packages it with metadata.
type ModelTrainer interface {
	Train(ds *domain.Dataset, seed int64) (*domain.TrainedArtifact, error)
}

// SynthesizeFunc generates a labeled dataset from its configuration.
type SynthesizeFunc func(domain.DatasetConfig) (*domain.Dataset, error)

// Config carries the lifecycle manager's fixed inputs: the dataset shape to
// synthesize, where artifacts live on disk, and the persistence I/O bound.
type Config struct {
	Dataset        domain.DatasetConfig
	ModelPath      string
	DataPath       string
	PersistTimeout time.Duration
}

// Manager owns the single live model. It loads or trains an artifact on
// startup and atomically replaces it on retrain. Readers take lock-free
// snapshots of the live handle; a snapshot stays valid for the whole request
// even if a retrain swaps the handle mid-flight.
type Manager struct {
	store   domain.ArtifactStore
	trainer ModelTrainer
	synth   SynthesizeFunc
	cfg     Config

	live    atomic.Pointer[domain.TrainedArtifact]
	retrain sync.Mutex
}

func NewManager(store domain.ArtifactStore, trainer ModelTrainer, synth SynthesizeFunc, cfg Config) *Manager {
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = 10 * time.Second
	}
	return &Manager{store: store, trainer: trainer, synth: synth, cfg: cfg}
}

// Initialize loads the artifact at the configured path, or synthesizes and
// trains a fresh one when none exists. On failure the manager stays in a
// degraded no-model state and the error is returned for logging; the process
// keeps serving and a later /retrain can recover.
func (m *Manager) Initialize(ctx context.Context) error {
	artifact, err := m.loadModel(ctx)
	if err == nil {
		m.live.Store(artifact)
		log.WithFields(log.Fields{
			"path":     m.cfg.ModelPath,
			"accuracy": artifact.Meta.Accuracy,
		}).Info("model loaded")
		return nil
	}
	if !errors.Is(err, domain.ErrArtifactNotFound) {
		return fmt.Errorf("load model: %w", err)
	}

	log.Info("no existing model found, training a new one")
	return m.Retrain(ctx)
}

// Current returns the live artifact, or nil when no model is ready.
func (m *Manager) Current() *domain.TrainedArtifact {
	return m.live.Load()
}

// Retrain runs the synthesize, train, persist pipeline unconditionally and
// swaps the live handle only after every step succeeds. On any failure the
// previously live artifact, if any, stays in place.
func (m *Manager) Retrain(ctx context.Context) error {
	m.retrain.Lock()
	defer m.retrain.Unlock()

	runID := uuid.New().String()
	logger := log.WithField("run_id", runID)
	logger.Info("training pipeline started")

	ds, err := m.synth(m.cfg.Dataset)
	if err != nil {
		return fmt.Errorf("synthesize dataset: %w", err)
	}

	artifact, err := m.trainer.Train(ds, m.cfg.Dataset.Seed)
	if err != nil {
		return fmt.Errorf("train model: %w", err)
	}

	if err := m.saveModel(ctx, artifact); err != nil {
		return fmt.Errorf("persist model: %w", err)
	}
	if err := m.saveDataset(ctx, ds); err != nil {
		return fmt.Errorf("persist dataset: %w", err)
	}

	m.live.Store(artifact)
	logger.WithFields(log.Fields{
		"accuracy":     artifact.Meta.Accuracy,
		"n_estimators": artifact.Meta.Estimators,
	}).Info("live model replaced")
	return nil
}

func (m *Manager) loadModel(ctx context.Context) (*domain.TrainedArtifact, error) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.PersistTimeout)
	defer cancel()
	return m.store.LoadModel(ctx, m.cfg.ModelPath)
}

func (m *Manager) saveModel(ctx context.Context, artifact *domain.TrainedArtifact) error {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.PersistTimeout)
	defer cancel()
	return m.store.SaveModel(ctx, artifact, m.cfg.ModelPath)
}

func (m *Manager) saveDataset(ctx context.Context, ds *domain.Dataset) error {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.PersistTimeout)
	defer cancel()
	return m.store.SaveDataset(ctx, ds, m.cfg.DataPath)
}
