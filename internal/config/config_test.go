package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"model-serving-service/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.False(t, cfg.Server.Debug)

	assert.Equal(t, int64(42), cfg.Dataset.Seed)
	assert.Equal(t, 1000, cfg.Dataset.Samples)
	assert.Equal(t, 4, cfg.Dataset.Features)
	assert.Equal(t, 0.1, cfg.Dataset.NoiseLevel)

	assert.Equal(t, 100, cfg.Model.Estimators)
	assert.Equal(t, int64(42), cfg.Model.RandomState)
	assert.Equal(t, 10, cfg.Model.MaxDepth)
	assert.Equal(t, 2, cfg.Model.MinSamplesSplit)
	assert.Equal(t, 1, cfg.Model.MinSamplesLeaf)

	assert.Equal(t, "models/model.json", cfg.Storage.ModelPath)
	assert.Equal(t, "data/dataset.csv", cfg.Storage.DataPath)
	assert.Equal(t, 10*time.Second, cfg.Storage.PersistTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("N_FEATURES", "6")
	t.Setenv("N_ESTIMATORS", "50")
	t.Setenv("MODEL_PATH", "/tmp/m.json")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 6, cfg.Dataset.Features)
	assert.Equal(t, 50, cfg.Model.Estimators)
	assert.Equal(t, "/tmp/m.json", cfg.Storage.ModelPath)
}

func TestLoad_InvalidShapeFatal(t *testing.T) {
	t.Setenv("N_SAMPLES", "0")

	_, err := Load()
	assert.ErrorIs(t, err, domain.ErrInvalidShape)
}

func TestLoad_InvalidHyperparamsFatal(t *testing.T) {
	t.Setenv("MAX_DEPTH", "0")

	_, err := Load()
	assert.ErrorIs(t, err, domain.ErrInvalidHyperparam)
}
