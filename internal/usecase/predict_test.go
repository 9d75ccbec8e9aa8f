package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"model-serving-service/internal/domain"
	"model-serving-service/internal/testutil"
)

type liveStub struct {
	artifact *domain.TrainedArtifact
}

func (s *liveStub) Current() *domain.TrainedArtifact {
	return s.artifact
}

func TestPredict_Success(t *testing.T) {
	artifact := testutil.Artifact(&testutil.StubClassifier{Label: 1, Probability: 0.87, NFeatures: 4, NEstimators: 100}, 0.95)
	uc := NewPredictionUseCase(&liveStub{artifact: artifact})

	features := []float64{0.5, -0.3, 0.8, -0.1}
	p, err := uc.Predict(features)
	assert.NoError(t, err)
	assert.Equal(t, 1, p.Label)
	assert.Equal(t, 0.87, p.Probability)
	assert.Equal(t, features, p.Features)
}

func TestPredict_NoFeatures(t *testing.T) {
	uc := NewPredictionUseCase(&liveStub{})

	_, err := uc.Predict(nil)
	assert.ErrorIs(t, err, domain.ErrNoFeatures)

	_, err = uc.Predict([]float64{})
	assert.ErrorIs(t, err, domain.ErrNoFeatures)
}

func TestPredict_ModelNotReady(t *testing.T) {
	uc := NewPredictionUseCase(&liveStub{})

	_, err := uc.Predict([]float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, domain.ErrModelNotReady)
}

func TestPredict_ClassifierFailure(t *testing.T) {
	artifact := testutil.Artifact(&testutil.StubClassifier{Err: errors.New("expected 4 features, got 2"), NFeatures: 4}, 0.9)
	uc := NewPredictionUseCase(&liveStub{artifact: artifact})

	_, err := uc.Predict([]float64{1, 2})
	assert.ErrorIs(t, err, domain.ErrPrediction)
	assert.Contains(t, err.Error(), "expected 4 features")
}

func TestModelInfo(t *testing.T) {
	artifact := testutil.Artifact(&testutil.StubClassifier{NFeatures: 4, NEstimators: 100}, 0.95)
	uc := NewPredictionUseCase(&liveStub{artifact: artifact})

	meta, err := uc.ModelInfo()
	assert.NoError(t, err)
	assert.Equal(t, "RandomForestClassifier", meta.ModelType)
	assert.Equal(t, 4, meta.FeaturesIn)
	assert.Equal(t, 100, meta.Estimators)
}

func TestModelInfo_NotReady(t *testing.T) {
	uc := NewPredictionUseCase(&liveStub{})

	_, err := uc.ModelInfo()
	assert.ErrorIs(t, err, domain.ErrModelNotReady)
}
