package usecase

import (
	"fmt"

	"model-serving-service/internal/domain"
)

// LiveModel exposes the current artifact; nil means not ready.
type LiveModel interface {
	Current() *domain.TrainedArtifact
}

// Prediction is the outcome of classifying one feature vector. Features
// echoes the input back to the caller.
type Prediction struct {
	Label       int
	Probability float64
	Features    []float64
}

// PredictionUseCase validates feature vectors and classifies them against
// the live model. It never mutates shared state: the artifact snapshot taken
// at the start of a call serves the whole call.
type PredictionUseCase struct {
	live LiveModel
}

func NewPredictionUseCase(live LiveModel) *PredictionUseCase {
	return &PredictionUseCase{live: live}
}

// Predict classifies a single feature vector. The vector must be non-empty;
// length mismatches against the model's dimensionality are left to the
// classifier and surface as ErrPrediction.
func (uc *PredictionUseCase) Predict(features []float64) (*Prediction, error) {
	if len(features) == 0 {
		return nil, domain.ErrNoFeatures
	}

	artifact := uc.live.Current()
	if artifact == nil {
		return nil, domain.ErrModelNotReady
	}

	label, probability, err := artifact.Classifier.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPrediction, err)
	}

	return &Prediction{Label: label, Probability: probability, Features: features}, nil
}

// ModelInfo returns the live artifact's metadata.
func (uc *PredictionUseCase) ModelInfo() (*domain.ModelMetadata, error) {
	artifact := uc.live.Current()
	if artifact == nil {
		return nil, domain.ErrModelNotReady
	}
	meta := artifact.Meta
	return &meta, nil
}
