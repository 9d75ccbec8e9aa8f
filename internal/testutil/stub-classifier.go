package testutil

import (
	"time"

	"model-serving-service/internal/domain"
)

// StubClassifier is a canned domain.Classifier for tests that do not care
// about real forest behavior.
type StubClassifier struct {
	Label       int
	Probability float64
	Err         error
	NFeatures   int
	NEstimators int
}

func (s *StubClassifier) Predict(features []float64) (int, float64, error) {
	if s.Err != nil {
		return 0, 0, s.Err
	}
	return s.Label, s.Probability, nil
}

func (s *StubClassifier) FeaturesIn() int {
	return s.NFeatures
}

func (s *StubClassifier) Estimators() int {
	return s.NEstimators
}

// Artifact wraps a StubClassifier into a TrainedArtifact with matching
// metadata.
func Artifact(c *StubClassifier, accuracy float64) *domain.TrainedArtifact {
	return &domain.TrainedArtifact{
		Classifier: c,
		Meta: domain.ModelMetadata{
			ModelType:  "RandomForestClassifier",
			FeaturesIn: c.NFeatures,
			Estimators: c.NEstimators,
			Accuracy:   accuracy,
			TrainedAt:  time.Now().UTC(),
		},
	}
}
