package domain

import "time"

// ModelConfig is the immutable hyperparameter set for the trainer.
type ModelConfig struct {
	Estimators      int
	RandomState     int64
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
}

func (c ModelConfig) Validate() error {
	if c.Estimators < 1 || c.MaxDepth < 1 || c.MinSamplesSplit < 2 || c.MinSamplesLeaf < 1 {
		return ErrInvalidHyperparam
	}
	return nil
}

// Classifier is a fitted binary classifier. Predict returns the label (0/1)
// and the maximum class probability for a single feature vector.
type Classifier interface {
	Predict(features []float64) (label int, probability float64, err error)
	FeaturesIn() int
	Estimators() int
}

// ModelMetadata is populated at training time and carried alongside the
// classifier so /model/info never inspects the model at runtime.
type ModelMetadata struct {
	ModelType  string    `json:"model_type"`
	FeaturesIn int       `json:"n_features_in"`
	Estimators int       `json:"n_estimators"`
	Accuracy   float64   `json:"accuracy"`
	TrainedAt  time.Time `json:"trained_at"`
}

// TrainedArtifact is a trained model plus its metadata, treated as an opaque
// unit for storage and serving. Instances are immutable once built; the
// lifecycle manager replaces the whole artifact, never fields of one.
type TrainedArtifact struct {
	Classifier Classifier
	Meta       ModelMetadata
}
