package domain

import "errors"

var (
	ErrInvalidShape      = errors.New("dataset shape is invalid: n_samples and n_features must be >= 1 and noise_level >= 0")
	ErrInvalidHyperparam = errors.New("model hyperparameters are invalid")
	ErrArtifactNotFound  = errors.New("model artifact not found")
	ErrEmptyDataset      = errors.New("dataset is empty")
	ErrDegenerateData    = errors.New("dataset contains a single class only")
	ErrModelNotReady     = errors.New("model not loaded")
	ErrNoFeatures        = errors.New("no features provided")
	ErrPrediction        = errors.New("prediction failed")
)
