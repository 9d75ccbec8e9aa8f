package dataset

import (
	"math/rand"

	"model-serving-service/internal/domain"
)

// Synthesize generates a labeled feature matrix from the configured seed and
// shape. The same config always yields a bit-identical dataset: the feature
// matrix is drawn first, then the per-sample noise, so draw order is fixed.
func Synthesize(cfg domain.DatasetConfig) (*domain.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	rows := make([][]float64, cfg.Samples)
	for i := range rows {
		row := make([]float64, cfg.Features)
		for j := range row {
			row[j] = rng.NormFloat64()
		}
		rows[i] = row
	}

	labels := make([]int, cfg.Samples)
	for i, row := range rows {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		noise := rng.NormFloat64() * cfg.NoiseLevel
		if sum+noise > 0 {
			labels[i] = 1
		}
	}

	return &domain.Dataset{Rows: rows, Labels: labels}, nil
}
