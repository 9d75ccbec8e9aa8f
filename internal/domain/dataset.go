package domain

// DatasetConfig describes the synthetic dataset to generate. It is selected
// once at process configuration time and never mutated.
type DatasetConfig struct {
	Seed       int64
	Samples    int
	Features   int
	NoiseLevel float64
}

func (c DatasetConfig) Validate() error {
	if c.Samples < 1 || c.Features < 1 || c.NoiseLevel < 0 {
		return ErrInvalidShape
	}
	return nil
}

// Dataset is a labeled feature matrix. Rows and Labels are paired 1:1.
type Dataset struct {
	Rows   [][]float64
	Labels []int
}

func (d *Dataset) Len() int {
	return len(d.Rows)
}
