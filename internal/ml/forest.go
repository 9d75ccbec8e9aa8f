package ml

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Params controls forest fitting. Seed makes the fit reproducible: bootstrap
// sampling and per-split feature subsampling both draw from it.
type Params struct {
	Estimators      int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	Seed            int64
}

// RandomForest is an ensemble of bootstrap-sampled decision trees for binary
// classification. Predictions are majority votes; the reported probability
// is the winning vote share, so for a binary forest it lies in [0.5, 1.0].
type RandomForest struct {
	Trees     []Tree `json:"trees"`
	NFeatures int    `json:"n_features"`
}

// Fit trains a forest on the given rows and labels. Rows must be non-empty
// and rectangular; labels are 0/1 paired 1:1 with rows.
func Fit(rows [][]float64, labels []int, params Params) (*RandomForest, error) {
	if len(rows) == 0 || len(labels) == 0 {
		return nil, errors.New("training data is empty")
	}
	if len(rows) != len(labels) {
		return nil, errors.New("rows and labels size mismatch")
	}

	nFeatures := len(rows[0])
	mtry := int(math.Round(math.Sqrt(float64(nFeatures))))
	if mtry < 1 {
		mtry = 1
	}

	rng := rand.New(rand.NewSource(params.Seed))
	trees := make([]Tree, params.Estimators)

	for t := range trees {
		sample := make([]int, len(rows))
		for i := range sample {
			sample[i] = rng.Intn(len(rows))
		}

		builder := &treeBuilder{
			rows:   rows,
			labels: labels,
			params: params,
			rng:    rng,
			mtry:   mtry,
		}
		builder.build(sample, 0)
		trees[t] = Tree{Nodes: builder.nodes}
	}

	return &RandomForest{Trees: trees, NFeatures: nFeatures}, nil
}

// Predict classifies a single feature vector, returning the voted label and
// the winning vote share.
func (f *RandomForest) Predict(features []float64) (int, float64, error) {
	if len(f.Trees) == 0 {
		return 0, 0, errors.New("model not trained")
	}
	if len(features) != f.NFeatures {
		return 0, 0, fmt.Errorf("expected %d features, got %d", f.NFeatures, len(features))
	}

	ones := 0
	for i := range f.Trees {
		label, err := f.Trees[i].predict(features)
		if err != nil {
			return 0, 0, err
		}
		ones += label
	}

	label := 0
	votes := len(f.Trees) - ones
	if ones*2 > len(f.Trees) {
		label = 1
		votes = ones
	}
	return label, float64(votes) / float64(len(f.Trees)), nil
}

// Validate checks that every tree's node graph is well formed: non-empty,
// feature indices within the forest's dimensionality, child indices within
// the node array. A decoded forest must pass before it can serve.
func (f *RandomForest) Validate() error {
	if f.NFeatures < 1 {
		return errors.New("forest has no feature dimensionality")
	}
	if len(f.Trees) == 0 {
		return errors.New("forest has no trees")
	}
	for ti := range f.Trees {
		nodes := f.Trees[ti].Nodes
		if len(nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, node := range nodes {
			if node.IsLeaf {
				continue
			}
			if node.FeatureIdx < 0 || node.FeatureIdx >= f.NFeatures {
				return fmt.Errorf("tree %d node %d: feature index %d out of range", ti, ni, node.FeatureIdx)
			}
			if node.LeftChild < 0 || node.LeftChild >= len(nodes) ||
				node.RightChild < 0 || node.RightChild >= len(nodes) {
				return fmt.Errorf("tree %d node %d: child index out of range", ti, ni)
			}
		}
	}
	return nil
}

func (f *RandomForest) FeaturesIn() int {
	return f.NFeatures
}

func (f *RandomForest) Estimators() int {
	return len(f.Trees)
}
