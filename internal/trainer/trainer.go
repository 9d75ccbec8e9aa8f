package trainer

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"model-serving-service/internal/domain"
	"model-serving-service/internal/ml"
)

const holdoutRatio = 0.2

// Trainer fits a random forest on a synthesized dataset and packages the
// result with its metadata and holdout accuracy.
type Trainer struct {
	cfg domain.ModelConfig
}

func New(cfg domain.ModelConfig) *Trainer {
	return &Trainer{cfg: cfg}
}

// Train splits the dataset 80/20 with the given seed (the dataset's own
// generation seed, reused for reproducibility), fits the forest on the
// training partition, and scores it on the holdout.
func (t *Trainer) Train(ds *domain.Dataset, seed int64) (*domain.TrainedArtifact, error) {
	if err := t.cfg.Validate(); err != nil {
		return nil, err
	}
	if ds == nil || ds.Len() == 0 {
		return nil, domain.ErrEmptyDataset
	}
	if singleClass(ds.Labels) {
		return nil, domain.ErrDegenerateData
	}

	trainX, trainY, testX, testY := split(ds, seed)

	forest, err := ml.Fit(trainX, trainY, ml.Params{
		Estimators:      t.cfg.Estimators,
		MaxDepth:        t.cfg.MaxDepth,
		MinSamplesSplit: t.cfg.MinSamplesSplit,
		MinSamplesLeaf:  t.cfg.MinSamplesLeaf,
		Seed:            t.cfg.RandomState,
	})
	if err != nil {
		return nil, fmt.Errorf("fit forest: %w", err)
	}

	accuracy := score(forest, testX, testY)
	log.WithFields(log.Fields{
		"accuracy":     accuracy,
		"n_estimators": forest.Estimators(),
		"train_rows":   len(trainX),
		"holdout_rows": len(testX),
	}).Info("model trained")

	return &domain.TrainedArtifact{
		Classifier: forest,
		Meta: domain.ModelMetadata{
			ModelType:  "RandomForestClassifier",
			FeaturesIn: forest.FeaturesIn(),
			Estimators: forest.Estimators(),
			Accuracy:   accuracy,
			TrainedAt:  time.Now().UTC(),
		},
	}, nil
}

func split(ds *domain.Dataset, seed int64) (trainX [][]float64, trainY []int, testX [][]float64, testY []int) {
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(ds.Len())

	cut := int(math.Round(float64(ds.Len()) * (1 - holdoutRatio)))
	for i, idx := range indices {
		if i < cut {
			trainX = append(trainX, ds.Rows[idx])
			trainY = append(trainY, ds.Labels[idx])
		} else {
			testX = append(testX, ds.Rows[idx])
			testY = append(testY, ds.Labels[idx])
		}
	}
	return trainX, trainY, testX, testY
}

func score(forest *ml.RandomForest, testX [][]float64, testY []int) float64 {
	if len(testX) == 0 {
		return 0
	}
	correct := 0
	for i, row := range testX {
		label, _, err := forest.Predict(row)
		if err == nil && label == testY[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(testX))
}

func singleClass(labels []int) bool {
	for _, l := range labels[1:] {
		if l != labels[0] {
			return false
		}
	}
	return true
}
