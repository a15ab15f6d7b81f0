// Package randomforest implements a random-forest classifier over dense
// float feature vectors. Trees are CART with gini impurity, grown on
// bootstrap samples with sqrt(d) feature subsampling. The fitted forest
// is plain data and JSON-serializable, so trained models can be persisted
// and reloaded without a training dependency at predict time.
package randomforest

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Config controls training. Zero values fall back to the defaults.
type Config struct {
	NumTrees int   // default 100
	MaxDepth int   // default 10
	MinLeaf  int   // default 1
	Seed     int64 // default 42
}

// Forest is a trained random-forest classifier.
type Forest struct {
	Trees       []*Node `json:"trees"`
	NumFeatures int     `json:"num_features"`
}

var (
	ErrNoSamples       = errors.New("randomforest: no training samples")
	ErrSampleMismatch  = errors.New("randomforest: feature and target counts differ")
	ErrFeatureMismatch = errors.New("randomforest: feature vector length differs from training")
)

// Train fits a forest on the feature matrix x and class labels y.
// Labels are arbitrary float values; prediction only ever returns labels
// present in y.
func Train(x [][]float64, y []float64, cfg Config) (*Forest, error) {
	if len(x) == 0 {
		return nil, ErrNoSamples
	}
	if len(x) != len(y) {
		return nil, ErrSampleMismatch
	}

	if cfg.NumTrees <= 0 {
		cfg.NumTrees = 100
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 10
	}
	if cfg.MinLeaf <= 0 {
		cfg.MinLeaf = 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}

	numFeatures := len(x[0])
	mtry := int(math.Sqrt(float64(numFeatures)))
	if mtry < 1 {
		mtry = 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	trees := make([]*Node, cfg.NumTrees)
	for t := range trees {
		idx := make([]int, len(x))
		for i := range idx {
			idx[i] = rng.Intn(len(x))
		}
		trees[t] = buildNode(x, y, idx, 0, cfg.MaxDepth, cfg.MinLeaf, mtry, rng)
	}

	return &Forest{Trees: trees, NumFeatures: numFeatures}, nil
}

// Predict returns the majority vote of all trees for one feature vector.
func (f *Forest) Predict(features []float64) (float64, error) {
	if len(features) != f.NumFeatures {
		return 0, ErrFeatureMismatch
	}

	votes := make([]float64, 0, len(f.Trees))
	for _, tree := range f.Trees {
		votes = append(votes, tree.predict(features))
	}
	sort.Float64s(votes)
	mode, _ := stat.Mode(votes, nil)
	return mode, nil
}

// Accuracy is the exact-match fraction of predictions over the given set.
func (f *Forest) Accuracy(x [][]float64, y []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	correct := 0
	for i := range x {
		pred, err := f.Predict(x[i])
		if err == nil && pred == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(x))
}
