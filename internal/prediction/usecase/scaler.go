package usecase

import (
	"gonum.org/v1/gonum/stat"
)

// standardScaler centers each feature to zero mean and unit variance,
// with the statistics learned from the training split only.
type standardScaler struct {
	Means []float64 `json:"means"`
	Stds  []float64 `json:"stds"`
}

func fitScaler(x [][]float64) *standardScaler {
	if len(x) == 0 {
		return &standardScaler{}
	}

	d := len(x[0])
	s := &standardScaler{
		Means: make([]float64, d),
		Stds:  make([]float64, d),
	}

	col := make([]float64, len(x))
	for j := 0; j < d; j++ {
		for i, row := range x {
			col[i] = row[j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		s.Means[j] = mean
		s.Stds[j] = std
	}
	return s
}

// Transform scales a single feature vector in place and returns it.
// Features with no spread in the training data pass through centered.
func (s *standardScaler) Transform(v []float64) []float64 {
	for j := range v {
		if j >= len(s.Means) {
			break
		}
		v[j] -= s.Means[j]
		if s.Stds[j] > 0 {
			v[j] /= s.Stds[j]
		}
	}
	return v
}

func (s *standardScaler) TransformAll(x [][]float64) [][]float64 {
	for i := range x {
		x[i] = s.Transform(x[i])
	}
	return x
}
