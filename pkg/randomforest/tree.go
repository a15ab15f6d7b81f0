package randomforest

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Node is one decision node of a CART tree. Leaves carry the majority
// class label of the samples that reached them.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      *Node   `json:"left,omitempty"`
	Right     *Node   `json:"right,omitempty"`
	Leaf      bool    `json:"leaf"`
	Label     float64 `json:"label"`
}

func (n *Node) predict(features []float64) float64 {
	for !n.Leaf {
		if features[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Label
}

// buildNode grows a tree from the samples selected by idx, choosing at
// each level the best gini split over mtry randomly drawn features.
func buildNode(x [][]float64, y []float64, idx []int, depth, maxDepth, minLeaf, mtry int, rng *rand.Rand) *Node {
	if depth >= maxDepth || len(idx) <= minLeaf || isPure(y, idx) {
		return &Node{Leaf: true, Label: majorityLabel(y, idx)}
	}

	feature, threshold, ok := bestSplit(x, y, idx, mtry, rng)
	if !ok {
		return &Node{Leaf: true, Label: majorityLabel(y, idx)}
	}

	var left, right []int
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &Node{Leaf: true, Label: majorityLabel(y, idx)}
	}

	return &Node{
		Feature:   feature,
		Threshold: threshold,
		Left:      buildNode(x, y, left, depth+1, maxDepth, minLeaf, mtry, rng),
		Right:     buildNode(x, y, right, depth+1, maxDepth, minLeaf, mtry, rng),
	}
}

// bestSplit searches mtry random features for the threshold with the
// lowest weighted gini impurity. ok is false when no split separates the
// samples.
func bestSplit(x [][]float64, y []float64, idx []int, mtry int, rng *rand.Rand) (feature int, threshold float64, ok bool) {
	numFeatures := len(x[idx[0]])
	perm := rng.Perm(numFeatures)

	bestGini := giniImpurity(y, idx)
	for _, f := range perm[:mtry] {
		values := make([]float64, 0, len(idx))
		for _, i := range idx {
			values = append(values, x[i][f])
		}
		sort.Float64s(values)

		for v := 1; v < len(values); v++ {
			if values[v] == values[v-1] {
				continue
			}
			thr := (values[v] + values[v-1]) / 2
			g := splitGini(x, y, idx, f, thr)
			if g < bestGini {
				bestGini, feature, threshold, ok = g, f, thr, true
			}
		}
	}
	return feature, threshold, ok
}

func splitGini(x [][]float64, y []float64, idx []int, feature int, threshold float64) float64 {
	var left, right []int
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	n := float64(len(idx))
	return float64(len(left))/n*giniImpurity(y, left) +
		float64(len(right))/n*giniImpurity(y, right)
}

func giniImpurity(y []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	counts := make(map[float64]int)
	for _, i := range idx {
		counts[y[i]]++
	}
	n := float64(len(idx))
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / n
		impurity -= p * p
	}
	return impurity
}

func isPure(y []float64, idx []int) bool {
	for _, i := range idx[1:] {
		if y[i] != y[idx[0]] {
			return false
		}
	}
	return true
}

// majorityLabel returns the most common label; stat.Mode on the sorted
// slice makes ties resolve to the smallest label deterministically.
func majorityLabel(y []float64, idx []int) float64 {
	labels := make([]float64, 0, len(idx))
	for _, i := range idx {
		labels = append(labels, y[i])
	}
	sort.Float64s(labels)
	mode, _ := stat.Mode(labels, nil)
	return mode
}
