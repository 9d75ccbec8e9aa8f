package ml

import (
	"errors"
	"math"
	"math/rand"
	"sort"
)

// TreeNode is one node of a decision tree stored in a flat array. Children
// are indices into the same array; leaves carry the majority class label of
// the training samples that reached them.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	ClassLabel int     `json:"class_label"`
	IsLeaf     bool    `json:"is_leaf"`
}

// Tree is a single fitted decision tree.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// predict walks the tree for one feature vector. Node and feature indices
// are checked on every hop, and the walk is capped at the node count, so a
// malformed tree errors instead of panicking or looping.
func (t *Tree) predict(features []float64) (int, error) {
	if len(t.Nodes) == 0 {
		return 0, errors.New("tree has no nodes")
	}
	idx := 0
	for steps := 0; steps < len(t.Nodes); steps++ {
		node := t.Nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(features) {
			return 0, errors.New("feature index out of range")
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, errors.New("invalid tree state")
		}
	}
	return 0, errors.New("invalid tree state")
}

type treeBuilder struct {
	rows   [][]float64
	labels []int
	params Params
	rng    *rand.Rand
	mtry   int
	nodes  []TreeNode
}

// build grows the subtree over the given sample indices and returns the
// index of its root node.
func (b *treeBuilder) build(indices []int, depth int) int {
	label, pure := majorityLabel(b.labels, indices)

	if pure || depth >= b.params.MaxDepth || len(indices) < b.params.MinSamplesSplit {
		return b.leaf(label)
	}

	feature, threshold, ok := b.bestSplit(indices)
	if !ok {
		return b.leaf(label)
	}

	var left, right []int
	for _, i := range indices {
		if b.rows[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < b.params.MinSamplesLeaf || len(right) < b.params.MinSamplesLeaf {
		return b.leaf(label)
	}

	idx := len(b.nodes)
	b.nodes = append(b.nodes, TreeNode{FeatureIdx: feature, Threshold: threshold})
	b.nodes[idx].LeftChild = b.build(left, depth+1)
	b.nodes[idx].RightChild = b.build(right, depth+1)
	return idx
}

func (b *treeBuilder) leaf(label int) int {
	b.nodes = append(b.nodes, TreeNode{IsLeaf: true, ClassLabel: label, LeftChild: -1, RightChild: -1})
	return len(b.nodes) - 1
}

// bestSplit searches a random subset of mtry features for the threshold that
// minimizes weighted gini impurity, honoring MinSamplesLeaf on both sides.
func (b *treeBuilder) bestSplit(indices []int) (feature int, threshold float64, ok bool) {
	nFeatures := len(b.rows[0])
	candidates := b.rng.Perm(nFeatures)[:b.mtry]

	bestGini := math.Inf(1)
	sorted := make([]int, len(indices))

	for _, f := range candidates {
		copy(sorted, indices)
		sort.Slice(sorted, func(i, j int) bool {
			return b.rows[sorted[i]][f] < b.rows[sorted[j]][f]
		})

		total := len(sorted)
		rightOnes := 0
		for _, i := range sorted {
			rightOnes += b.labels[i]
		}
		leftOnes := 0

		// Sweep split positions left to right; position k puts sorted[:k]
		// on the left.
		for k := 1; k < total; k++ {
			leftOnes += b.labels[sorted[k-1]]
			if b.rows[sorted[k-1]][f] == b.rows[sorted[k]][f] {
				continue
			}
			if k < b.params.MinSamplesLeaf || total-k < b.params.MinSamplesLeaf {
				continue
			}
			g := weightedGini(k, leftOnes, total-k, rightOnes-leftOnes)
			if g < bestGini {
				bestGini = g
				feature = f
				threshold = (b.rows[sorted[k-1]][f] + b.rows[sorted[k]][f]) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func gini(n, ones int) float64 {
	if n == 0 {
		return 0
	}
	p := float64(ones) / float64(n)
	return 2 * p * (1 - p)
}

func weightedGini(nl, onesL, nr, onesR int) float64 {
	total := float64(nl + nr)
	return (float64(nl)*gini(nl, onesL) + float64(nr)*gini(nr, onesR)) / total
}

func majorityLabel(labels []int, indices []int) (label int, pure bool) {
	ones := 0
	for _, i := range indices {
		ones += labels[i]
	}
	if ones*2 > len(indices) {
		label = 1
	}
	return label, ones == 0 || ones == len(indices)
}
