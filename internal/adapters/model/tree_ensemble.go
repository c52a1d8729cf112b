package model

import (
	"errors"
	"fmt"
)

const (
	AggregateMean = "mean"
	AggregateSum  = "sum"

	leaf = -1
)

// Tree is a binary regression tree stored as a flat node array rooted at 0.
// A node with Left == -1 is a leaf. Rows with x[Feature] <= Threshold go left.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Random forests average their trees (mean); boosted models add
// base_score plus learning_rate times the sum of their trees (sum).
type treeEnsemble struct {
	trees        []Tree
	mean         bool
	baseScore    float64
	learningRate float64
}

func newTreeEnsemble(a Artifact) (*treeEnsemble, error) {
	if len(a.Trees) == 0 {
		return nil, errors.New("tree ensemble: no trees")
	}

	te := &treeEnsemble{trees: a.Trees, baseScore: a.BaseScore, learningRate: a.LearningRate}
	switch a.Aggregation {
	case AggregateMean, "":
		te.mean = true
	case AggregateSum:
		if te.learningRate == 0 {
			te.learningRate = 1
		}
	default:
		return nil, fmt.Errorf("tree ensemble: unsupported aggregation %q", a.Aggregation)
	}

	for i, t := range a.Trees {
		if err := validateTree(t, a.NFeatures); err != nil {
			return nil, fmt.Errorf("tree ensemble: tree %d: %w", i, err)
		}
	}

	return te, nil
}

// Children must point forward in the node array, which rules out cycles.
func validateTree(t Tree, nFeatures int) error {
	if len(t.Nodes) == 0 {
		return errors.New("no nodes")
	}
	for i, n := range t.Nodes {
		if n.Left == leaf {
			continue
		}
		if n.Feature < 0 || n.Feature >= nFeatures {
			return fmt.Errorf("node %d: feature %d out of range", i, n.Feature)
		}
		if n.Left <= i || n.Left >= len(t.Nodes) || n.Right <= i || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d: invalid children %d/%d", i, n.Left, n.Right)
		}
	}
	return nil
}

func (t Tree) eval(row []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Left == leaf {
			return n.Value
		}
		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

func (te *treeEnsemble) eval(row []float64) float64 {
	sum := 0.0
	for _, t := range te.trees {
		sum += t.eval(row)
	}
	if te.mean {
		return sum / float64(len(te.trees))
	}
	return te.baseScore + te.learningRate*sum
}
