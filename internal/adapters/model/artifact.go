package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	KindLinear       = "linear"
	KindTreeEnsemble = "tree_ensemble"
)

// Artifact is the on-disk description of a trained regression model.
type Artifact struct {
	Name         string   `json:"name"`
	Kind         string   `json:"kind"`
	NFeatures    int      `json:"n_features"`
	FeatureNames []string `json:"feature_names,omitempty"`

	// linear
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients,omitempty"`

	// tree_ensemble
	Aggregation  string  `json:"aggregation,omitempty"`
	BaseScore    float64 `json:"base_score,omitempty"`
	LearningRate float64 `json:"learning_rate,omitempty"`
	Trees        []Tree  `json:"trees,omitempty"`
}

type evaluator interface {
	eval(row []float64) float64
}

// Model is a loaded, immutable regression model. It is safe for concurrent use.
type Model struct {
	name      string
	nFeatures int
	eval      evaluator
}

// Load reads and validates a JSON model artifact from path.
func Load(path string) (*Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model: read %q: %w", path, err)
	}

	var a Artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("load model: parse %q: %w", path, err)
	}

	m, err := New(a)
	if err != nil {
		return nil, fmt.Errorf("load model %q: %w", path, err)
	}
	return m, nil
}

// New builds a Model from an in-memory artifact.
func New(a Artifact) (*Model, error) {
	if a.NFeatures <= 0 {
		return nil, fmt.Errorf("n_features must be positive, got %d", a.NFeatures)
	}
	if len(a.FeatureNames) > 0 && len(a.FeatureNames) != a.NFeatures {
		return nil, fmt.Errorf("feature_names has %d entries, want %d", len(a.FeatureNames), a.NFeatures)
	}

	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = a.Kind
	}

	var (
		ev  evaluator
		err error
	)
	switch a.Kind {
	case KindLinear:
		ev, err = newLinear(a)
	case KindTreeEnsemble:
		ev, err = newTreeEnsemble(a)
	case "":
		return nil, errors.New("model kind is required")
	default:
		return nil, fmt.Errorf("unsupported model kind %q", a.Kind)
	}
	if err != nil {
		return nil, err
	}

	return &Model{name: name, nFeatures: a.NFeatures, eval: ev}, nil
}

func (m *Model) Name() string { return m.name }

func (m *Model) NFeatures() int { return m.nFeatures }

// Predict scores each row. Every row must have exactly NFeatures values.
func (m *Model) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(rows))
	for i, row := range rows {
		if len(row) != m.nFeatures {
			return nil, fmt.Errorf("row %d: got %d features, want %d", i, len(row), m.nFeatures)
		}
		out = append(out, m.eval.eval(row))
	}
	return out, nil
}
