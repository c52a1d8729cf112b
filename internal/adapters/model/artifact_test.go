package model

import (
	"context"
	"flight-price-service/internal/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeArtifact(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestLoadLinear(t *testing.T) {
	path := writeArtifact(t, `{
		"name": "ridge-v1",
		"kind": "linear",
		"n_features": 3,
		"intercept": 100,
		"coefficients": [10, -2, 0.5]
	}`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name() != "ridge-v1" {
		t.Fatalf("name = %q, want ridge-v1", m.Name())
	}

	out, err := m.Predict(context.Background(), [][]float64{{1, 2, 4}, {0, 0, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 108 || out[1] != 100 {
		t.Fatalf("predictions = %v, want [108 100]", out)
	}
}

func TestLoadTreeEnsembleMean(t *testing.T) {
	// Two stumps on feature 0 averaged together.
	path := writeArtifact(t, `{
		"kind": "tree_ensemble",
		"aggregation": "mean",
		"n_features": 2,
		"trees": [
			{"nodes": [
				{"feature": 0, "threshold": 1.5, "left": 1, "right": 2},
				{"left": -1, "value": 1000},
				{"left": -1, "value": 3000}
			]},
			{"nodes": [
				{"feature": 1, "threshold": 0.5, "left": 1, "right": 2},
				{"left": -1, "value": 2000},
				{"left": -1, "value": 4000}
			]}
		]
	}`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name() != KindTreeEnsemble {
		t.Fatalf("name = %q, want kind as fallback name", m.Name())
	}

	out, err := m.Predict(context.Background(), [][]float64{{1, 0}, {2, 1}, {1.5, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1500, 3500, 2500}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("predictions = %v, want %v", out, want)
		}
	}
}

func TestTreeEnsembleSum(t *testing.T) {
	m, err := New(Artifact{
		Kind:         KindTreeEnsemble,
		Aggregation:  AggregateSum,
		NFeatures:    1,
		BaseScore:    50,
		LearningRate: 0.5,
		Trees: []Tree{
			{Nodes: []Node{{Left: leaf, Value: 10}}},
			{Nodes: []Node{{Left: leaf, Value: 30}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := m.Predict(context.Background(), [][]float64{{0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 70 {
		t.Fatalf("prediction = %v, want 70", out[0])
	}
}

func TestLoadRejectsInvalidArtifacts(t *testing.T) {
	tests := map[string]string{
		"missing kind":      `{"n_features": 1}`,
		"unknown kind":      `{"kind": "svm", "n_features": 1}`,
		"coefficient count": `{"kind": "linear", "n_features": 2, "coefficients": [1]}`,
		"no trees":          `{"kind": "tree_ensemble", "n_features": 1}`,
		"backward child":    `{"kind": "tree_ensemble", "n_features": 1, "trees": [{"nodes": [{"feature": 0, "left": 0, "right": 0}]}]}`,
		"feature range":     `{"kind": "tree_ensemble", "n_features": 1, "trees": [{"nodes": [{"feature": 3, "left": 1, "right": 2}, {"left": -1}, {"left": -1}]}]}`,
		"feature names":     `{"kind": "linear", "n_features": 1, "coefficients": [1], "feature_names": ["a", "b"]}`,
		"bad aggregation":   `{"kind": "tree_ensemble", "aggregation": "median", "n_features": 1, "trees": [{"nodes": [{"left": -1}]}]}`,
		"not json":          `pickle`,
	}

	for name, body := range tests {
		if _, err := Load(writeArtifact(t, body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "load model") {
		t.Fatalf("err = %v, want load model error", err)
	}
}

func TestPredictRejectsWrongWidth(t *testing.T) {
	m, err := New(Artifact{Kind: KindLinear, NFeatures: 2, Coefficients: []float64{1, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Predict(context.Background(), [][]float64{{1}}); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestPredictHonoursCancelledContext(t *testing.T) {
	m, err := New(Artifact{Kind: KindLinear, NFeatures: 1, Coefficients: []float64{1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Predict(ctx, [][]float64{{1}}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestLoadShippedArtifact(t *testing.T) {
	m, err := Load(filepath.Join("..", "..", "..", "data", "flight_price_model.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.NFeatures() != domain.FeatureCount {
		t.Fatalf("n_features = %d, want %d", m.NFeatures(), domain.FeatureCount)
	}

	var row domain.FeatureVector
	out, err := m.Predict(context.Background(), [][]float64{row.Slice()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("predictions = %v, want one value", out)
	}
}
