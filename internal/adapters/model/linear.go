package model

import "fmt"

type linear struct {
	intercept float64
	coef      []float64
}

func newLinear(a Artifact) (*linear, error) {
	if len(a.Coefficients) != a.NFeatures {
		return nil, fmt.Errorf("linear model: got %d coefficients, want %d", len(a.Coefficients), a.NFeatures)
	}
	coef := make([]float64, len(a.Coefficients))
	copy(coef, a.Coefficients)
	return &linear{intercept: a.Intercept, coef: coef}, nil
}

func (l *linear) eval(row []float64) float64 {
	y := l.intercept
	for i, c := range l.coef {
		y += c * row[i]
	}
	return y
}
