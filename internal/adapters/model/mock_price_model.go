package model

import (
	"context"
	"sync"
)

// MockPriceModel returns a fixed price (or error) and records the rows it saw.
type MockPriceModel struct {
	Price float64
	Err   error

	mu    sync.Mutex
	calls [][]float64
}

func NewMockPriceModel(price float64) *MockPriceModel {
	return &MockPriceModel{Price: price}
}

func (m *MockPriceModel) Name() string { return "mock" }

func (m *MockPriceModel) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	m.mu.Lock()
	m.calls = append(m.calls, rows...)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]float64, len(rows))
	for i := range rows {
		out[i] = m.Price
	}
	return out, nil
}

// Rows passed to Predict so far.
func (m *MockPriceModel) Calls() [][]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]float64(nil), m.calls...)
}
