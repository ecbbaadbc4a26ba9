package predictor

import (
	"context"

	"house-price/internal/features"
)

// MockPredictor permite tests sin un pipeline real.
type MockPredictor struct {
	Predictions []float64
	Err         error
	Calls       [][]features.Row
}

func (m *MockPredictor) Predict(_ context.Context, rows []features.Row) ([]float64, error) {
	m.Calls = append(m.Calls, rows)
	return m.Predictions, m.Err
}
