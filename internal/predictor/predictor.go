package predictor

import (
	"context"
	"errors"

	"house-price/internal/features"
)

// Predictor define la interfaz del pipeline ya entrenado: recibe un lote de filas
// alineadas con su schema y devuelve una estimación por fila.
type Predictor interface {
	Predict(ctx context.Context, rows []features.Row) ([]float64, error)
}

var (
	ErrMissingColumn = errors.New("row lacks a required column")
	ErrUnimputable   = errors.New("missing value has no imputation")
	ErrEmptyBatch    = errors.New("empty batch")
	ErrMixedSchemas  = errors.New("batch rows use different column orders")
)
