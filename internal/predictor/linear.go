package predictor

import (
	"context"
	"fmt"
	"math"

	"house-price/internal/features"
)

// LinearPipeline es un pipeline en proceso: imputación por constante seguida de un
// modelo lineal. Con LogTarget el score se interpreta como log1p(precio).
type LinearPipeline struct {
	Intercept    float64
	Coefficients map[string]float64
	Impute       map[string]float64
	Required     []string
	LogTarget    bool
}

func (p *LinearPipeline) Predict(ctx context.Context, rows []features.Row) ([]float64, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBatch
	}
	out := make([]float64, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		y, err := p.predictRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	return out, nil
}

func (p *LinearPipeline) predictRow(row features.Row) (float64, error) {
	for _, col := range p.Required {
		if _, ok := row.Get(col); !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	for col := range p.Coefficients {
		if _, ok := row.Get(col); !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	// Se suma en el orden del schema para que el resultado sea reproducible.
	score := p.Intercept
	values := row.Values()
	for i, col := range row.Names() {
		coef, ok := p.Coefficients[col]
		if !ok {
			continue
		}
		x, present := values[i].Float64()
		if !present {
			fill, ok := p.Impute[col]
			if !ok {
				return 0, fmt.Errorf("%w: %s", ErrUnimputable, col)
			}
			x = fill
		}
		score += coef * x
	}

	if p.LogTarget {
		return math.Expm1(score), nil
	}
	return score, nil
}
