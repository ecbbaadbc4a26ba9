package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"house-price/internal/domain"
	"house-price/internal/features"
	"house-price/internal/predictor"
)

var ErrUnexpectedResultCount = errors.New("predictor returned an unexpected number of results")

// PredictionService arma la fila del formulario y consulta el pipeline.
// El schema y el predictor son de solo lectura después de la carga.
type PredictionService struct {
	logger    *zap.Logger
	schema    *features.Schema
	predictor predictor.Predictor
	formatter PriceFormatter
	artifact  string
}

func NewPredictionService(logger *zap.Logger, schema *features.Schema, p predictor.Predictor, formatter PriceFormatter, artifactName string) *PredictionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictionService{
		logger:    logger,
		schema:    schema,
		predictor: p,
		formatter: formatter,
		artifact:  artifactName,
	}
}

func (s *PredictionService) Schema() *features.Schema {
	return s.schema
}

func (s *PredictionService) ArtifactName() string {
	return s.artifact
}

// BuildRow expone el armado de la fila sin invocar al modelo.
func (s *PredictionService) BuildRow(in features.Inputs) features.Row {
	return features.BuildRow(s.schema, in)
}

// Preview calcula los valores derivados para mostrarlos antes de predecir.
func (s *PredictionService) Preview(in features.Inputs) domain.Preview {
	idx := features.AmenityAccessIndex(in)
	return domain.Preview{
		RoomsTotal:         features.RoomsTotal(in),
		AmenityAccessIndex: idx,
		AmenityDisplay:     fmt.Sprintf("%.2f", idx),
	}
}

// Predict arma la fila, la envía como lote de una fila y formatea el único resultado.
// Los errores del predictor se devuelven tal cual: no hay reintento ni valor por defecto.
func (s *PredictionService) Predict(ctx context.Context, in features.Inputs) (domain.Estimate, error) {
	if s.predictor == nil || s.schema == nil {
		return domain.Estimate{}, errors.New("prediction service not configured")
	}

	requestID := uuid.NewString()
	row := s.BuildRow(in)
	present := row.Present()

	preds, err := s.predictor.Predict(ctx, []features.Row{row})
	if err != nil {
		s.logger.Error("prediction failed",
			zap.String("request_id", requestID),
			zap.String("artifact", s.artifact),
			zap.Error(err),
		)
		return domain.Estimate{}, err
	}
	if len(preds) != 1 {
		return domain.Estimate{}, fmt.Errorf("%w: got %d", ErrUnexpectedResultCount, len(preds))
	}

	price := preds[0]
	s.logger.Info("prediction",
		zap.String("request_id", requestID),
		zap.String("artifact", s.artifact),
		zap.Int("schema_width", s.schema.Len()),
		zap.Int("present_fields", len(present)),
		zap.Float64("price", price),
	)

	return domain.Estimate{
		RequestID:      requestID,
		Price:          price,
		FormattedPrice: s.formatter.Format(price),
		Inputs:         present,
		Derived:        s.Preview(in),
		Artifact:       s.artifact,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// LogCoverage registra una vez cómo encaja el formulario con el schema cargado.
// Las columnas del formulario que el schema no tiene se descartan al armar la fila.
func LogCoverage(logger *zap.Logger, schema *features.Schema) features.CoverageReport {
	report := features.Coverage(schema)
	logger.Info("feature schema loaded",
		zap.Int("columns", schema.Len()),
		zap.Int("populated", len(report.Populated)),
		zap.Int("imputed", len(report.Imputed)),
	)
	if len(report.Dropped) > 0 {
		logger.Warn("form columns absent from feature schema",
			zap.Strings("dropped", report.Dropped),
		)
	}
	return report
}
