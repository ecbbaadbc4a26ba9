package artifact

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"house-price/internal/config"
	"house-price/internal/db"
	"house-price/internal/predictor"
	"house-price/internal/repository"
)

// Loaded agrupa lo que se carga una sola vez al arrancar.
type Loaded struct {
	Artifact  *Artifact
	Predictor predictor.Predictor
}

// LoadConfigured carga el artefacto desde la fuente configurada y arma su predictor.
func LoadConfigured(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Loaded, error) {
	var src Source
	switch cfg.ArtifactSource {
	case "", config.ArtifactSourceFile:
		src = FileSource{Path: cfg.ArtifactPath}
	case config.ArtifactSourcePostgres:
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return Loaded{}, fmt.Errorf("db connect: %w", err)
		}
		defer pool.Close()
		src = StoreSource{Store: repository.NewPgArtifactRepository(pool), Name: cfg.ArtifactName}
	default:
		return Loaded{}, fmt.Errorf("unknown ARTIFACT_SOURCE %q", cfg.ArtifactSource)
	}

	a, err := src.Load(ctx)
	if err != nil {
		return Loaded{}, err
	}
	p, err := NewPredictor(a, Options{
		Timeout: time.Duration(cfg.PredictorTimeoutSeconds) * time.Second,
		Logger:  logger,
	})
	if err != nil {
		return Loaded{}, err
	}

	logger.Info("model artifact loaded",
		zap.String("source", cfg.ArtifactSource),
		zap.String("name", a.Name),
		zap.String("version", a.Version),
		zap.String("pipeline", a.Pipeline.Kind),
	)
	return Loaded{Artifact: a, Predictor: p}, nil
}
