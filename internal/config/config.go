package config

import "github.com/caarlos0/env/v10"

const (
	ArtifactSourceFile     = "file"
	ArtifactSourcePostgres = "postgres"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort                 string `env:"HTTP_PORT" envDefault:"8080"`
	ArtifactSource           string `env:"ARTIFACT_SOURCE" envDefault:"file"`
	ArtifactPath             string `env:"ARTIFACT_PATH" envDefault:"artifacts/house_price_pipeline.yaml"`
	ArtifactName             string `env:"ARTIFACT_NAME" envDefault:"house_price_linear_pipeline"`
	DatabaseURL              string `env:"DATABASE_URL"`
	PredictorTimeoutSeconds  int    `env:"PREDICTOR_TIMEOUT_SECONDS" envDefault:"10"`
	CurrencySymbol           string `env:"CURRENCY_SYMBOL" envDefault:"A$"`
	RedisAddr                string `env:"REDIS_ADDR"`
	RedisPassword            string `env:"REDIS_PASSWORD"`
	RedisDB                  int    `env:"REDIS_DB" envDefault:"0"`
	PredictRateLimit         int    `env:"PREDICT_RATE_LIMIT" envDefault:"60"`
	PredictRateWindowSeconds int    `env:"PREDICT_RATE_WINDOW_SECONDS" envDefault:"60"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
