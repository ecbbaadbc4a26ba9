// Package artifact carga el artefacto del modelo ya entrenado: el orden de columnas
// que espera el pipeline y la definición del pipeline que produce la estimación.
package artifact

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"house-price/internal/features"
	"house-price/internal/predictor"
)

const (
	KindLinear = "linear"
	KindRemote = "remote"
)

var ErrInvalidArtifact = errors.New("invalid model artifact")

// Artifact es el documento del modelo. YAML o JSON con las mismas claves.
type Artifact struct {
	Name         string       `yaml:"name" json:"name"`
	Version      string       `yaml:"version" json:"version"`
	FeatureOrder []string     `yaml:"feature_order" json:"feature_order"`
	Pipeline     PipelineSpec `yaml:"pipeline" json:"pipeline"`

	schema *features.Schema
}

// PipelineSpec describe cómo se evalúa el modelo.
type PipelineSpec struct {
	Kind string `yaml:"kind" json:"kind"`

	// linear
	Intercept    float64            `yaml:"intercept" json:"intercept,omitempty"`
	Coefficients map[string]float64 `yaml:"coefficients" json:"coefficients,omitempty"`
	Impute       map[string]float64 `yaml:"impute" json:"impute,omitempty"`
	Required     []string           `yaml:"required" json:"required,omitempty"`
	LogTarget    bool               `yaml:"log_target" json:"log_target,omitempty"`

	// remote
	URL string `yaml:"url" json:"url,omitempty"`
}

// Parse decodifica y valida un documento de artefacto.
func Parse(data []byte) (*Artifact, error) {
	var a Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidArtifact, err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// LoadFile lee el artefacto desde disco.
func LoadFile(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Validate comprueba el documento y construye el schema.
func (a *Artifact) Validate() error {
	schema, err := features.NewSchema(a.FeatureOrder)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	switch a.Pipeline.Kind {
	case KindLinear:
		if len(a.Pipeline.Coefficients) == 0 {
			return fmt.Errorf("%w: linear pipeline without coefficients", ErrInvalidArtifact)
		}
		for col := range a.Pipeline.Coefficients {
			if !schema.Has(col) {
				return fmt.Errorf("%w: coefficient for unknown column %q", ErrInvalidArtifact, col)
			}
		}
		for _, col := range a.Pipeline.Required {
			if !schema.Has(col) {
				return fmt.Errorf("%w: required column %q not in feature_order", ErrInvalidArtifact, col)
			}
		}
	case KindRemote:
		if a.Pipeline.URL == "" {
			return fmt.Errorf("%w: remote pipeline without url", ErrInvalidArtifact)
		}
	default:
		return fmt.Errorf("%w: unknown pipeline kind %q", ErrInvalidArtifact, a.Pipeline.Kind)
	}

	a.schema = schema
	return nil
}

// Schema devuelve el Feature Schema del artefacto. Solo es válido tras Validate.
func (a *Artifact) Schema() *features.Schema {
	return a.schema
}

// Options configura los predictores remotos.
type Options struct {
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewPredictor construye el Predictor que describe el artefacto.
func NewPredictor(a *Artifact, opts Options) (predictor.Predictor, error) {
	if a.schema == nil {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}
	switch a.Pipeline.Kind {
	case KindLinear:
		return &predictor.LinearPipeline{
			Intercept:    a.Pipeline.Intercept,
			Coefficients: a.Pipeline.Coefficients,
			Impute:       a.Pipeline.Impute,
			Required:     a.Pipeline.Required,
			LogTarget:    a.Pipeline.LogTarget,
		}, nil
	case KindRemote:
		return predictor.NewHTTPPredictor(a.Pipeline.URL, opts.Timeout, opts.Logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown pipeline kind %q", ErrInvalidArtifact, a.Pipeline.Kind)
	}
}
