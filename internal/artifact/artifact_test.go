package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"house-price/internal/config"
	"house-price/internal/domain"
	"house-price/internal/features"
	"house-price/internal/predictor"
)

const linearDoc = `
name: demo
version: "1"
feature_order: [beds, baths, year_built, property_type_house]
pipeline:
  kind: linear
  intercept: 1000
  coefficients: {beds: 100, year_built: 1}
  impute: {year_built: 2000}
  required: [beds]
`

func TestParseLinear(t *testing.T) {
	a, err := Parse([]byte(linearDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "demo" || a.Schema().Len() != 4 {
		t.Fatalf("unexpected artifact %+v", a)
	}

	p, err := NewPredictor(a, Options{})
	if err != nil {
		t.Fatalf("new predictor: %v", err)
	}
	if _, ok := p.(*predictor.LinearPipeline); !ok {
		t.Fatalf("expected linear pipeline, got %T", p)
	}

	row := features.BuildRow(a.Schema(), features.Inputs{Beds: 2, PropertyType: features.PropertyHouse})
	got, err := p.Predict(context.Background(), []features.Row{row})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got[0] != 1000+200+2000 {
		t.Fatalf("unexpected prediction %v", got)
	}
}

func TestParseJSON(t *testing.T) {
	doc := `{"name": "remote-demo", "feature_order": ["beds"], "pipeline": {"kind": "remote", "url": "http://model:8000"}}`
	a, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := NewPredictor(a, Options{})
	if err != nil {
		t.Fatalf("new predictor: %v", err)
	}
	if _, ok := p.(*predictor.HTTPPredictor); !ok {
		t.Fatalf("expected http predictor, got %T", p)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"empty order":        `{"feature_order": [], "pipeline": {"kind": "remote", "url": "x"}}`,
		"duplicate column":   `{"feature_order": ["beds", "beds"], "pipeline": {"kind": "remote", "url": "x"}}`,
		"unknown kind":       `{"feature_order": ["beds"], "pipeline": {"kind": "forest"}}`,
		"remote without url": `{"feature_order": ["beds"], "pipeline": {"kind": "remote"}}`,
		"no coefficients":    `{"feature_order": ["beds"], "pipeline": {"kind": "linear"}}`,
		"unknown coef":       `{"feature_order": ["beds"], "pipeline": {"kind": "linear", "coefficients": {"baths": 1}}}`,
		"unknown required":   `{"feature_order": ["beds"], "pipeline": {"kind": "linear", "coefficients": {"beds": 1}, "required": ["baths"]}}`,
		"not a document":     `[1, 2`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalidArtifact) {
				t.Fatalf("expected ErrInvalidArtifact, got %v", err)
			}
		})
	}
}

func TestLoadFileBundledArtifact(t *testing.T) {
	a, err := LoadFile(filepath.Join("..", "..", "artifacts", "house_price_pipeline.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report := features.Coverage(a.Schema())
	if len(report.Dropped) != 0 {
		t.Fatalf("bundled artifact should accept every form column, dropped %v", report.Dropped)
	}
	if len(report.Imputed) == 0 {
		t.Fatalf("bundled artifact should exercise imputation")
	}
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadFile(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}

type mockStore struct {
	rec       domain.ArtifactRecord
	err       error
	name      string
	created   []domain.ArtifactRecord
	createErr error
}

func (m *mockStore) Create(_ context.Context, rec domain.ArtifactRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, rec)
	m.rec = rec
	return nil
}

func (m *mockStore) GetLatest(_ context.Context, name string) (domain.ArtifactRecord, error) {
	m.name = name
	return m.rec, m.err
}

func TestStoreSource(t *testing.T) {
	t.Run("fills name and version from record", func(t *testing.T) {
		store := &mockStore{rec: domain.ArtifactRecord{
			Name:     "house",
			Version:  "7",
			Document: []byte(`{"feature_order": ["beds"], "pipeline": {"kind": "remote", "url": "http://m"}}`),
		}}
		a, err := StoreSource{Store: store, Name: "house"}.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.name != "house" || a.Name != "house" || a.Version != "7" {
			t.Fatalf("unexpected artifact %+v", a)
		}
	})

	t.Run("store error", func(t *testing.T) {
		storeErr := errors.New("db down")
		_, err := StoreSource{Store: &mockStore{err: storeErr}, Name: "house"}.Load(context.Background())
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
	})

	t.Run("bad document", func(t *testing.T) {
		store := &mockStore{rec: domain.ArtifactRecord{Name: "house", Document: []byte(`{}`)}}
		_, err := StoreSource{Store: store, Name: "house"}.Load(context.Background())
		if !errors.Is(err, ErrInvalidArtifact) {
			t.Fatalf("expected ErrInvalidArtifact, got %v", err)
		}
	})
}

func TestLoadConfigured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	if err := os.WriteFile(path, []byte(linearDoc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := LoadConfigured(context.Background(), &config.Config{
		ArtifactSource: config.ArtifactSourceFile,
		ArtifactPath:   path,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Artifact.Name != "demo" || loaded.Predictor == nil {
		t.Fatalf("unexpected loaded artifact %+v", loaded)
	}

	_, err = LoadConfigured(context.Background(), &config.Config{ArtifactSource: "s3"}, zap.NewNop())
	if err == nil {
		t.Fatalf("expected error for unknown source")
	}

	_, err = LoadConfigured(context.Background(), &config.Config{ArtifactSource: config.ArtifactSourcePostgres}, zap.NewNop())
	if err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
}
