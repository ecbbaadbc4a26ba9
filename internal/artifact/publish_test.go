package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeArtifact(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestPublish(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("AEDT", 11*3600))

	t.Run("registers the document and StoreSource reads it back", func(t *testing.T) {
		store := &mockStore{}
		rec, err := Publish(context.Background(), store, writeArtifact(t, linearDoc), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.created) != 1 {
			t.Fatalf("expected one record created, got %d", len(store.created))
		}
		if rec.ID == "" || rec.Name != "demo" || rec.Version != "1" || string(rec.Document) != linearDoc {
			t.Fatalf("unexpected record %+v", rec)
		}
		if !rec.CreatedAt.Equal(now) || rec.CreatedAt.Location() != time.UTC {
			t.Fatalf("expected created_at in UTC, got %v", rec.CreatedAt)
		}

		a, err := StoreSource{Store: store, Name: "demo"}.Load(context.Background())
		if err != nil {
			t.Fatalf("load published: %v", err)
		}
		if a.Schema().Len() != 4 || a.Pipeline.Kind != KindLinear {
			t.Fatalf("unexpected artifact %+v", a)
		}
	})

	t.Run("invalid document is not registered", func(t *testing.T) {
		store := &mockStore{}
		_, err := Publish(context.Background(), store, writeArtifact(t, `{"feature_order": []}`), now)
		if !errors.Is(err, ErrInvalidArtifact) {
			t.Fatalf("expected ErrInvalidArtifact, got %v", err)
		}
		if len(store.created) != 0 {
			t.Fatalf("expected nothing created")
		}
	})

	t.Run("version required", func(t *testing.T) {
		doc := `{"name": "demo", "feature_order": ["beds"], "pipeline": {"kind": "remote", "url": "http://m"}}`
		_, err := Publish(context.Background(), &mockStore{}, writeArtifact(t, doc), now)
		if !errors.Is(err, ErrInvalidArtifact) {
			t.Fatalf("expected ErrInvalidArtifact, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		storeErr := errors.New("duplicate key value violates unique constraint")
		_, err := Publish(context.Background(), &mockStore{createErr: storeErr}, writeArtifact(t, linearDoc), now)
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}
