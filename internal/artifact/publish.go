package artifact

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"house-price/internal/domain"
)

// RecordPublisher es el subconjunto del repositorio de artefactos que usa Publish.
type RecordPublisher interface {
	Create(ctx context.Context, rec domain.ArtifactRecord) error
}

// Publish valida el documento en path y lo registra tal cual, para que StoreSource
// lo lea en el próximo arranque. Un documento inválido no se registra.
func Publish(ctx context.Context, store RecordPublisher, path string, now time.Time) (domain.ArtifactRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ArtifactRecord{}, fmt.Errorf("read artifact: %w", err)
	}
	a, err := Parse(data)
	if err != nil {
		return domain.ArtifactRecord{}, fmt.Errorf("%s: %w", path, err)
	}
	if a.Name == "" || a.Version == "" {
		return domain.ArtifactRecord{}, fmt.Errorf("%w: name and version are required to publish", ErrInvalidArtifact)
	}

	rec := domain.ArtifactRecord{
		ID:        uuid.NewString(),
		Name:      a.Name,
		Version:   a.Version,
		Document:  data,
		CreatedAt: now.UTC(),
	}
	if err := store.Create(ctx, rec); err != nil {
		return domain.ArtifactRecord{}, fmt.Errorf("publish %s v%s: %w", a.Name, a.Version, err)
	}
	return rec, nil
}
