package artifact

import (
	"context"
	"fmt"

	"house-price/internal/domain"
)

// Source entrega el artefacto una única vez al arrancar.
type Source interface {
	Load(ctx context.Context) (*Artifact, error)
}

type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) (*Artifact, error) {
	return LoadFile(s.Path)
}

// RecordStore es el subconjunto del repositorio de artefactos que usa StoreSource.
type RecordStore interface {
	GetLatest(ctx context.Context, name string) (domain.ArtifactRecord, error)
}

// StoreSource lee la última versión registrada de un artefacto por nombre.
type StoreSource struct {
	Store RecordStore
	Name  string
}

func (s StoreSource) Load(ctx context.Context) (*Artifact, error) {
	rec, err := s.Store.GetLatest(ctx, s.Name)
	if err != nil {
		return nil, fmt.Errorf("load artifact %q: %w", s.Name, err)
	}
	a, err := Parse(rec.Document)
	if err != nil {
		return nil, fmt.Errorf("artifact %q version %s: %w", rec.Name, rec.Version, err)
	}
	if a.Name == "" {
		a.Name = rec.Name
	}
	if a.Version == "" {
		a.Version = rec.Version
	}
	return a, nil
}
