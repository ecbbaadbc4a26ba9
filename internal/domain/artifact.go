package domain

import "time"

// ArtifactRecord es una versión registrada del artefacto del modelo.
type ArtifactRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Document  []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
