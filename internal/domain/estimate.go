package domain

import (
	"time"

	"house-price/internal/features"
)

// Estimate es el resultado de una predicción. Se muestra y se descarta.
type Estimate struct {
	RequestID      string           `json:"request_id"`
	Price          float64          `json:"price"`
	FormattedPrice string           `json:"formatted_price"`
	Inputs         []features.Field `json:"inputs"`
	Derived        Preview          `json:"derived"`
	Artifact       string           `json:"artifact,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Preview son los valores derivados que se muestran bajo el formulario.
type Preview struct {
	RoomsTotal         int     `json:"rooms_total"`
	AmenityAccessIndex float64 `json:"amenity_access_index"`
	AmenityDisplay     string  `json:"amenity_access_index_display"`
}
