// Package form describe los campos del formulario de estimación: etiquetas, límites,
// valores por defecto y el acotado que hace cada widget antes de armar la fila.
package form

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"house-price/internal/features"
)

var ErrInvalidNumber = errors.New("invalid number")

// Field es un campo numérico del formulario.
type Field struct {
	Name    string
	Label   string
	Integer bool
	Min     float64
	Max     float64
	Default float64
	Step    float64

	get func(*features.Inputs) float64
	set func(*features.Inputs, float64)
}

// Get lee el valor del campo desde los inputs.
func (f Field) Get(in features.Inputs) float64 {
	return f.get(&in)
}

// Set escribe el valor acotado a los límites del campo.
func (f Field) Set(in *features.Inputs, v float64) {
	f.set(in, f.Clamp(v))
}

// Clamp acota v a [Min, Max]; los enteros se redondean.
func (f Field) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return f.Default
	}
	if f.Integer {
		v = math.Round(v)
	}
	return math.Min(f.Max, math.Max(f.Min, v))
}

// Format muestra el valor como lo haría el widget.
func (f Field) Format(v float64) string {
	if f.Integer {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Fields en el orden en que se muestran.
var Fields = []Field{
	{Name: features.ColBeds, Label: "Bedrooms", Integer: true, Min: 0, Max: 12, Default: 3, Step: 1,
		get: func(in *features.Inputs) float64 { return float64(in.Beds) },
		set: func(in *features.Inputs, v float64) { in.Beds = int(v) }},
	{Name: features.ColBaths, Label: "Bathrooms", Integer: true, Min: 0, Max: 8, Default: 2, Step: 1,
		get: func(in *features.Inputs) float64 { return float64(in.Baths) },
		set: func(in *features.Inputs, v float64) { in.Baths = int(v) }},
	{Name: features.ColParking, Label: "Parking spaces", Integer: true, Min: 0, Max: 8, Default: 1, Step: 1,
		get: func(in *features.Inputs) float64 { return float64(in.Parking) },
		set: func(in *features.Inputs, v float64) { in.Parking = int(v) }},
	{Name: features.ColLandSize, Label: "Land size (m²)", Min: 0, Max: 200000, Default: 400, Step: 10,
		get: func(in *features.Inputs) float64 { return in.LandSize },
		set: func(in *features.Inputs, v float64) { in.LandSize = v }},
	{Name: features.ColDistanceToCBD, Label: "Distance to CBD (km)", Min: 0, Max: 500, Default: 10, Step: 0.5,
		get: func(in *features.Inputs) float64 { return in.DistanceToCBD },
		set: func(in *features.Inputs, v float64) { in.DistanceToCBD = v }},
	{Name: features.ColNearestSupermarket, Label: "Nearest supermarket (km)", Min: 0, Max: 200, Default: 0.8, Step: 0.1,
		get: func(in *features.Inputs) float64 { return in.NearestSupermarket },
		set: func(in *features.Inputs, v float64) { in.NearestSupermarket = v }},
	{Name: features.ColNearestTrain, Label: "Nearest train (km)", Min: 0, Max: 200, Default: 1.2, Step: 0.1,
		get: func(in *features.Inputs) float64 { return in.NearestTrain },
		set: func(in *features.Inputs, v float64) { in.NearestTrain = v }},
	{Name: features.ColNearestBus, Label: "Nearest bus (km)", Min: 0, Max: 200, Default: 0.3, Step: 0.1,
		get: func(in *features.Inputs) float64 { return in.NearestBus },
		set: func(in *features.Inputs, v float64) { in.NearestBus = v }},
	{Name: features.ColNearestPark, Label: "Nearest park (km)", Min: 0, Max: 200, Default: 0.5, Step: 0.1,
		get: func(in *features.Inputs) float64 { return in.NearestPark },
		set: func(in *features.Inputs, v float64) { in.NearestPark = v }},
}

const (
	PropertyTypeField = "property_type"
	SaleMethodField   = "sale_method"
)

// Defaults devuelve el estado inicial del formulario.
func Defaults() features.Inputs {
	var in features.Inputs
	for _, f := range Fields {
		f.set(&in, f.Default)
	}
	in.PropertyType = features.PropertyTypes[0]
	in.SaleMethod = features.SaleMethods[0]
	return in
}

// Clamp aplica los límites de cada widget; selecciones desconocidas vuelven al default.
func Clamp(in features.Inputs) features.Inputs {
	out := in
	for _, f := range Fields {
		f.set(&out, f.Clamp(f.get(&in)))
	}
	if _, ok := out.PropertyType.Column(); !ok {
		out.PropertyType = features.PropertyTypes[0]
	}
	if _, ok := out.SaleMethod.Column(); !ok {
		out.SaleMethod = features.SaleMethods[0]
	}
	return out
}

// FromValues lee un formulario HTML. Los campos ausentes toman su default, los números
// mal formados y las etiquetas desconocidas son error. El resultado ya está acotado.
func FromValues(values url.Values) (features.Inputs, error) {
	in := Defaults()
	for _, f := range Fields {
		raw := strings.TrimSpace(values.Get(f.Name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return features.Inputs{}, fmt.Errorf("%w for %s: %q", ErrInvalidNumber, f.Name, raw)
		}
		f.Set(&in, v)
	}
	if raw := values.Get(PropertyTypeField); strings.TrimSpace(raw) != "" {
		p, err := features.ParsePropertyType(raw)
		if err != nil {
			return features.Inputs{}, err
		}
		in.PropertyType = p
	}
	if raw := values.Get(SaleMethodField); strings.TrimSpace(raw) != "" {
		m, err := features.ParseSaleMethod(raw)
		if err != nil {
			return features.Inputs{}, err
		}
		in.SaleMethod = m
	}
	return in, nil
}
