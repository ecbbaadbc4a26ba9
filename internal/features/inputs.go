package features

import (
	"errors"
	"fmt"
	"strings"
)

// Columnas que el formulario sabe poblar.
const (
	ColBeds               = "beds"
	ColBaths              = "baths"
	ColParking            = "parking"
	ColLandSize           = "land_size"
	ColDistanceToCBD      = "distance_to_cbd"
	ColRoomsTotal         = "rooms_total"
	ColNearestSupermarket = "nearest_supermarket"
	ColNearestTrain       = "nearest_train"
	ColNearestBus         = "nearest_bus"
	ColNearestPark        = "nearest_park"
	ColAmenityAccessIndex = "amenity_access_index"
)

var (
	ErrUnknownPropertyType = errors.New("unknown property type")
	ErrUnknownSaleMethod   = errors.New("unknown sale method")
)

// Inputs son los datos crudos de una interacción del formulario.
// Se asume que ya fueron validados y acotados en el borde de entrada.
type Inputs struct {
	Beds               int
	Baths              int
	Parking            int
	LandSize           float64
	DistanceToCBD      float64
	NearestSupermarket float64
	NearestTrain       float64
	NearestBus         float64
	NearestPark        float64
	PropertyType       PropertyType
	SaleMethod         SaleMethod
}

type PropertyType string

const (
	PropertyHouse     PropertyType = "House"
	PropertyApartment PropertyType = "Apartment / Unit / Flat / Studio"
	PropertyTownhouse PropertyType = "Townhouse"
	PropertyVilla     PropertyType = "Villa"
	PropertyLand      PropertyType = "Land"
)

// PropertyTypes en el orden en que se muestran en el selector.
var PropertyTypes = []PropertyType{
	PropertyHouse,
	PropertyApartment,
	PropertyTownhouse,
	PropertyVilla,
	PropertyLand,
}

var propertyTypeColumns = map[PropertyType]string{
	PropertyHouse:     "property_type_house",
	PropertyApartment: "property_type_apartment_unit_flat_studio",
	PropertyTownhouse: "property_type_townhouse",
	PropertyVilla:     "property_type_villa",
	PropertyLand:      "property_type_land",
}

// Column devuelve la columna one-hot del tipo de propiedad.
func (p PropertyType) Column() (string, bool) {
	col, ok := propertyTypeColumns[p]
	return col, ok
}

// ParsePropertyType acepta la etiqueta del selector ignorando mayúsculas y espacios.
func ParsePropertyType(label string) (PropertyType, error) {
	key := normalizeLabel(label)
	for _, p := range PropertyTypes {
		if normalizeLabel(string(p)) == key {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPropertyType, label)
}

type SaleMethod string

const (
	SalePrivateTreaty SaleMethod = "Private treaty"
	SaleAuction       SaleMethod = "Auction"
	SalePriorAuction  SaleMethod = "Prior auction"
	SaleActive        SaleMethod = "Active (listed)"
)

var SaleMethods = []SaleMethod{
	SalePrivateTreaty,
	SaleAuction,
	SalePriorAuction,
	SaleActive,
}

var saleMethodColumns = map[SaleMethod]string{
	SalePrivateTreaty: "sale_method_private_treaty",
	SaleAuction:       "sale_method_auction",
	SalePriorAuction:  "sale_method_prior_auction",
	SaleActive:        "sale_method_active",
}

func (m SaleMethod) Column() (string, bool) {
	col, ok := saleMethodColumns[m]
	return col, ok
}

func ParseSaleMethod(label string) (SaleMethod, error) {
	key := normalizeLabel(label)
	for _, m := range SaleMethods {
		if normalizeLabel(string(m)) == key {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSaleMethod, label)
}

// normalizeLabel quita espacios y pasa a minúsculas: "Apartment/Unit/Flat/Studio"
// y "apartment / unit / flat / studio" son la misma etiqueta.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), ""))
}
