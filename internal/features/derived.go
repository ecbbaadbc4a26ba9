package features

// AmenityEpsilon evita la división por cero en distancias nulas.
const AmenityEpsilon = 1e-6

// RoomsTotal suma dormitorios, baños y estacionamientos.
func RoomsTotal(in Inputs) int {
	return in.Beds + in.Baths + in.Parking
}

// AmenityAccessIndex suma las distancias inversas (km) a supermercado, tren, bus y parque.
func AmenityAccessIndex(in Inputs) float64 {
	return 1/(AmenityEpsilon+in.NearestSupermarket) +
		1/(AmenityEpsilon+in.NearestTrain) +
		1/(AmenityEpsilon+in.NearestBus) +
		1/(AmenityEpsilon+in.NearestPark)
}
