package features

// BuildRow arma la fila de entrada del pipeline a partir de los datos del formulario.
//
// Toda columna del schema arranca en Missing. Las columnas que el formulario conoce
// se escriben solo si el schema las incluye; las demás se ignoran sin error, así
// el mismo formulario sirve contra artefactos entrenados con otro conjunto de columnas.
// Para cada familia one-hot, los hermanos presentes quedan en 0 y el seleccionado en 1.
func BuildRow(schema *Schema, in Inputs) Row {
	row := NewRow(schema)

	row.setIfPresent(ColBeds, Int(in.Beds))
	row.setIfPresent(ColBaths, Int(in.Baths))
	row.setIfPresent(ColParking, Int(in.Parking))
	row.setIfPresent(ColLandSize, Number(in.LandSize))
	row.setIfPresent(ColDistanceToCBD, Number(in.DistanceToCBD))
	row.setIfPresent(ColRoomsTotal, Int(RoomsTotal(in)))

	row.setIfPresent(ColNearestSupermarket, Number(in.NearestSupermarket))
	row.setIfPresent(ColNearestTrain, Number(in.NearestTrain))
	row.setIfPresent(ColNearestBus, Number(in.NearestBus))
	row.setIfPresent(ColNearestPark, Number(in.NearestPark))
	row.setIfPresent(ColAmenityAccessIndex, Number(AmenityAccessIndex(in)))

	for _, p := range PropertyTypes {
		col, _ := p.Column()
		row.setIfPresent(col, Int(0))
	}
	if col, ok := in.PropertyType.Column(); ok {
		row.setIfPresent(col, Int(1))
	}

	for _, m := range SaleMethods {
		col, _ := m.Column()
		row.setIfPresent(col, Int(0))
	}
	if col, ok := in.SaleMethod.Column(); ok {
		row.setIfPresent(col, Int(1))
	}

	return row
}
