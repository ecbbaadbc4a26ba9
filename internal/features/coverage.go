package features

// FormColumns lista todas las columnas que BuildRow puede escribir.
func FormColumns() []string {
	cols := []string{
		ColBeds, ColBaths, ColParking, ColLandSize, ColDistanceToCBD, ColRoomsTotal,
		ColNearestSupermarket, ColNearestTrain, ColNearestBus, ColNearestPark, ColAmenityAccessIndex,
	}
	for _, p := range PropertyTypes {
		col, _ := p.Column()
		cols = append(cols, col)
	}
	for _, m := range SaleMethods {
		col, _ := m.Column()
		cols = append(cols, col)
	}
	return cols
}

// CoverageReport describe cómo encaja el formulario con un schema dado.
type CoverageReport struct {
	// Populated: columnas del schema que el formulario llena.
	Populated []string `json:"populated"`
	// Imputed: columnas del schema que quedan para el imputer del pipeline.
	Imputed []string `json:"imputed"`
	// Dropped: columnas del formulario que el schema no tiene.
	Dropped []string `json:"dropped"`
}

func Coverage(schema *Schema) CoverageReport {
	form := make(map[string]struct{})
	report := CoverageReport{
		Populated: []string{},
		Imputed:   []string{},
		Dropped:   []string{},
	}
	for _, col := range FormColumns() {
		form[col] = struct{}{}
		if !schema.Has(col) {
			report.Dropped = append(report.Dropped, col)
		}
	}
	for _, name := range schema.names {
		if _, ok := form[name]; ok {
			report.Populated = append(report.Populated, name)
		} else {
			report.Imputed = append(report.Imputed, name)
		}
	}
	return report
}
