package features

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func sampleInputs() Inputs {
	return Inputs{
		Beds:               3,
		Baths:              2,
		Parking:            1,
		LandSize:           400,
		DistanceToCBD:      10,
		NearestSupermarket: 0.8,
		NearestTrain:       1.2,
		NearestBus:         0.3,
		NearestPark:        0.5,
		PropertyType:       PropertyHouse,
		SaleMethod:         SaleAuction,
	}
}

func mustNumber(t *testing.T, row Row, name string) float64 {
	t.Helper()
	v, ok := row.Get(name)
	if !ok {
		t.Fatalf("expected column %q in row", name)
	}
	f, ok := v.Float64()
	if !ok {
		t.Fatalf("expected %q to be present, got missing", name)
	}
	return f
}

func TestBuildRowEndToEnd(t *testing.T) {
	schema := MustSchema(
		"beds", "baths", "parking", "rooms_total",
		"property_type_house", "property_type_apartment_unit_flat_studio",
		"sale_method_auction",
	)
	row := BuildRow(schema, sampleInputs())

	want := []Value{Int(3), Int(2), Int(1), Int(6), Int(1), Int(0), Int(1)}
	if !reflect.DeepEqual(row.Values(), want) {
		t.Fatalf("unexpected row values: got %v want %v", row.Values(), want)
	}
	if !reflect.DeepEqual(row.Names(), schema.Names()) {
		t.Fatalf("expected row names to follow schema order, got %v", row.Names())
	}
}

func TestBuildRowKeySetMatchesSchema(t *testing.T) {
	schemas := [][]string{
		{"beds"},
		{"zz_unknown", "beds", "aa_unknown"},
		{"amenity_access_index", "sale_method_active", "suburb_median", "land_size"},
		FormColumns(),
		append([]string{"year_built", "lat", "lng"}, FormColumns()...),
	}
	for _, names := range schemas {
		schema := MustSchema(names...)
		row := BuildRow(schema, sampleInputs())
		if row.Len() != len(names) {
			t.Fatalf("expected %d cells, got %d", len(names), row.Len())
		}
		if !reflect.DeepEqual(row.Names(), names) {
			t.Fatalf("expected order %v, got %v", names, row.Names())
		}
		if len(row.Map()) != len(names) {
			t.Fatalf("expected key set of size %d, got %d", len(names), len(row.Map()))
		}
	}
}

func TestBuildRowRoomsTotal(t *testing.T) {
	schema := MustSchema("rooms_total")
	for _, tc := range []struct{ beds, baths, parking int }{
		{0, 0, 0}, {3, 2, 1}, {12, 8, 8}, {1, 0, 4},
	} {
		in := sampleInputs()
		in.Beds, in.Baths, in.Parking = tc.beds, tc.baths, tc.parking
		got := mustNumber(t, BuildRow(schema, in), "rooms_total")
		if got != float64(tc.beds+tc.baths+tc.parking) {
			t.Fatalf("rooms_total for %+v: got %v", tc, got)
		}
	}
}

func TestBuildRowAmenityAccessIndex(t *testing.T) {
	schema := MustSchema("amenity_access_index")
	got := mustNumber(t, BuildRow(schema, sampleInputs()), "amenity_access_index")
	want := 1.25 + 1/1.2 + 1/0.3 + 2.0
	if math.Abs(got-want) > 1e-3 {
		t.Fatalf("expected index ~%.3f, got %.6f", want, got)
	}
	if math.Abs(got-7.417) > 1e-3 {
		t.Fatalf("expected index ~7.417, got %.6f", got)
	}
}

func TestAmenityAccessIndexZeroDistance(t *testing.T) {
	in := sampleInputs()
	in.NearestBus = 0
	got := AmenityAccessIndex(in)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("expected finite index for zero distance, got %v", got)
	}
	if got < 1e6 {
		t.Fatalf("expected zero distance to dominate the index, got %v", got)
	}
}

func TestBuildRowOneHotFamilies(t *testing.T) {
	schema := MustSchema(FormColumns()...)
	for _, p := range PropertyTypes {
		for _, m := range SaleMethods {
			in := sampleInputs()
			in.PropertyType = p
			in.SaleMethod = m
			row := BuildRow(schema, in)

			pc, _ := p.Column()
			mc, _ := m.Column()
			assertOneHot(t, row, "property_type_", pc)
			assertOneHot(t, row, "sale_method_", mc)
		}
	}
}

func assertOneHot(t *testing.T, row Row, prefix, selected string) {
	t.Helper()
	ones := 0
	for _, f := range row.Present() {
		if !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		switch f.Value {
		case 1:
			ones++
			if f.Name != selected {
				t.Fatalf("expected %s set, got %s", selected, f.Name)
			}
		case 0:
		default:
			t.Fatalf("unexpected one-hot value %v for %s", f.Value, f.Name)
		}
	}
	if ones != 1 {
		t.Fatalf("expected exactly one %s* column set, got %d", prefix, ones)
	}
}

func TestBuildRowSelectedColumnAbsent(t *testing.T) {
	schema := MustSchema("property_type_house", "property_type_villa", "sale_method_auction")
	in := sampleInputs()
	in.PropertyType = PropertyLand
	in.SaleMethod = SalePriorAuction
	row := BuildRow(schema, in)

	for _, name := range schema.Names() {
		if got := mustNumber(t, row, name); got != 0 {
			t.Fatalf("expected %s to be 0 when selection is absent, got %v", name, got)
		}
	}
}

func TestBuildRowUnsetColumnsStayMissing(t *testing.T) {
	schema := MustSchema("year_built", "beds", "council_area", "nearest_bus")
	row := BuildRow(schema, sampleInputs())

	for _, name := range []string{"year_built", "council_area"} {
		v, _ := row.Get(name)
		if !v.IsMissing() {
			t.Fatalf("expected %s to stay missing, got %v", name, v)
		}
	}
	if got := mustNumber(t, row, "nearest_bus"); got != 0.3 {
		t.Fatalf("expected nearest_bus 0.3, got %v", got)
	}
}

func TestBuildRowZeroIsNotMissing(t *testing.T) {
	schema := MustSchema("beds", "land_size")
	in := sampleInputs()
	in.Beds = 0
	in.LandSize = 0
	row := BuildRow(schema, in)
	for _, v := range row.Values() {
		if v.IsMissing() {
			t.Fatalf("expected zero values to be present")
		}
	}
	if len(row.Present()) != 2 {
		t.Fatalf("expected both fields present, got %v", row.Present())
	}
}

func TestBuildRowDoesNotShareState(t *testing.T) {
	schema := MustSchema("beds", "baths")
	first := BuildRow(schema, sampleInputs())
	in := sampleInputs()
	in.Beds = 9
	_ = BuildRow(schema, in)
	if got := mustNumber(t, first, "beds"); got != 3 {
		t.Fatalf("expected earlier row to keep beds=3, got %v", got)
	}
}
