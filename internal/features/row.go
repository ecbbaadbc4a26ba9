package features

// Row es una fila completa alineada con su Schema: una celda por columna, en orden.
type Row struct {
	schema *Schema
	values []Value
}

// NewRow crea una fila con todas las celdas en Missing.
func NewRow(schema *Schema) Row {
	return Row{
		schema: schema,
		values: make([]Value, schema.Len()),
	}
}

// Field es un par columna/valor presente en la fila.
type Field struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func (r Row) Schema() *Schema {
	return r.schema
}

func (r Row) Len() int {
	return len(r.values)
}

// Names devuelve las columnas de la fila en el orden del schema.
func (r Row) Names() []string {
	if r.schema == nil {
		return nil
	}
	return r.schema.Names()
}

// Values devuelve una copia de las celdas en el orden del schema.
func (r Row) Values() []Value {
	out := make([]Value, len(r.values))
	copy(out, r.values)
	return out
}

// Get devuelve la celda de una columna; ok es false si la columna no está en el schema.
func (r Row) Get(name string) (Value, bool) {
	if r.schema == nil {
		return Value{}, false
	}
	i, ok := r.schema.Index(name)
	if !ok {
		return Value{}, false
	}
	return r.values[i], true
}

// Present devuelve los campos no ausentes, en orden del schema.
func (r Row) Present() []Field {
	fields := make([]Field, 0, len(r.values))
	for i, v := range r.values {
		if f, ok := v.Float64(); ok {
			fields = append(fields, Field{Name: r.schema.names[i], Value: f})
		}
	}
	return fields
}

// Map devuelve la fila como mapa columna → celda.
func (r Row) Map() map[string]Value {
	m := make(map[string]Value, len(r.values))
	for i, v := range r.values {
		m[r.schema.names[i]] = v
	}
	return m
}

// setIfPresent escribe la celda solo si el schema conoce la columna.
func (r Row) setIfPresent(name string, v Value) bool {
	i, ok := r.schema.Index(name)
	if !ok {
		return false
	}
	r.values[i] = v
	return true
}
