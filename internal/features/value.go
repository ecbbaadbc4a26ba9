package features

import (
	"encoding/json"
	"strconv"
)

// Value es una celda de la fila: un número presente o el marcador de ausente.
// El cero es un valor legítimo, distinto de Missing.
type Value struct {
	num     float64
	present bool
}

// Missing devuelve el marcador de valor ausente; la imputación la decide el pipeline.
func Missing() Value {
	return Value{}
}

func Number(f float64) Value {
	return Value{num: f, present: true}
}

func Int(i int) Value {
	return Number(float64(i))
}

func (v Value) IsMissing() bool {
	return !v.present
}

// Float64 devuelve el número y si está presente.
func (v Value) Float64() (float64, bool) {
	return v.num, v.present
}

func (v Value) String() string {
	if !v.present {
		return "NaN"
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// MarshalJSON serializa Missing como null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.num)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Missing()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Number(f)
	return nil
}
