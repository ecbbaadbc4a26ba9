package features

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySchema     = errors.New("feature schema is empty")
	ErrBlankColumn     = errors.New("feature schema has a blank column name")
	ErrDuplicateColumn = errors.New("feature schema has a duplicate column")
)

// Schema es la lista ordenada de columnas que espera el pipeline.
// Es inmutable después de NewSchema y se comparte sin locks.
type Schema struct {
	names []string
	index map[string]int
}

// NewSchema valida y copia la lista de columnas.
func NewSchema(names []string) (*Schema, error) {
	if len(names) == 0 {
		return nil, ErrEmptySchema
	}
	s := &Schema{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: position %d", ErrBlankColumn, i)
		}
		if _, dup := s.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		s.names[i] = name
		s.index[name] = i
	}
	return s, nil
}

// MustSchema es NewSchema para listas fijas conocidas; entra en pánico si son inválidas.
func MustSchema(names ...string) *Schema {
	s, err := NewSchema(names)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Len() int {
	return len(s.names)
}

// Names devuelve una copia de las columnas en orden.
func (s *Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}
