// Package patch implements the sparse-update primitives shared by every
// entity repository: a JSON field type that distinguishes "absent" from
// "null" from "value", and an ordered collector of SET assignments.
package patch

import (
	"encoding/json"
	"time"
)

// Field is a three-valued JSON field. A field left out of the payload stays
// zero (Present == false); an explicit null sets Present without Valid; a
// value sets both.
type Field[T any] struct {
	Present bool
	Valid   bool
	Value   T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if string(data) == "null" {
		f.Valid = false
		var zero T
		f.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Of returns a field carrying value.
func Of[T any](value T) Field[T] {
	return Field[T]{Present: true, Valid: true, Value: value}
}

// Null returns an explicit-null field.
func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}

// Ptr returns the value as a pointer, nil for an absent or null field.
func (f Field[T]) Ptr() *T {
	if !f.Present || !f.Valid {
		return nil
	}
	value := f.Value
	return &value
}

// Assignments accumulates column = value pairs in the order they are
// staged. The map it renders feeds gorm's Updates.
type Assignments struct {
	columns []string
	values  map[string]any
}

func NewAssignments() *Assignments {
	return &Assignments{values: make(map[string]any)}
}

// Set stages column = value when the field is present. An explicit null
// clears the column.
func Set[T any](a *Assignments, column string, f Field[T]) {
	if !f.Present {
		return
	}
	if !f.Valid {
		a.add(column, nil)
		return
	}
	a.add(column, f.Value)
}

// SetValue stages column = value only when the field carries a value.
// Explicit nulls are ignored, for columns that cannot be cleared.
func SetValue[T any](a *Assignments, column string, f Field[T]) {
	if !f.Present || !f.Valid {
		return
	}
	a.add(column, f.Value)
}

// Touch stages the updated_at marker. Every update carries it, even when no
// other field is staged.
func (a *Assignments) Touch(now time.Time) {
	a.add("updated_at", now.UTC())
}

func (a *Assignments) add(column string, value any) {
	if _, staged := a.values[column]; !staged {
		a.columns = append(a.columns, column)
	}
	a.values[column] = value
}

// Columns returns the staged column names in staging order.
func (a *Assignments) Columns() []string {
	columns := make([]string, len(a.columns))
	copy(columns, a.columns)
	return columns
}

// Map renders the staged assignments.
func (a *Assignments) Map() map[string]any {
	values := make(map[string]any, len(a.values))
	for column, value := range a.values {
		values[column] = value
	}
	return values
}
