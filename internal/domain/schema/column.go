package schema

import "github.com/leengari/mini-tables/internal/domain/data"

type ColumnType = data.Type

const (
	ColumnTypeInteger  = data.TypeInteger
	ColumnTypeDouble   = data.TypeDouble
	ColumnTypeText     = data.TypeText
	ColumnTypeDateTime = data.TypeDateTime
)

type Column struct {
	Name        string
	Type        ColumnType
	Ordinal     int    // position in the schema
	Description string // display only
	NonNegative bool
	Required    bool
}

// Constraint attaches a domain rule to a column when it is added.
type Constraint func(*Column)

// NonNegative rejects numeric values below zero (quantities, prices).
func NonNegative() Constraint {
	return func(c *Column) { c.NonNegative = true }
}

// Required rejects blank TEXT values.
func Required() Constraint {
	return func(c *Column) { c.Required = true }
}

// TableSchema is the ordered set of a table's column definitions.
type TableSchema struct {
	TableName string
	Columns   []Column
}

// Lookup returns the ordinal of the named column.
func (s *TableSchema) Lookup(name string) (int, bool) {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// Types returns the declared type of every column in order.
func (s *TableSchema) Types() []data.Type {
	types := make([]data.Type, len(s.Columns))
	for i, col := range s.Columns {
		types[i] = col.Type
	}
	return types
}
