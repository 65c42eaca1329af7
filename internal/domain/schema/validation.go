package schema

import (
	"strings"

	"github.com/leengari/mini-tables/internal/domain/data"
	"github.com/leengari/mini-tables/internal/domain/errors"
)

// ValidateValue checks v against the declared type and constraints of column
// col without touching the table. Update operations call it before mutating.
func (t *Table) ValidateValue(col int, v data.Value) error {
	if t.released {
		return errors.NewReleased(t.name, "validate")
	}
	if col < 0 || col >= len(t.schema.Columns) {
		return errors.NewUnknownColumn(t.name, col)
	}
	return t.validateValue(col, v)
}

// validateValue assumes col is in range.
func (t *Table) validateValue(col int, v data.Value) error {
	c := t.schema.Columns[col]

	if v.Type() != c.Type {
		return errors.NewTypeMismatch(t.name, c.Name, v.Interface(), c.Type.String())
	}

	if c.NonNegative && v.Negative() {
		return errors.NewNegativeValue(t.name, c.Name, v.Interface())
	}

	if c.Required && c.Type == ColumnTypeText && strings.TrimSpace(v.Text()) == "" {
		return &errors.ValidationError{
			Table:      t.name,
			Column:     c.Name,
			Constraint: "required",
			Reason:     "value cannot be empty",
			RowIndex:   -1,
		}
	}

	return nil
}
