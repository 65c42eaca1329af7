package merge

import (
	"fmt"

	"github.com/leengari/mini-tables/internal/domain/errors"
	"github.com/leengari/mini-tables/internal/domain/schema"
)

// validateSource checks one source table and its selection, returning the
// selected column definitions in selection order.
func validateSource(label string, table *schema.Table, selection []int) ([]schema.Column, error) {
	if table == nil {
		return nil, &errors.ValidationError{
			Table:      label,
			Constraint: "table_required",
			Reason:     "table cannot be nil",
			RowIndex:   -1,
		}
	}
	if table.Released() {
		return nil, &errors.ValidationError{
			Table:      table.Name(),
			Constraint: "table_released",
			Reason:     fmt.Sprintf("table %s has been released", label),
			RowIndex:   -1,
		}
	}
	if len(selection) != SelectionWidth {
		return nil, &errors.ValidationError{
			Table:      table.Name(),
			Value:      len(selection),
			Constraint: "selection_width",
			Reason:     fmt.Sprintf("you must select exactly %d columns from table %s", SelectionWidth, label),
			RowIndex:   -1,
		}
	}

	cols := make([]schema.Column, len(selection))
	for i, idx := range selection {
		if idx < 0 || idx >= table.ColumnCount() {
			return nil, &errors.ValidationError{
				Table:      table.Name(),
				Value:      idx,
				Constraint: "column_range",
				Reason:     fmt.Sprintf("column index %s out of range [0, %d)", label, table.ColumnCount()),
				RowIndex:   -1,
			}
		}
		col, err := table.Column(idx)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return cols, nil
}

// validateOutputNames rejects selections whose prefixed names would collide
// in the merged schema.
func validateOutputNames(result string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return errors.NewDuplicateColumn(result, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
