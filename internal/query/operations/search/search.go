package search

import (
	"github.com/leengari/mini-tables/internal/domain/data"
	"github.com/leengari/mini-tables/internal/domain/errors"
	"github.com/leengari/mini-tables/internal/domain/schema"
)

// NotFound is returned by FindFirst when no row matches. It is never a valid
// row position.
const NotFound = -1

// FindFirst returns the position of the first row, in current row order,
// whose value in col equals target, or NotFound.
//
// FindFirst does not sort. To get first-in-group semantics the caller sorts
// the table by col immediately before calling it.
func FindFirst(table *schema.Table, col int, target data.Value) (int, error) {
	column, err := table.Column(col)
	if err != nil {
		return NotFound, err
	}
	if target.Type() != column.Type {
		return NotFound, errors.NewTypeMismatch(table.Name(), column.Name, target.Interface(), column.Type.String())
	}

	for row := 0; row < table.RowCount(); row++ {
		v, err := table.GetValue(col, row)
		if err != nil {
			return NotFound, err
		}
		if v.Equal(target) {
			return row, nil
		}
	}
	return NotFound, nil
}
