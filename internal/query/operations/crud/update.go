package crud

import (
	"fmt"
	"log/slog"

	"github.com/leengari/mini-tables/internal/domain/data"
	"github.com/leengari/mini-tables/internal/domain/errors"
	"github.com/leengari/mini-tables/internal/domain/schema"
	"github.com/leengari/mini-tables/internal/query/operations/search"
	"github.com/leengari/mini-tables/internal/query/operations/sorting"
)

// Outcome is the non-error result of a key-addressed update.
type Outcome int

const (
	// Updated means a matching row was found and its target cell replaced.
	Updated Outcome = iota + 1
	// NotFound means no row carried the key; nothing was mutated.
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Updated:
		return "updated"
	case NotFound:
		return "not_found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// UpdateByKey sorts the table by keyCol, finds the first row whose key equals
// key and sets that row's targetCol to newValue.
//
// A missing key is reported as the NotFound outcome, not as an error. All
// validation runs before the sort, so a failed call leaves the table exactly
// as it was.
func UpdateByKey(table *schema.Table, keyCol int, key data.Value, targetCol int, newValue data.Value) (Outcome, error) {
	if err := requireRows(table, "update by key"); err != nil {
		return 0, err
	}

	keyColumn, err := table.Column(keyCol)
	if err != nil {
		return 0, err
	}
	if key.Type() != keyColumn.Type {
		return 0, errors.NewTypeMismatch(table.Name(), keyColumn.Name, key.Interface(), keyColumn.Type.String())
	}
	if err := table.ValidateValue(targetCol, newValue); err != nil {
		return 0, err
	}

	if err := sorting.SortByColumn(table, keyCol); err != nil {
		return 0, err
	}

	row, err := search.FindFirst(table, keyCol, key)
	if err != nil {
		return 0, err
	}
	if row == search.NotFound {
		slog.Info("Update by key: no matching row",
			"table", table.Name(),
			"key_column", keyColumn.Name,
			"key", key.Interface(),
		)
		return NotFound, nil
	}

	if err := table.SetValue(targetCol, row, newValue); err != nil {
		return 0, fmt.Errorf("update by key at row %d: %w", row, err)
	}

	slog.Info("Update by key",
		"table", table.Name(),
		"key_column", keyColumn.Name,
		"key", key.Interface(),
		"row", row,
		"value", newValue.Interface(),
	)
	return Updated, nil
}

// UpdateByPosition sets targetCol of the row at position row to newValue.
// row must lie in [0, RowCount()-1].
func UpdateByPosition(table *schema.Table, row int, targetCol int, newValue data.Value) error {
	if err := requireRows(table, "update by position"); err != nil {
		return err
	}
	if row < 0 || row >= table.RowCount() {
		return errors.NewRowOutOfRange(table.Name(), row, table.RowCount())
	}
	if err := table.ValidateValue(targetCol, newValue); err != nil {
		return err
	}

	if err := table.SetValue(targetCol, row, newValue); err != nil {
		return fmt.Errorf("update by position at row %d: %w", row, err)
	}

	slog.Info("Update by position",
		"table", table.Name(),
		"row", row,
		"column", targetCol,
		"value", newValue.Interface(),
	)
	return nil
}

func requireRows(table *schema.Table, op string) error {
	if table == nil {
		return &errors.StateError{Table: "<nil>", Op: op, Reason: "table is not initialized"}
	}
	if table.Released() {
		return errors.NewReleased(table.Name(), op)
	}
	if table.RowCount() == 0 {
		return errors.NewEmptyTable(table.Name(), op)
	}
	return nil
}
