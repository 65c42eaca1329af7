package sorting

import (
	"log/slog"

	"github.com/leengari/mini-tables/internal/domain/data"
	"github.com/leengari/mini-tables/internal/domain/schema"
)

// SortByColumn reorders the table's rows into non-decreasing order of the
// given column using the column type's natural ordering. Rows with equal
// values keep their relative order. Every previously captured row position is
// invalid afterwards.
func SortByColumn(table *schema.Table, col int) error {
	column, err := table.Column(col)
	if err != nil {
		return err
	}

	slog.Debug("Sort operation",
		slog.String("table", table.Name()),
		slog.String("column", column.Name),
		slog.Int("rows", table.RowCount()),
	)

	return table.SortRowsStable(func(a, b data.Row) int {
		return a.Values[col].Compare(b.Values[col])
	})
}

// SortByColumnName resolves name and sorts by that column.
func SortByColumnName(table *schema.Table, name string) error {
	col, err := table.ColumnIndex(name)
	if err != nil {
		return err
	}
	return SortByColumn(table, col)
}
