package schema

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/leengari/mini-tables/internal/domain/data"
	"github.com/leengari/mini-tables/internal/domain/errors"
)

// Table is an owned, in-memory table: an ordered schema plus an ordered
// sequence of rows holding exactly one typed value per column.
//
// A Table has no internal locking; callers must not use the same table from
// more than one goroutine at a time. Release must be called exactly once when
// the table is no longer needed.
type Table struct {
	id        uuid.UUID
	name      string
	schema    *TableSchema
	rows      []data.Row
	released  bool
	observers []Observer
}

// New creates an empty table with no columns and no rows.
func New(name string) *Table {
	return &Table{
		id:     uuid.New(),
		name:   name,
		schema: &TableSchema{TableName: name},
	}
}

func (t *Table) ID() uuid.UUID { return t.id }
func (t *Table) Name() string  { return t.name }

// Released reports whether Release has been called.
func (t *Table) Released() bool { return t.released }

// RowCount returns the number of rows. A released table has no rows.
func (t *Table) RowCount() int { return len(t.rows) }

// ColumnCount returns the number of columns. A released table has no columns.
func (t *Table) ColumnCount() int {
	if t.released {
		return 0
	}
	return len(t.schema.Columns)
}

// AddColumn appends a column definition and returns its ordinal.
// Columns cannot be added once the table holds rows.
func (t *Table) AddColumn(name string, typ ColumnType, description string, constraints ...Constraint) (int, error) {
	if t.released {
		return -1, errors.NewReleased(t.name, "add column")
	}
	if strings.TrimSpace(name) == "" {
		return -1, &errors.ValidationError{
			Table:      t.name,
			Constraint: "column_name",
			Reason:     "column name cannot be empty",
			RowIndex:   -1,
		}
	}
	if _, exists := t.schema.Lookup(name); exists {
		return -1, errors.NewDuplicateColumn(t.name, name)
	}
	if !typ.Valid() {
		return -1, &errors.ValidationError{
			Table:      t.name,
			Column:     name,
			Value:      int(typ),
			Constraint: "column_type",
			Reason:     "unknown column type",
			RowIndex:   -1,
		}
	}
	if len(t.rows) > 0 {
		return -1, &errors.ValidationError{
			Table:      t.name,
			Column:     name,
			Constraint: "schema_locked",
			Reason:     "cannot add a column to a table that already has rows",
			RowIndex:   -1,
		}
	}

	col := Column{
		Name:        name,
		Type:        typ,
		Ordinal:     len(t.schema.Columns),
		Description: description,
	}
	for _, c := range constraints {
		c(&col)
	}
	t.schema.Columns = append(t.schema.Columns, col)

	t.notify(EventColumnAdded, name)
	return col.Ordinal, nil
}

// Columns returns a copy of the schema's column definitions.
func (t *Table) Columns() []Column {
	if t.released {
		return nil
	}
	cols := make([]Column, len(t.schema.Columns))
	copy(cols, t.schema.Columns)
	return cols
}

// Column returns the definition of the column at ordinal col.
func (t *Table) Column(col int) (Column, error) {
	if t.released {
		return Column{}, errors.NewReleased(t.name, "column")
	}
	if col < 0 || col >= len(t.schema.Columns) {
		return Column{}, errors.NewUnknownColumn(t.name, col)
	}
	return t.schema.Columns[col], nil
}

// ColumnIndex resolves a column name to its ordinal.
func (t *Table) ColumnIndex(name string) (int, error) {
	if t.released {
		return -1, errors.NewReleased(t.name, "column index")
	}
	idx, ok := t.schema.Lookup(name)
	if !ok {
		return -1, errors.NewUnknownColumn(t.name, name)
	}
	return idx, nil
}

// AddRow appends a row holding the unset value of every column and returns
// its position.
func (t *Table) AddRow() (int, error) {
	if t.released {
		return -1, errors.NewReleased(t.name, "add row")
	}

	pos := len(t.rows)
	t.rows = append(t.rows, data.NewRow(t.schema.Types()))

	t.notify(EventRowAdded, pos)
	return pos, nil
}

// GetValue returns the cell at (col, row).
func (t *Table) GetValue(col, row int) (data.Value, error) {
	if err := t.checkCell("get value", col, row); err != nil {
		return data.Value{}, err
	}
	return t.rows[row].Values[col], nil
}

// SetValue replaces the cell at (col, row). The value must match the column's
// declared type and satisfy its constraints; nothing changes on failure.
func (t *Table) SetValue(col, row int, v data.Value) error {
	if err := t.checkCell("set value", col, row); err != nil {
		return err
	}
	if err := t.validateValue(col, v); err != nil {
		return err
	}

	t.rows[row].Values[col] = v

	t.notify(EventValueSet, CellRef{Column: col, Row: row})
	return nil
}

// Row returns a copy of the row at the given position.
func (t *Table) Row(row int) (data.Row, error) {
	if t.released {
		return data.Row{}, errors.NewReleased(t.name, "row")
	}
	if row < 0 || row >= len(t.rows) {
		return data.Row{}, errors.NewRowOutOfRange(t.name, row, len(t.rows))
	}
	return t.rows[row].Copy(), nil
}

// SortRowsStable reorders rows with a stable sort driven by cmp.
// Row positions captured before the call are invalid afterwards.
//
// It sorts a permutation of row positions, breaking ties by original
// position, and applies it once: O(n log n) comparisons and n row moves.
func (t *Table) SortRowsStable(cmp func(a, b data.Row) int) error {
	if t.released {
		return errors.NewReleased(t.name, "sort")
	}

	perm := make([]int, len(t.rows))
	for i := range perm {
		perm[i] = i
	}
	slices.SortFunc(perm, func(i, j int) int {
		if c := cmp(t.rows[i], t.rows[j]); c != 0 {
			return c
		}
		return i - j
	})

	sorted := make([]data.Row, len(t.rows))
	for pos, src := range perm {
		sorted[pos] = t.rows[src]
	}
	t.rows = sorted

	t.notify(EventRowsSorted, len(t.rows))
	return nil
}

// Release drops the table's rows and schema. Any later use is an error.
func (t *Table) Release() error {
	if t.released {
		return errors.NewReleased(t.name, "release")
	}

	t.notify(EventReleased, len(t.rows))

	t.rows = nil
	t.schema = &TableSchema{TableName: t.name}
	t.released = true
	t.observers = nil

	slog.Debug("table released", "table", t.name, "table_id", t.id)
	return nil
}

// CellRef addresses a single cell; it is the payload of EventValueSet.
type CellRef struct {
	Column int
	Row    int
}

func (t *Table) checkCell(op string, col, row int) error {
	if t.released {
		return errors.NewReleased(t.name, op)
	}
	if col < 0 || col >= len(t.schema.Columns) {
		return errors.NewUnknownColumn(t.name, col)
	}
	if row < 0 || row >= len(t.rows) {
		return errors.NewRowOutOfRange(t.name, row, len(t.rows))
	}
	return nil
}
