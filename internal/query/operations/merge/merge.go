package merge

import (
	"fmt"
	"log/slog"

	"github.com/leengari/mini-tables/internal/domain/data"
	"github.com/leengari/mini-tables/internal/domain/schema"
)

// SelectionWidth is the number of columns selected from each source table.
const SelectionWidth = 5

type options struct {
	name    string
	prefixA string
	prefixB string
}

// Option customizes the merged table.
type Option func(*options)

// WithPrefixes sets the prefixes prepended to column names from A and B.
func WithPrefixes(prefixA, prefixB string) Option {
	return func(o *options) {
		o.prefixA = prefixA
		o.prefixB = prefixB
	}
}

// WithName sets the merged table's name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// MergeTables builds a new table from SelectionWidth columns of a followed by
// SelectionWidth columns of b, each renamed with its source prefix and keeping
// its source type.
//
// Rows are aligned by position in each table's current order, up to the
// shorter table's row count; surplus rows of the longer table are dropped.
// Neither source is mutated or released. The caller owns the returned table
// and must release it.
func MergeTables(a, b *schema.Table, selectA, selectB []int, opts ...Option) (*schema.Table, error) {
	colsA, err := validateSource("A", a, selectA)
	if err != nil {
		return nil, err
	}
	colsB, err := validateSource("B", b, selectB)
	if err != nil {
		return nil, err
	}

	o := options{
		name:    a.Name() + "_" + b.Name(),
		prefixA: a.Name() + "_",
		prefixB: b.Name() + "_",
	}
	for _, opt := range opts {
		opt(&o)
	}

	names := make([]string, 0, 2*SelectionWidth)
	for _, col := range colsA {
		names = append(names, o.prefixA+col.Name)
	}
	for _, col := range colsB {
		names = append(names, o.prefixB+col.Name)
	}
	if err := validateOutputNames(o.name, names); err != nil {
		return nil, err
	}

	result := schema.New(o.name)
	if err := build(result, a, b, selectA, selectB, colsA, colsB, names); err != nil {
		_ = result.Release()
		return nil, fmt.Errorf("merge %s and %s: %w", a.Name(), b.Name(), err)
	}

	slog.Info("Merge complete",
		slog.String("table", result.Name()),
		slog.Int("rows", result.RowCount()),
		slog.Int("rows_a", a.RowCount()),
		slog.Int("rows_b", b.RowCount()),
	)
	return result, nil
}

func build(result, a, b *schema.Table, selectA, selectB []int, colsA, colsB []schema.Column, names []string) error {
	for i, col := range append(append([]schema.Column{}, colsA...), colsB...) {
		if _, err := result.AddColumn(names[i], col.Type, col.Description); err != nil {
			return err
		}
	}

	n := min(a.RowCount(), b.RowCount())
	for row := 0; row < n; row++ {
		newRow, err := result.AddRow()
		if err != nil {
			return err
		}
		for i := 0; i < SelectionWidth; i++ {
			if err := copyCell(a, selectA[i], row, colsA[i].Type, result, i, newRow); err != nil {
				return err
			}
			if err := copyCell(b, selectB[i], row, colsB[i].Type, result, i+SelectionWidth, newRow); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyCell copies one cell, choosing the copy path by the source column's
// declared type.
func copyCell(src *schema.Table, srcCol, srcRow int, typ schema.ColumnType, dst *schema.Table, dstCol, dstRow int) error {
	v, err := src.GetValue(srcCol, srcRow)
	if err != nil {
		return err
	}

	var out data.Value
	switch typ {
	case schema.ColumnTypeInteger:
		out = data.Int(v.Int())
	case schema.ColumnTypeDouble:
		out = data.Double(v.Double())
	case schema.ColumnTypeText:
		out = data.Text(v.Text())
	case schema.ColumnTypeDateTime:
		out = data.DateTime(v.DateTime())
	default:
		return fmt.Errorf("column %d: unsupported type %v", srcCol, typ)
	}
	return dst.SetValue(dstCol, dstRow, out)
}
