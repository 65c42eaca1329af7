package testutil

import (
	"testing"
	"time"

	"github.com/leengari/mini-tables/internal/domain/data"
	"github.com/leengari/mini-tables/internal/domain/schema"
)

// ColumnSpec describes a column for BuildTable.
type ColumnSpec struct {
	Name string
	Type schema.ColumnType
}

// BuildTable creates a table with the given columns and appends one row per
// entry of rows, failing the test on any error.
func BuildTable(t *testing.T, name string, cols []ColumnSpec, rows ...[]data.Value) *schema.Table {
	t.Helper()
	table := schema.New(name)
	for _, c := range cols {
		if _, err := table.AddColumn(c.Name, c.Type, c.Name); err != nil {
			t.Fatalf("add column %s: %v", c.Name, err)
		}
	}
	for _, values := range rows {
		pos, err := table.AddRow()
		if err != nil {
			t.Fatalf("add row: %v", err)
		}
		for col, v := range values {
			if err := table.SetValue(col, pos, v); err != nil {
				t.Fatalf("set (%d,%d): %v", col, pos, err)
			}
		}
	}
	t.Cleanup(func() {
		if !table.Released() {
			_ = table.Release()
		}
	})
	return table
}

// CreateProductsTable creates the inventory table used across operation tests:
// ProductID, ProductName, Category, Quantity (non-negative), UnitPrice (non-negative).
func CreateProductsTable(t *testing.T) *schema.Table {
	t.Helper()
	table := schema.New("products")
	must := func(_ int, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("create products table: %v", err)
		}
	}
	must(table.AddColumn("ProductID", schema.ColumnTypeInteger, "Product ID"))
	must(table.AddColumn("ProductName", schema.ColumnTypeText, "Product Name", schema.Required()))
	must(table.AddColumn("Category", schema.ColumnTypeText, "Category"))
	must(table.AddColumn("Quantity", schema.ColumnTypeInteger, "Quantity in Stock", schema.NonNegative()))
	must(table.AddColumn("UnitPrice", schema.ColumnTypeDouble, "Unit Price", schema.NonNegative()))

	products := [][]data.Value{
		{data.Int(101), data.Text("Laptop"), data.Text("Electronics"), data.Int(5), data.Double(1200.0)},
		{data.Int(102), data.Text("Mouse"), data.Text("Electronics"), data.Int(20), data.Double(15.5)},
		{data.Int(103), data.Text("Chair"), data.Text("Furniture"), data.Int(10), data.Double(85.0)},
		{data.Int(104), data.Text("Desk"), data.Text("Furniture"), data.Int(5), data.Double(150.0)},
	}
	for _, values := range products {
		pos, _ := table.AddRow()
		for col, v := range values {
			if err := table.SetValue(col, pos, v); err != nil {
				t.Fatalf("seed products: %v", err)
			}
		}
	}
	t.Cleanup(func() {
		if !table.Released() {
			_ = table.Release()
		}
	})
	return table
}

// CreateCustomerProfileTable returns a 6-column customer table with the given
// number of rows.
func CreateCustomerProfileTable(t *testing.T, rows int) *schema.Table {
	t.Helper()
	since := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	var values [][]data.Value
	for i := 0; i < rows; i++ {
		values = append(values, []data.Value{
			data.Int(int64(i + 1)),
			data.Text("customer-" + string(rune('a'+i))),
			data.Text("city-" + string(rune('a'+i))),
			data.DateTime(since.AddDate(0, i, 0)),
			data.Double(float64(i) * 1.5),
			data.Text("tier-" + string(rune('a'+i))),
		})
	}
	return BuildTable(t, "profile", []ColumnSpec{
		{"CustomerID", schema.ColumnTypeInteger},
		{"Name", schema.ColumnTypeText},
		{"City", schema.ColumnTypeText},
		{"Since", schema.ColumnTypeDateTime},
		{"Score", schema.ColumnTypeDouble},
		{"Tier", schema.ColumnTypeText},
	}, values...)
}

// CreateCustomerTransactionsTable returns a 5-column transactions table with
// the given number of rows.
func CreateCustomerTransactionsTable(t *testing.T, rows int) *schema.Table {
	t.Helper()
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	var values [][]data.Value
	for i := 0; i < rows; i++ {
		values = append(values, []data.Value{
			data.Int(int64(1000 + i)),
			data.Int(int64(i + 1)),
			data.Double(10.0 * float64(i+1)),
			data.DateTime(at.Add(time.Duration(i) * time.Hour)),
			data.Text("card"),
		})
	}
	return BuildTable(t, "transactions", []ColumnSpec{
		{"TransactionID", schema.ColumnTypeInteger},
		{"CustomerID", schema.ColumnTypeInteger},
		{"Amount", schema.ColumnTypeDouble},
		{"At", schema.ColumnTypeDateTime},
		{"Method", schema.ColumnTypeText},
	}, values...)
}

// Snapshot captures every cell of a table in row order as plain Go values.
func Snapshot(t *testing.T, table *schema.Table) [][]any {
	t.Helper()
	out := make([][]any, table.RowCount())
	for i := range out {
		row, err := table.Row(i)
		if err != nil {
			t.Fatalf("snapshot row %d: %v", i, err)
		}
		out[i] = row.Interfaces()
	}
	return out
}

// ColumnValues returns one column's values in current row order.
func ColumnValues(t *testing.T, table *schema.Table, col int) []any {
	t.Helper()
	out := make([]any, table.RowCount())
	for i := range out {
		v, err := table.GetValue(col, i)
		if err != nil {
			t.Fatalf("column %d row %d: %v", col, i, err)
		}
		out[i] = v.Interface()
	}
	return out
}
