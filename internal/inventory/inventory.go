package inventory

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leengari/mini-tables/internal/domain/data"
	"github.com/leengari/mini-tables/internal/domain/errors"
	"github.com/leengari/mini-tables/internal/domain/schema"
	"github.com/leengari/mini-tables/internal/query/operations/crud"
	"github.com/leengari/mini-tables/internal/query/operations/sorting"
)

// TableName is the name given to product tables by NewProductTable.
const TableName = "products"

// NewProductTable creates and initializes an empty product table. If the
// schema cannot be built the table is released and not returned.
func NewProductTable() (*schema.Table, error) {
	tbl := schema.New(TableName)
	if err := InitProductTable(tbl); err != nil {
		_ = tbl.Release()
		return nil, err
	}
	return tbl, nil
}

// InitProductTable adds the product columns to an empty table.
func InitProductTable(tbl *schema.Table) error {
	defs := []struct {
		col         ProductColumn
		typ         schema.ColumnType
		description string
		constraints []schema.Constraint
	}{
		{ProductID, schema.ColumnTypeInteger, "Product ID", nil},
		{ProductName, schema.ColumnTypeText, "Product Name", []schema.Constraint{schema.Required()}},
		{Category, schema.ColumnTypeText, "Category", nil},
		{Quantity, schema.ColumnTypeInteger, "Quantity in Stock", []schema.Constraint{schema.NonNegative()}},
		{UnitPrice, schema.ColumnTypeDouble, "Unit Price", []schema.Constraint{schema.NonNegative()}},
	}

	for _, d := range defs {
		ord, err := tbl.AddColumn(d.col.Name(), d.typ, d.description, d.constraints...)
		if err != nil {
			return fmt.Errorf("initializing product table: %w", err)
		}
		if ord != d.col.Ordinal() {
			return fmt.Errorf("initializing product table: column %s landed at %d, want %d", d.col.Name(), ord, d.col.Ordinal())
		}
	}
	return nil
}

// AddProduct validates p and appends it as a new row. Nothing is added when
// validation fails.
func AddProduct(tbl *schema.Table, p Product) error {
	if tbl == nil {
		return &errors.StateError{Table: TableName, Op: "add product", Reason: "table is not initialized"}
	}
	if tbl.Released() {
		return errors.NewReleased(tbl.Name(), "add product")
	}
	if strings.TrimSpace(p.Name) == "" {
		return &errors.ValidationError{
			Table:      tbl.Name(),
			Column:     ProductName.Name(),
			Value:      p.ID,
			Constraint: "required",
			Reason:     "name cannot be empty",
			RowIndex:   -1,
		}
	}
	if p.Quantity < 0 {
		return errors.NewNegativeValue(tbl.Name(), Quantity.Name(), p.Quantity)
	}
	if p.Price < 0 {
		return errors.NewNegativeValue(tbl.Name(), UnitPrice.Name(), p.Price)
	}

	values := []data.Value{
		ProductID:   data.Int(p.ID),
		ProductName: data.Text(p.Name),
		Category:    data.Text(p.Category),
		Quantity:    data.Int(p.Quantity),
		UnitPrice:   data.Double(p.Price),
	}
	if tbl.ColumnCount() != len(values) {
		return &errors.ValidationError{
			Table:      tbl.Name(),
			Value:      tbl.ColumnCount(),
			Constraint: "product_layout",
			Reason:     fmt.Sprintf("product table must have %d columns", len(values)),
			RowIndex:   -1,
		}
	}
	for col, v := range values {
		if err := tbl.ValidateValue(col, v); err != nil {
			return fmt.Errorf("adding product %d: %w", p.ID, err)
		}
	}

	row, err := tbl.AddRow()
	if err != nil {
		return err
	}
	for col, v := range values {
		if err := tbl.SetValue(col, row, v); err != nil {
			return fmt.Errorf("adding product %d: %w", p.ID, err)
		}
	}

	slog.Info("Product added", "name", p.Name, "id", p.ID)
	return nil
}

// FillFromList adds every valid product and returns how many were added.
// Invalid products are skipped; their errors are joined in the result.
func FillFromList(tbl *schema.Table, products []Product) (int, error) {
	if len(products) == 0 {
		slog.Warn("Product list is empty")
		return 0, nil
	}

	added := 0
	var errs []error
	for _, p := range products {
		if err := AddProduct(tbl, p); err != nil {
			slog.Warn("Invalid product skipped", "id", p.ID, "error", err)
			errs = append(errs, err)
			continue
		}
		added++
	}
	return added, stderrors.Join(errs...)
}

// SortByColumn sorts the product table by one of its columns.
func SortByColumn(tbl *schema.Table, col ProductColumn) error {
	return sorting.SortByColumn(tbl, col.Ordinal())
}

// UpdateQuantityByProductID sets the quantity of the first product with the
// given ID. The table ends up sorted by ProductID.
func UpdateQuantityByProductID(tbl *schema.Table, productID, newQuantity int64) (crud.Outcome, error) {
	outcome, err := crud.UpdateByKey(tbl, ProductID.Ordinal(), data.Int(productID), Quantity.Ordinal(), data.Int(newQuantity))
	if err != nil {
		return 0, err
	}
	if outcome == crud.NotFound {
		slog.Info("Product not found, no update performed", "id", productID)
	}
	return outcome, nil
}

// UpdateQuantityByRow sets the quantity of the product at row position row.
func UpdateQuantityByRow(tbl *schema.Table, row int, newQuantity int64) error {
	return crud.UpdateByPosition(tbl, row, Quantity.Ordinal(), data.Int(newQuantity))
}
