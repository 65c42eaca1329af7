package inventory

// Product is one inventory entry as supplied by a data source.
type Product struct {
	ID       int64   `yaml:"id"`
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Quantity int64   `yaml:"quantity"`
	Price    float64 `yaml:"price"`
}

// ProductColumn names a column of the product table.
type ProductColumn int

const (
	ProductID ProductColumn = iota
	ProductName
	Category
	Quantity
	UnitPrice
)

var productColumnNames = [...]string{
	ProductID:   "ProductID",
	ProductName: "ProductName",
	Category:    "Category",
	Quantity:    "Quantity",
	UnitPrice:   "UnitPrice",
}

// Name returns the column name used in the product table.
func (c ProductColumn) Name() string {
	return productColumnNames[c]
}

// Ordinal is the column's position in a table built by InitProductTable.
func (c ProductColumn) Ordinal() int {
	return int(c)
}
