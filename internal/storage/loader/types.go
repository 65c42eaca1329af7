package loader

import "github.com/leengari/mini-tables/internal/inventory"

// DataFile is the on-disk YAML layout of a data source.
type DataFile struct {
	Tables   []TableMeta         `yaml:"tables"`
	Products []inventory.Product `yaml:"products"`
}

type TableMeta struct {
	Name    string       `yaml:"name"`
	Columns []ColumnMeta `yaml:"columns"`
	Rows    [][]any      `yaml:"rows"`
}

type ColumnMeta struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
	NonNegative bool   `yaml:"non_negative,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
}
