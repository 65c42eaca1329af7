package loader

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leengari/mini-tables/internal/domain/data"
	"github.com/leengari/mini-tables/internal/domain/schema"
	"github.com/leengari/mini-tables/internal/inventory"
)

// Dataset is the populated content of a data file. The caller owns every
// table in it and must release them.
type Dataset struct {
	Tables   []*schema.Table
	Products *schema.Table
}

// LoadFile reads a YAML data file and builds its tables. On any failure every
// table built so far is released and nothing is returned.
func LoadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	var file DataFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing data file %s: %w", path, err)
	}

	return Build(file)
}

// Build turns decoded metadata into populated tables.
func Build(file DataFile) (*Dataset, error) {
	ds := &Dataset{}

	for _, meta := range file.Tables {
		tbl, err := LoadTable(meta)
		if err != nil {
			ds.Release()
			return nil, err
		}
		ds.Tables = append(ds.Tables, tbl)
	}

	if len(file.Products) > 0 {
		products, err := inventory.NewProductTable()
		if err != nil {
			ds.Release()
			return nil, err
		}
		ds.Products = products

		if _, err := inventory.FillFromList(products, file.Products); err != nil {
			// Invalid products are skipped, the rest stay loaded.
			slog.Warn("some products were rejected", "error", err)
		}
	}

	return ds, nil
}

// LoadTable builds one table from its metadata.
func LoadTable(meta TableMeta) (*schema.Table, error) {
	tbl := schema.New(meta.Name)

	if err := populate(tbl, meta); err != nil {
		_ = tbl.Release()
		return nil, fmt.Errorf("loading table %s: %w", meta.Name, err)
	}

	slog.Info("table loaded",
		slog.String("table", tbl.Name()),
		slog.Int("columns", tbl.ColumnCount()),
		slog.Int("rows", tbl.RowCount()),
	)
	return tbl, nil
}

func populate(tbl *schema.Table, meta TableMeta) error {
	types := make([]data.Type, len(meta.Columns))
	for i, c := range meta.Columns {
		typ, err := data.ParseType(c.Type)
		if err != nil {
			return fmt.Errorf("column %s: %w", c.Name, err)
		}
		types[i] = typ

		var constraints []schema.Constraint
		if c.NonNegative {
			constraints = append(constraints, schema.NonNegative())
		}
		if c.Required {
			constraints = append(constraints, schema.Required())
		}
		if _, err := tbl.AddColumn(c.Name, typ, c.Description, constraints...); err != nil {
			return err
		}
	}

	for i, cells := range meta.Rows {
		if len(cells) != len(types) {
			return fmt.Errorf("row %d has %d values, want %d", i, len(cells), len(types))
		}
		pos, err := tbl.AddRow()
		if err != nil {
			return err
		}
		for col, cell := range cells {
			v, err := data.FromAny(types[col], cell)
			if err != nil {
				return fmt.Errorf("row %d column %s: %w", i, meta.Columns[col].Name, err)
			}
			if err := tbl.SetValue(col, pos, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Table returns the loaded table with the given name.
func (ds *Dataset) Table(name string) (*schema.Table, bool) {
	for _, t := range ds.Tables {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Release releases every table that is still live.
func (ds *Dataset) Release() {
	for _, t := range ds.Tables {
		if !t.Released() {
			_ = t.Release()
		}
	}
	if ds.Products != nil && !ds.Products.Released() {
		_ = ds.Products.Release()
	}
}
