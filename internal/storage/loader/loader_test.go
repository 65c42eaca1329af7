package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

const sampleData = `
tables:
  - name: customer_profile
    columns:
      - {name: CustomerID, type: INTEGER, description: Customer ID}
      - {name: Name, type: TEXT, required: true}
      - {name: Balance, type: DOUBLE, non_negative: true}
      - {name: Since, type: DATETIME}
    rows:
      - [1, "Ana", 120.5, 2023-01-05]
      - [2, "Luis", 0, "2023-03-10T08:30:00Z"]
products:
  - {id: 101, name: Laptop, category: Electronics, quantity: 5, price: 1200.0}
  - {id: 102, name: "", category: Electronics, quantity: 20, price: 15.5}
`

func writeData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	ds, err := LoadFile(writeData(t, sampleData))
	assert.NilError(t, err)
	defer ds.Release()

	profile, ok := ds.Table("customer_profile")
	assert.Assert(t, ok)
	assert.Equal(t, profile.ColumnCount(), 4)
	assert.Equal(t, profile.RowCount(), 2)

	col, err := profile.Column(2)
	assert.NilError(t, err)
	assert.Assert(t, col.NonNegative)

	balance, err := profile.GetValue(2, 1)
	assert.NilError(t, err)
	assert.Equal(t, balance.Double(), 0.0)

	since, err := profile.GetValue(3, 0)
	assert.NilError(t, err)
	assert.Assert(t, since.DateTime().Equal(time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)))

	// The product without a name is rejected, the other one is kept.
	assert.Assert(t, ds.Products != nil)
	assert.Equal(t, ds.Products.RowCount(), 1)

	_, ok = ds.Table("missing")
	assert.Assert(t, !ok)
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "tables: [", "parsing data file"},
		{"unknown type", "tables:\n  - name: t\n    columns:\n      - {name: a, type: BLOB}\n", "unknown column type"},
		{"duplicate column", "tables:\n  - name: t\n    columns:\n      - {name: a, type: INT}\n      - {name: a, type: TEXT}\n", "duplicate_column"},
		{"short row", "tables:\n  - name: t\n    columns:\n      - {name: a, type: INT}\n    rows:\n      - []\n", "has 0 values"},
		{"wrong cell type", "tables:\n  - name: t\n    columns:\n      - {name: a, type: INT}\n    rows:\n      - [abc]\n", "expected INTEGER"},
		{"negative value", "tables:\n  - name: t\n    columns:\n      - {name: a, type: INT, non_negative: true}\n    rows:\n      - [-1]\n", "non_negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := LoadFile(writeData(t, tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Assert(t, ds == nil)
		})
	}

	_, err := LoadFile("/nonexistent/data.yaml")
	assert.ErrorContains(t, err, "reading data file")
}

func TestBuild_ReleasesPartialResults(t *testing.T) {
	good := TableMeta{Name: "good", Columns: []ColumnMeta{{Name: "a", Type: "INT"}}, Rows: [][]any{{1}}}
	bad := TableMeta{Name: "bad", Columns: []ColumnMeta{{Name: "a", Type: "NOPE"}}}

	ds, err := Build(DataFile{Tables: []TableMeta{good, bad}})
	assert.ErrorContains(t, err, "loading table bad")
	assert.Assert(t, ds == nil)
}
