package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/leengari/mini-tables/internal/domain/data"
	"github.com/leengari/mini-tables/internal/domain/schema"
)

func sampleTable(t *testing.T) *schema.Table {
	t.Helper()
	tbl := schema.New("orders")
	_, err := tbl.AddColumn("ID", schema.ColumnTypeInteger, "")
	assert.NilError(t, err)
	_, err = tbl.AddColumn("Amount", schema.ColumnTypeDouble, "")
	assert.NilError(t, err)
	_, err = tbl.AddColumn("At", schema.ColumnTypeDateTime, "")
	assert.NilError(t, err)

	row, _ := tbl.AddRow()
	assert.NilError(t, tbl.SetValue(0, row, data.Int(7)))
	assert.NilError(t, tbl.SetValue(1, row, data.Double(12.5)))
	assert.NilError(t, tbl.SetValue(2, row, data.DateTime(time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC))))
	return tbl
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, Render(&buf, sampleTable(t), "light"))

	out := buf.String()
	for _, want := range []string{"orders", "ID (INTEGER)", "Amount (DOUBLE)", "At (DATETIME)", "12.5", "2024-02-03T04:05:06Z"} {
		assert.Assert(t, strings.Contains(out, want), "missing %q in:\n%s", want, out)
	}
}

func TestRender_UnknownStyleFallsBack(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, Render(&buf, sampleTable(t), "neon"))
	assert.Assert(t, buf.Len() > 0)
}

func TestRender_Released(t *testing.T) {
	tbl := sampleTable(t)
	assert.NilError(t, tbl.Release())

	var buf bytes.Buffer
	assert.ErrorContains(t, Render(&buf, tbl, "light"), "released")
}

func TestRender_NilTable(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, Render(&buf, nil, "light"), "not initialized")
	assert.Equal(t, buf.Len(), 0)
}
