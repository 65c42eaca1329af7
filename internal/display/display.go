package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/leengari/mini-tables/internal/domain/schema"
)

var styles = map[string]table.Style{
	"light":   table.StyleLight,
	"rounded": table.StyleRounded,
	"double":  table.StyleDouble,
	"default": table.StyleDefault,
}

// Render writes the current contents of t to w: a header line with each
// column's name and type, then one line per row in current order.
func Render(w io.Writer, t *schema.Table, style string) error {
	if t == nil {
		return fmt.Errorf("render: table is not initialized")
	}
	if t.Released() {
		return fmt.Errorf("render %s: table has been released", t.Name())
	}

	cols := t.Columns()
	header := make(table.Row, len(cols))
	for i, col := range cols {
		header[i] = fmt.Sprintf("%s (%s)", col.Name, col.Type)
	}

	rows := make([]table.Row, 0, t.RowCount())
	for i := 0; i < t.RowCount(); i++ {
		row, err := t.Row(i)
		if err != nil {
			return fmt.Errorf("render %s: %w", t.Name(), err)
		}
		cells := make(table.Row, len(row.Values))
		for j, v := range row.Values {
			cells[j] = v.String()
		}
		rows = append(rows, cells)
	}

	tw := table.NewWriter()
	tw.SetTitle(t.Name())
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	tw.SetStyle(lookupStyle(style))
	tw.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}

	if _, err := io.WriteString(w, tw.Render()+"\n"); err != nil {
		return err
	}
	return nil
}

func lookupStyle(name string) table.Style {
	if s, ok := styles[strings.ToLower(name)]; ok {
		return s
	}
	return table.StyleLight
}
