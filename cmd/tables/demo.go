package main

import (
	"io"
	"log/slog"

	"github.com/leengari/mini-tables/internal/config"
	"github.com/leengari/mini-tables/internal/display"
	"github.com/leengari/mini-tables/internal/domain/schema"
	"github.com/leengari/mini-tables/internal/inventory"
	"github.com/leengari/mini-tables/internal/query/operations/merge"
	"github.com/leengari/mini-tables/internal/storage/manager"
)

type demo struct {
	cfg      *config.Config
	registry *manager.Registry
	out      io.Writer
}

func (d *demo) show(t *schema.Table) {
	if err := display.Render(d.out, t, d.cfg.Display.Style); err != nil {
		slog.Error("render failed", "table", t.Name(), "error", err)
	}
}

// runInventory sorts the products by quantity, updates one product by ID and
// one by row position, re-sorting after each change.
func (d *demo) runInventory(products *schema.Table) {
	slog.Info("=== Inventory ===")

	if err := inventory.SortByColumn(products, inventory.Quantity); err != nil {
		slog.Error("sort failed", "error", err)
		return
	}
	d.show(products)

	outcome, err := inventory.UpdateQuantityByProductID(products, 101, 8)
	if err != nil {
		slog.Error("update by product ID failed", "error", err)
		return
	}
	slog.Info("Update by product ID", "product_id", 101, "outcome", outcome.String())

	if err := inventory.SortByColumn(products, inventory.Quantity); err != nil {
		slog.Error("sort failed", "error", err)
		return
	}

	if err := inventory.UpdateQuantityByRow(products, 2, 25); err != nil {
		slog.Error("update by row failed", "error", err)
		return
	}

	if err := inventory.SortByColumn(products, inventory.Quantity); err != nil {
		slog.Error("sort failed", "error", err)
		return
	}
	d.show(products)
}

// runMerge merges the configured customer tables and prints the result.
func (d *demo) runMerge() {
	mc := d.cfg.Merge
	slog.Info("=== Merge ===", "table_a", mc.TableA, "table_b", mc.TableB)

	a, ok := d.registry.Get(mc.TableA)
	if !ok {
		slog.Warn("merge source not found - skipping", "table", mc.TableA)
		return
	}
	b, ok := d.registry.Get(mc.TableB)
	if !ok {
		slog.Warn("merge source not found - skipping", "table", mc.TableB)
		return
	}

	d.show(a)
	d.show(b)

	opts := []merge.Option{}
	if mc.PrefixA != "" || mc.PrefixB != "" {
		opts = append(opts, merge.WithPrefixes(mc.PrefixA, mc.PrefixB))
	}
	if mc.Name != "" {
		opts = append(opts, merge.WithName(mc.Name))
	}

	result, err := merge.MergeTables(a, b, mc.ColumnsA, mc.ColumnsB, opts...)
	if err != nil {
		slog.Error("merge failed", "error", err)
		return
	}
	defer func() {
		if err := result.Release(); err != nil {
			slog.Error("release merged table failed", "error", err)
		}
	}()

	d.show(result)
}
