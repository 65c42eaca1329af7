package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/leengari/mini-tables/internal/config"
	"github.com/leengari/mini-tables/internal/domain/schema"
	"github.com/leengari/mini-tables/internal/inventory"
	"github.com/leengari/mini-tables/internal/logging"
	"github.com/leengari/mini-tables/internal/storage/loader"
	"github.com/leengari/mini-tables/internal/storage/manager"
)

func main() {
	configPath := flag.String("config", "configs/tables.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	logger, closeFn := logging.SetupLogger(cfg.Logging)
	defer closeFn()

	slog.SetDefault(logger)
	slog.Info("Starting mini-tables...", "data_file", cfg.Data.File)

	ds, err := loader.LoadFile(cfg.Data.File)
	if err != nil {
		slog.Error("failed to load data file", "error", err)
		closeFn()
		os.Exit(1)
	}

	registry := manager.NewRegistry()
	defer func() {
		slog.Info("Shutting down - releasing tables...")
		if err := registry.ReleaseAll(); err != nil {
			slog.Error("release failed", "error", err)
		}
	}()

	observer := schema.NewLoggingObserver(logger)
	tables := ds.Tables
	if ds.Products != nil {
		tables = append(tables, ds.Products)
	}
	for _, tbl := range tables {
		tbl.AddObserver(observer)
		if err := registry.Register(tbl); err != nil {
			slog.Error("failed to register table", "table", tbl.Name(), "error", err)
			_ = tbl.Release()
		}
	}

	d := &demo{cfg: cfg, registry: registry, out: os.Stdout}

	if products, ok := registry.Get(inventory.TableName); ok {
		d.runInventory(products)
	} else {
		slog.Warn("products table not found - skipping inventory scenario")
	}

	d.runMerge()

	slog.Info("All scenarios finished", "tables", registry.Names())
}
