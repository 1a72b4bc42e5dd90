package main

import (
	"log/slog"
	"os"

	"github.com/cardata/cardb/cars"
	"github.com/cardata/cardb/internal/config"
	"github.com/cardata/cardb/internal/ingest"
	"github.com/cardata/cardb/internal/storage"
)

func main() {
	conf := config.SetupConfig()

	// All parsing happens before the store is touched, so a failed or empty
	// scan leaves any existing database file exactly as it was.
	combined, err := ingest.Load(conf.SourceDir)
	if err != nil {
		slog.Error("failed to load car data", "source_dir", conf.SourceDir, "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(conf.DatabaseFile)
	if err != nil {
		slog.Error("failed to open database", "dbfile", conf.DatabaseFile, "error", err)
		os.Exit(1)
	}

	if err := store.ReplaceAllCars(combined); err != nil {
		store.Close()
		slog.Error("failed to write combined table", "dbfile", conf.DatabaseFile, "error", err)
		os.Exit(1)
	}

	if err := store.Close(); err != nil {
		slog.Error("failed to close database", "dbfile", conf.DatabaseFile, "error", err)
		os.Exit(1)
	}

	slog.Info("all car data merged and stored",
		"dbfile", conf.DatabaseFile,
		"table", cars.TableName,
		"rows", len(combined.Rows))
}
