// Command demo exercises the event collection engine end to end from a
// terminal: it opens the configured storage backend, seeds it on first run,
// and renders a searched/sorted view of the collection together with the
// dashboard aggregates. With -export it writes the collection to stdout in
// one of the interchange formats instead.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // driver import
	"github.com/rs/zerolog"
	"go.etcd.io/bbolt"

	"github.com/eventdeck/campus-events-store-go/example/config"
	"github.com/eventdeck/campus-events-store-go/eventstore"
	"github.com/eventdeck/campus-events-store-go/eventstore/logadapters"
	"github.com/eventdeck/campus-events-store-go/eventstore/storageengine"
	"github.com/eventdeck/campus-events-store-go/transfer"
)

func main() {
	configPath := flag.String("config", "campus-events.yaml", "path of the YAML config file")
	searchPattern := flag.String("search", "", "filter pattern (regex, falls back to substring)")
	sortField := flag.String("sort", "date", "sort field: date, duration, title, location, tag, description")
	sortDirection := flag.String("direction", "asc", "sort direction: asc or desc")
	exportFormat := flag.String("export", "", "write the collection to stdout as json, csv or ics and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config, error: ", err)
	}

	logger := buildLogger(cfg.LogLevel)

	engine, closeStorage, err := openEngine(cfg, logger)
	if err != nil {
		log.Fatal("Failed to open storage backend, error: ", err)
	}
	defer closeStorage()

	ctx := context.Background()

	if err := engine.SeedIfEmpty(ctx); err != nil {
		log.Fatal("Failed to seed storage, error: ", err)
	}

	store, err := eventstore.NewStore(engine, eventstore.WithLogger(logger))
	if err != nil {
		log.Fatal("Failed to create store, error: ", err)
	}

	if err := store.LoadFromStorage(ctx); err != nil {
		log.Fatal("Failed to load collection, error: ", err)
	}

	records := store.List()

	if *exportFormat != "" {
		if err := writeExport(os.Stdout, records, *exportFormat); err != nil {
			log.Fatal("Export failed, error: ", err)
		}

		return
	}

	visible := eventstore.Search(records, *searchPattern)
	visible = eventstore.SortRecords(visible,
		eventstore.SortField(*sortField),
		eventstore.SortDirection(*sortDirection))

	printEvents(visible, *searchPattern)
	printDashboard(records, time.Now())
}

func buildLogger(level string) eventstore.Logger {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		parsedLevel = zerolog.InfoLevel
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsedLevel).
		With().Timestamp().Logger()

	return logadapters.NewZerologLogger(zl)
}

func openEngine(cfg *config.Config, logger eventstore.Logger) (storageengine.Engine, func(), error) {
	options := []storageengine.Option{
		storageengine.WithStorageKey(cfg.StorageKey),
		storageengine.WithSeedSource(cfg.SeedPath),
		storageengine.WithLogger(logger),
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := sql.Open("sqlite3", cfg.StoragePath)
		if err != nil {
			return storageengine.Engine{}, nil, err
		}

		engine, err := storageengine.NewEngineFromSQLDB(db, options...)

		return engine, func() { db.Close() }, err

	case config.BackendSQLX:
		db, err := sqlx.Open("sqlite3", cfg.StoragePath)
		if err != nil {
			return storageengine.Engine{}, nil, err
		}

		engine, err := storageengine.NewEngineFromSQLX(db, options...)

		return engine, func() { db.Close() }, err

	default:
		db, err := bbolt.Open(cfg.StoragePath, 0o600, nil)
		if err != nil {
			return storageengine.Engine{}, nil, err
		}

		engine, err := storageengine.NewEngineFromBolt(db, options...)

		return engine, func() { db.Close() }, err
	}
}

func writeExport(w io.Writer, records eventstore.EventRecords, format string) error {
	switch format {
	case "json":
		raw, err := transfer.ExportJSON(records, time.Now())
		if err != nil {
			return err
		}

		_, err = w.Write(raw)

		return err

	case "csv":
		_, err := w.Write(transfer.ExportCSV(records))
		return err

	case "ics":
		_, err := w.Write(transfer.ExportICS(records))
		return err

	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func printEvents(records eventstore.EventRecords, pattern string) {
	fmt.Printf("%d event(s)\n\n", len(records))

	for _, record := range records {
		fmt.Printf("  %s %s  %-35s %-25s %s\n",
			record.Date,
			record.StartTime,
			eventstore.Highlight(record.Title, pattern),
			eventstore.Highlight(record.DisplayLocation(), pattern),
			record.Tag)
	}

	fmt.Println()
}

func printDashboard(records eventstore.EventRecords, now time.Time) {
	summary := eventstore.Summarize(records, now)

	topCategory := summary.TopCategory
	if topCategory == "" {
		topCategory = "N/A"
	}

	fmt.Println("Dashboard")
	fmt.Printf("  Total events:    %d\n", summary.TotalEvents)
	fmt.Printf("  Rooms used today: %d\n", summary.RoomsUsedToday)
	fmt.Printf("  Top category:    %s\n", topCategory)
	fmt.Printf("  Next 7 days:     %d\n", summary.UpcomingWeekCount)

	trend := eventstore.ComputeWeeklyTrend(records, now)

	fmt.Println("\nThis week")
	for _, bucket := range trend.Buckets {
		fmt.Printf("  %-9s %s %d\n",
			bucket.Weekday.String(),
			strings.Repeat("#", bucket.Count),
			bucket.Count)
	}

	if trend.HasEvents {
		fmt.Printf("  Busiest day: %s (%s) with %d event(s)\n",
			trend.BusiestWeekday.String(), trend.BusiestDate, trend.BusiestCount)
	} else {
		fmt.Println("  No events scheduled for this week")
	}
}
