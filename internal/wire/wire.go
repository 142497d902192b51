// Package wire provides dependency injection for the courtstat application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/courtstat/internal/adapters/cli"
	"github.com/example/courtstat/internal/adapters/postgres"
	"github.com/example/courtstat/internal/adapters/sqlite"
	"github.com/example/courtstat/internal/app"
	"github.com/example/courtstat/internal/config"
	"github.com/example/courtstat/internal/core/entry"
	"github.com/example/courtstat/internal/db"
	"github.com/example/courtstat/internal/ports/primary"
	"github.com/example/courtstat/internal/ports/secondary"
)

var (
	entryService     primary.EntryService
	directoryService primary.DirectoryService
	queryService     primary.QueryService
	once             sync.Once
)

// EntryService returns the singleton EntryService instance.
func EntryService() primary.EntryService {
	once.Do(initServices)
	return entryService
}

// DirectoryService returns the singleton DirectoryService instance.
func DirectoryService() primary.DirectoryService {
	once.Do(initServices)
	return directoryService
}

// QueryService returns the singleton QueryService instance.
func QueryService() primary.QueryService {
	once.Do(initServices)
	return queryService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var (
		courtRepo  secondary.CourtRepository
		reportRepo secondary.ReportRepository
		logRepo    secondary.EntryLogRepository
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		database, err := postgres.Open(cfg.DSN)
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		courtRepo = postgres.NewCourtRepository(database)
		reportRepo = postgres.NewReportRepository(database)
		logRepo = postgres.NewEntryLogRepository(database)
	default:
		database, err := db.GetDB()
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		courtRepo = sqlite.NewCourtRepository(database)
		reportRepo = sqlite.NewReportRepository(database)
		logRepo = sqlite.NewEntryLogRepository(database)
	}

	store := entry.NewStore()

	entryService = app.NewEntryService(courtRepo, reportRepo, logRepo, store)
	directoryService = app.NewDirectoryService(courtRepo)
	queryService = app.NewQueryService(reportRepo)
}

// EntryAdapter returns a new EntryAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func EntryAdapter() *cliadapter.EntryAdapter {
	return EntryAdapterWithOutput(os.Stdout)
}

// EntryAdapterWithOutput returns a new EntryAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func EntryAdapterWithOutput(out io.Writer) *cliadapter.EntryAdapter {
	once.Do(initServices)
	return cliadapter.NewEntryAdapter(entryService, out)
}

// DirectoryAdapter returns a new DirectoryAdapter writing to stdout.
func DirectoryAdapter() *cliadapter.DirectoryAdapter {
	return DirectoryAdapterWithOutput(os.Stdout)
}

// DirectoryAdapterWithOutput returns a new DirectoryAdapter writing to the given output.
func DirectoryAdapterWithOutput(out io.Writer) *cliadapter.DirectoryAdapter {
	once.Do(initServices)
	return cliadapter.NewDirectoryAdapter(directoryService, out)
}

// ViewAdapter returns a new ViewAdapter writing to stdout.
func ViewAdapter() *cliadapter.ViewAdapter {
	return ViewAdapterWithOutput(os.Stdout)
}

// ViewAdapterWithOutput returns a new ViewAdapter writing to the given output.
func ViewAdapterWithOutput(out io.Writer) *cliadapter.ViewAdapter {
	once.Do(initServices)
	return cliadapter.NewViewAdapter(queryService, out)
}
