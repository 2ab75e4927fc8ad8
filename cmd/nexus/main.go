package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/nexus/internal/cli"
	"github.com/alexanderramin/nexus/internal/config"
	"github.com/alexanderramin/nexus/internal/contract"
	"github.com/alexanderramin/nexus/internal/db"
	"github.com/alexanderramin/nexus/internal/repository"
	"github.com/alexanderramin/nexus/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	cfg, err := config.Load(config.DefaultPath(home), home)
	if err != nil {
		return err
	}

	level, err := cfg.Logging.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Use-case events go to stderr only when enabled.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Logging.UseCaseEvents {
		observer = service.NewLogUseCaseObserver(logger)
	}

	kv, closeKV, err := openKV(cfg.Storage)
	if err != nil {
		return err
	}
	defer closeKV()

	store := service.NewRecordStore(kv, cli.NoticePrinter{W: os.Stderr}, observer)
	defer store.Dispose(context.Background())

	app := &cli.App{
		Store:     store,
		Dashboard: service.NewDashboardService(store, observer),
		DashboardDefaults: contract.DashboardRequest{
			RecentIncidents: cfg.Dashboard.RecentIncidents,
			RecentTasks:     cfg.Dashboard.RecentTasks,
		},
	}

	// Detect interactive terminal for the status prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}

// openKV opens the configured key-value backend. The returned closer
// releases the database, if any.
func openKV(cfg config.StorageConfig) (repository.KVRepo, func() error, error) {
	if cfg.Backend == config.BackendMemory {
		return repository.NewMemoryKVRepo(), func() error { return nil }, nil
	}

	database, err := db.OpenDB(cfg.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return repository.NewSQLiteKVRepo(database), database.Close, nil
}
