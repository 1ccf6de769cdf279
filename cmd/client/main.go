package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/notekeeper/internal/client/api"
	"github.com/iudanet/notekeeper/internal/client/auth"
	"github.com/iudanet/notekeeper/internal/client/cli"
	"github.com/iudanet/notekeeper/internal/client/data"
	"github.com/iudanet/notekeeper/internal/client/iocli"
	"github.com/iudanet/notekeeper/internal/client/storage"
	"github.com/iudanet/notekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/notekeeper/internal/client/storage/sqlite"
	"github.com/iudanet/notekeeper/internal/config"
	"github.com/iudanet/notekeeper/internal/correlation"
	"github.com/iudanet/notekeeper/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// localStore — хранилище сессии, которое нужно закрыть по завершении
type localStore interface {
	storage.LocalStorage
	io.Closer
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(os.Stdout)
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	if len(args) == 0 {
		cli.PrintUsage(os.Stdout)
		return 1
	}

	logging.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = correlation.WithID(ctx, correlation.NewID())

	store, err := openStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL)

	manager, err := auth.NewManager(ctx, apiClient, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	notes := data.NewService(apiClient, manager)

	app := cli.New(iocli.NewStdio(), manager, notes, clockwork.NewRealClock())
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// openStorage открывает выбранный в настройках backend локального хранилища
func openStorage(ctx context.Context, cfg *config.Config) (localStore, error) {
	slog.DebugContext(ctx, "opening local storage", "backend", cfg.Storage, "path", cfg.DBPath)

	switch cfg.Storage {
	case config.StorageSQLite:
		return sqlite.New(ctx, cfg.DBPath)
	case config.StorageBolt:
		return boltdb.New(ctx, cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

func printVersion() {
	fmt.Printf("Notekeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
