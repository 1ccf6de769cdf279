package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/notekeeper/internal/config"
	"github.com/iudanet/notekeeper/internal/logging"
	"github.com/iudanet/notekeeper/internal/server"
	"github.com/iudanet/notekeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadServer(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Println("Usage: notekeeper-server [-addr :8080] [-db path] [-jwt-secret secret] [-token-ttl 24h]")
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	logger := logging.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	srv := server.New(store, server.Options{
		Clock:          clockwork.NewRealClock(),
		Logger:         logger,
		Addr:           cfg.Addr,
		JWTSecret:      cfg.JWTSecret,
		Version:        Version,
		TokenTTL:       cfg.TokenTTL,
		AuthRateLimit:  cfg.AuthRateLimit,
		AuthRateWindow: cfg.AuthRateWindow,
	})
	defer srv.Close()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		return 1
	}

	logger.Info("server stopped")
	return 0
}

func printVersion() {
	fmt.Printf("Notekeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
