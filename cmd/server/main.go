package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"calcapi/internal/config"
	"calcapi/internal/server"
	"calcapi/internal/server/handlers"
	"calcapi/internal/server/storage"
	"calcapi/internal/server/storage/boltdb"
	"calcapi/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "calcapi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Учетные записи всегда в SQLite: его UNIQUE constraint закрывает
	// гонку параллельных регистраций одного username
	sqliteStore, err := sqlite.New(ctx, cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("open sqlite storage: %w", err)
	}
	defer sqliteStore.Close()

	// История операций либо в том же SQLite, либо в отдельном
	// append-only BoltDB логе
	var history storage.HistoryStorage = sqliteStore
	if cfg.HistoryBackend == config.HistoryBackendBolt {
		boltStore, err := boltdb.New(ctx, cfg.BoltPath)
		if err != nil {
			return fmt.Errorf("open bolt storage: %w", err)
		}
		defer boltStore.Close()
		history = boltStore
	}

	logger.Info("storage initialized",
		"sqlite_path", cfg.SQLitePath,
		"history_backend", cfg.HistoryBackend)

	router := server.NewRouter(logger, server.Handlers{
		Calc:    handlers.NewCalcHandler(logger, history),
		Account: handlers.NewAccountHandler(logger, sqliteStore),
		Info:    handlers.NewInfoHandler(logger, Version),
		Health:  handlers.NewHealthHandler(logger, Version),
	})

	srv := server.New(logger, cfg.Addr, router, cfg.ShutdownTimeout)
	return srv.Run(ctx)
}

// newLogger создает JSON slog логгер с уровнем из конфигурации
func newLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}

func printVersion() {
	fmt.Printf("Calculator History API Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
