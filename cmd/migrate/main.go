// Command migrate applies the embedded schema migrations.
//
//	migrate [-dsn postgres://...] up|down|status
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/migrations"
)

func main() {
	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "PostgreSQL connection string (defaults to $DATABASE_URL)")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	logger := newLogger()
	if *dsn == "" {
		logger.Error("No database DSN given; pass -dsn or set DATABASE_URL")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *dsn, command, logger); err != nil {
		logger.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn, command string, logger *slog.Logger) error {
	db, err := migrations.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return migrations.Run(ctx, db, command, logger)
}

// newLogger honours env.log from config.yaml when it can be loaded.
func newLogger() *slog.Logger {
	cfg, err := config.New()
	if err != nil {
		return slog.Default()
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return slog.Default()
	}

	return logger
}
