// Package migrations embeds the schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"storefront/internal/errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const dir = "sql"

//go:embed sql/*.sql
var FS embed.FS

// Commands lists what Run accepts.
var Commands = []string{"up", "down", "status"}

// Open connects through the pgx database/sql driver.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	return db, nil
}

// Run executes one goose command against db.
func Run(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	run, ok := map[string]func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error{
		"up":     goose.UpContext,
		"down":   goose.DownContext,
		"status": goose.StatusContext,
	}[command]
	if !ok {
		return errors.Errorf("unknown command %q, want one of %s", command, strings.Join(Commands, ", "))
	}

	goose.SetBaseFS(FS)
	goose.SetLogger(slogLogger{logger: logger})
	if err := goose.SetDialect("pgx"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := run(ctx, db, dir); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}

	return nil
}

// slogLogger routes goose output through slog.
type slogLogger struct {
	logger *slog.Logger
}

func (l slogLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l slogLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
