package migrations

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, dir+"/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	var schema strings.Builder
	for _, name := range files {
		data, err := fs.ReadFile(FS, name)
		require.NoError(t, err)

		text := string(data)
		assert.Contains(t, text, "-- +goose Up", name)
		assert.Contains(t, text, "-- +goose Down", name)
		schema.WriteString(text)
	}

	for _, table := range []string{"roles", "users", "addresses", "sellers", "categories", "subcategories", "products", "carts", "images"} {
		assert.Contains(t, schema.String(), "CREATE TABLE "+table+" (", table)
	}
	assert.Contains(t, schema.String(), "UNIQUE (user_id, product_id)")
}

func TestRun_UnknownCommand(t *testing.T) {
	err := Run(context.Background(), nil, "redo-everything", slog.Default())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "up, down, status")
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slogLogger{logger: slog.New(slog.NewTextHandler(&buf, nil))}

	l.Printf("OK   %s\n", "00001_create_accounts.sql")

	assert.Contains(t, buf.String(), `msg="OK   00001_create_accounts.sql"`)
}
