package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	wrapped := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code, ConstraintName: "users_email_key"})
	}

	assert.True(t, isUniqueConstraintViolation(wrapped(pgUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrapped(pgForeignKeyViolation)))

	assert.True(t, isForeignKeyConstraintViolation(wrapped(pgForeignKeyViolation)))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.True(t, isNotNullConstraintViolation(wrapped(pgNotNullViolation)))
	assert.True(t, isCheckConstraintViolation(wrapped(pgCheckViolation)))
	assert.False(t, isCheckConstraintViolation(fmt.Errorf("plain")))

	assert.Equal(t, "users_email_key", pgConstraintName(wrapped(pgUniqueViolation)))
	assert.Empty(t, pgConstraintName(gorm.ErrRecordNotFound))
}
