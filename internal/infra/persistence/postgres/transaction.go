package postgres

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager runs usecase callbacks inside a gorm transaction.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or a panic.
// Errors from fn come back unwrapped so callers can match repository sentinels.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if err != nil && fnErr == nil {
		return errors.Wrap(err, "transaction failed")
	}

	return err
}

// txRepositories binds every repository it hands out to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(r.tx)
}

func (r txRepositories) NewCartRepository() repository.CartRepository {
	return NewCartRepository(r.tx)
}
