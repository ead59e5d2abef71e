package repository

import "context"

// TransactionManager lets usecases group repository calls atomically
// without importing the persistence driver.
type TransactionManager interface {
	// Execute commits when fn returns nil; any error or panic rolls back.
	Execute(ctx context.Context, fn func(RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
// Only the aggregates that take part in multi-step writes are exposed.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAddressRepository() AddressRepository
	NewCartRepository() CartRepository
}
