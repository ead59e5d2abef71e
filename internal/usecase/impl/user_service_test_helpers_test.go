package impl

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
)

var pngData = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			LoginAttempts: config.LoginAttemptConfig{
				Max:    5,
				Window: 15 * time.Minute,
			},
		},
		Storage: &config.StorageConfig{
			BucketURL:    "mem://",
			MaxImageSize: 1 << 10,
		},
	}
}

// expectTx runs the transactional callback against factory and returns its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	call := txManager.EXPECT().Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error"))
	call.Run(func(args mock.Arguments) {
		fn := args.Get(1).(func(repository.RepositoryFactory) error)
		call.ReturnArguments = mock.Arguments{fn(factory)}
	})
}

func fileInput(name string, data []byte) usecase.FileInput {
	return usecase.FileInput{
		Filename: name,
		Size:     int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// txFactory bundles factory mocks handed to transactional callbacks.
type txFactory struct {
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	addressRepo *mockRepo.MockAddressRepository
	cartRepo    *mockRepo.MockCartRepository
}

func newTxFactory(t *testing.T) txFactory {
	f := txFactory{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
	}
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo).Maybe()
	f.factory.EXPECT().NewAddressRepository().Return(f.addressRepo).Maybe()
	f.factory.EXPECT().NewCartRepository().Return(f.cartRepo).Maybe()

	return f
}
