package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sellerServiceFixtures struct {
	service      usecase.SellerUsecase
	sellerRepo   *mockRepo.MockSellerRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	storage      *mockSvc.MockObjectStorage
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	f := sellerServiceFixtures{
		sellerRepo:   mockRepo.NewMockSellerRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		storage:      mockSvc.NewMockObjectStorage(t),
	}

	f.service = NewSellerService(SellerServiceParams{
		SellerRepo:   f.sellerRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Storage:      f.storage,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return f
}

func sellerInput(logos ...usecase.FileInput) *usecase.RegisterSellerInput {
	return &usecase.RegisterSellerInput{
		Name:        "Acme",
		Email:       "shop@acme.io",
		Password:    "pw",
		CompanyName: "Acme Ltd",
		GSTNumber:   "22AAAAA0000A1Z5",
		Logos:       logos,
	}
}

func TestSellerService_RegisterSeller_UploadsLogos(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength("pw").Return(nil)
	fx.sellerRepo.EXPECT().FindByEmail(ctx, "shop@acme.io").Return(nil, repository.ErrSellerNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hash", nil)
	fx.storage.EXPECT().Put(ctx, mock.MatchedBy(func(key string) bool {
		return len(key) > len("uploads/") && key[:8] == "uploads/"
	}), "image/png", mock.Anything).Return("https://cdn.example/logo.png", nil).Twice()
	fx.sellerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Seller")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Seller).ID = id }).
		Return(nil)
	fx.tokenService.EXPECT().IssueTokenPair(entity.Principal{ID: id, Email: "shop@acme.io"}).Return(testPair(), nil)

	out, err := fx.service.RegisterSeller(ctx, sellerInput(fileInput("a.png", pngData), fileInput("b.png", pngData)))

	require.NoError(t, err)
	assert.Len(t, out.Seller.CompanyLogos, 2)
	assert.Equal(t, "hash", out.Seller.PasswordHash)
	assert.Equal(t, testPair(), out.Tokens)
}

func TestSellerService_RegisterSeller_TooManyLogos(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("pw").Return(nil)
	fx.sellerRepo.EXPECT().FindByEmail(ctx, "shop@acme.io").Return(nil, repository.ErrSellerNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hash", nil)

	logo := fileInput("a.png", pngData)
	_, err := fx.service.RegisterSeller(ctx, sellerInput(logo, logo, logo, logo))

	assert.ErrorIs(t, err, domainerrors.ErrTooManyFiles)
}

func TestSellerService_RegisterSeller_RejectsNonImage(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("pw").Return(nil)
	fx.sellerRepo.EXPECT().FindByEmail(ctx, "shop@acme.io").Return(nil, repository.ErrSellerNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hash", nil)

	_, err := fx.service.RegisterSeller(ctx, sellerInput(fileInput("logo.png", []byte("#!/bin/sh\necho hi\n"))))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestSellerService_RegisterSeller_Duplicate(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("pw").Return(nil)
	fx.sellerRepo.EXPECT().FindByEmail(ctx, "shop@acme.io").Return(&entity.Seller{ID: uuid.New()}, nil)

	_, err := fx.service.RegisterSeller(ctx, sellerInput())

	assert.ErrorIs(t, err, domainerrors.ErrSellerAlreadyExists)
}

func TestSellerService_RegisterSeller_DiscardsLogosWhenInsertFails(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("pw").Return(nil)
	fx.sellerRepo.EXPECT().FindByEmail(ctx, "shop@acme.io").Return(nil, repository.ErrSellerNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hash", nil)
	fx.storage.EXPECT().Put(ctx, mock.Anything, "image/png", mock.Anything).Return("https://cdn.example/x.png", nil)
	fx.sellerRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrSellerEmailTaken)
	fx.storage.EXPECT().Delete(ctx, mock.Anything).Return(nil)

	_, err := fx.service.RegisterSeller(ctx, sellerInput(fileInput("a.png", pngData)))

	assert.ErrorIs(t, err, domainerrors.ErrSellerAlreadyExists)
}

func TestSellerService_Login_WithoutLimiter(t *testing.T) {
	fx := createTestSellerService(t)
	seller := &entity.Seller{ID: uuid.New(), Email: "shop@acme.io", PasswordHash: "hash"}

	fx.sellerRepo.EXPECT().FindByEmail(mock.Anything, "shop@acme.io").Return(seller, nil)
	fx.hasher.EXPECT().Check("bad", "hash").Return(false)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "shop@acme.io", Password: "bad"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSellerService_UpdateSeller_ReplacesLogos(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()
	id := uuid.New()
	company := "Acme Global"

	fx.sellerRepo.EXPECT().FindByID(ctx, id).Return(&entity.Seller{ID: id, CompanyLogos: []string{"old.png"}}, nil)
	fx.storage.EXPECT().Put(ctx, mock.Anything, "image/png", mock.Anything).Return("new.png", nil)
	fx.sellerRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	seller, err := fx.service.UpdateSeller(ctx, id, &usecase.UpdateSellerInput{
		CompanyName: &company,
		Logos:       []usecase.FileInput{fileInput("n.png", pngData)},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"new.png"}, seller.CompanyLogos)
	assert.Equal(t, company, seller.CompanyName)
}
