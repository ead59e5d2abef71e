package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type sellerService struct {
	sellerRepo   repository.SellerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenIssuer
	uploader     *imageUploader
	guard        loginGuard
	logger       *slog.Logger
}

// SellerServiceParams holds dependencies for SellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	SellerRepo   repository.SellerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Storage      service.ObjectStorage
	LoginLimiter service.LoginLimiter `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	return &sellerService{
		sellerRepo:   params.SellerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		uploader:     newImageUploader(params.Storage, params.Config),
		guard:        newLoginGuard(params.LoginLimiter, params.Config),
		logger:       params.Logger,
	}
}

func (srv *sellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterSeller uploads the company logos, stores the seller and issues a token pair.
func (srv *sellerService) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*usecase.SellerAuthOutput, error) {
	email := normalizeEmail(input.Email)
	logger := srv.log(ctx)

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	if _, err := srv.sellerRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrSellerAlreadyExists
	} else if !errors.Is(err, repository.ErrSellerNotFound) {
		return nil, errors.Wrap(err, "failed to check existing seller")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	logos, err := srv.uploader.uploadAll(ctx, logger, input.Logos, usecase.MaxCompanyLogos)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload company logos")
	}

	seller := &entity.Seller{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		PhoneNumber:  input.PhoneNumber,
		CompanyName:  input.CompanyName,
		GSTNumber:    input.GSTNumber,
		BankDetails:  input.BankDetails,
		CompanyLogos: objectURLs(logos),
	}

	if err := srv.sellerRepo.Create(ctx, seller); err != nil {
		srv.uploader.discard(ctx, logger, logos)

		return nil, mapSellerRepoError(err, "failed to create seller")
	}

	tokens, err := srv.tokenService.IssueTokenPair(seller.Principal())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	logger.Info("Seller registered", slog.Any("sellerID", seller.ID), slog.Int("logos", len(logos)))

	return &usecase.SellerAuthOutput{Seller: seller, Tokens: tokens}, nil
}

func (srv *sellerService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SellerAuthOutput, error) {
	email := normalizeEmail(input.Email)
	key := "seller:" + email
	logger := srv.log(ctx)

	if err := srv.guard.check(ctx, logger, key); err != nil {
		return nil, err
	}

	seller, err := srv.sellerRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrSellerNotFound) {
		srv.guard.fail(ctx, logger, key)

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find seller")
	}

	if !srv.hasher.Check(input.Password, seller.PasswordHash) {
		srv.guard.fail(ctx, logger, key)

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.guard.reset(ctx, logger, key)

	tokens, err := srv.tokenService.IssueTokenPair(seller.Principal())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	return &usecase.SellerAuthOutput{Seller: seller, Tokens: tokens}, nil
}

func (srv *sellerService) GetSeller(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapSellerRepoError(err, "failed to find seller")
	}

	return seller, nil
}

// UpdateSeller applies a partial update. Uploaded logos replace the stored list.
func (srv *sellerService) UpdateSeller(ctx context.Context, id uuid.UUID, input *usecase.UpdateSellerInput) (*entity.Seller, error) {
	logger := srv.log(ctx)

	seller, err := srv.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapSellerRepoError(err, "failed to find seller")
	}

	if input.Password != nil {
		if err := srv.hasher.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, errors.Wrap(err, "password does not meet security requirements")
		}
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		seller.PasswordHash = hashed
	}

	applySellerUpdate(seller, input)

	var logos []storedObject
	if len(input.Logos) > 0 {
		logos, err = srv.uploader.uploadAll(ctx, logger, input.Logos, usecase.MaxCompanyLogos)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload company logos")
		}
		seller.CompanyLogos = objectURLs(logos)
	}

	if err := srv.sellerRepo.Update(ctx, seller); err != nil {
		srv.uploader.discard(ctx, logger, logos)

		return nil, mapSellerRepoError(err, "failed to update seller")
	}

	return seller, nil
}

func (srv *sellerService) DeleteSeller(ctx context.Context, id uuid.UUID) error {
	if err := srv.sellerRepo.Delete(ctx, id); err != nil {
		return mapSellerRepoError(err, "failed to delete seller")
	}

	srv.log(ctx).Info("Seller deleted", slog.Any("sellerID", id))

	return nil
}

func applySellerUpdate(seller *entity.Seller, input *usecase.UpdateSellerInput) {
	if input.Name != nil {
		seller.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		seller.Email = normalizeEmail(*input.Email)
	}
	if input.PhoneNumber != nil {
		seller.PhoneNumber = *input.PhoneNumber
	}
	if input.CompanyName != nil {
		seller.CompanyName = *input.CompanyName
	}
	if input.GSTNumber != nil {
		seller.GSTNumber = *input.GSTNumber
	}
	if input.BankDetails != nil {
		seller.BankDetails = *input.BankDetails
	}
}

func mapSellerRepoError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrSellerNotFound):
		return errors.Wrap(domainerrors.ErrSellerNotFound, msg)
	case errors.Is(err, repository.ErrSellerEmailTaken):
		return errors.Wrap(domainerrors.ErrSellerAlreadyExists, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
