// Package impl contains the implementation of the application's business logic.
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	addressRepo  repository.AddressRepository
	hasher       service.PasswordHasher
	tokenService service.TokenIssuer
	guard        loginGuard
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AddressRepo  repository.AddressRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	LoginLimiter service.LoginLimiter `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		addressRepo:  params.AddressRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		guard:        newLoginGuard(params.LoginLimiter, params.Config),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates the account and its addresses in one transaction and issues a token pair.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.UserAuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting user registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Gender:       input.Gender,
		DateOfBirth:  input.DateOfBirth,
		PhoneNumber:  input.PhoneNumber,
		RoleID:       input.RoleID,
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return mapUserRepoError(err, "failed to create user")
		}

		if len(input.Addresses) == 0 {
			return nil
		}

		addresses := buildAddresses(user.ID, input.Addresses)
		if err := factory.NewAddressRepository().ReplaceForUser(ctx, user.ID, addresses); err != nil {
			return errors.Wrap(err, "failed to store addresses")
		}
		user.Addresses = addresses

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	tokens, err := srv.tokenService.IssueTokenPair(user.Principal())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	srv.log(ctx).Debug("User registered", slog.Any("userID", user.ID))

	return &usecase.UserAuthOutput{User: user, Tokens: tokens}, nil
}

// Login checks the credentials and issues a token pair. Failed attempts count against the email.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.UserAuthOutput, error) {
	email := normalizeEmail(input.Email)
	key := "user:" + email
	logger := srv.log(ctx)

	if err := srv.guard.check(ctx, logger, key); err != nil {
		logger.Warn("Login throttled", slog.String("email", email))

		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.guard.fail(ctx, logger, key)

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.guard.fail(ctx, logger, key)
		logger.Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.guard.reset(ctx, logger, key)

	tokens, err := srv.tokenService.IssueTokenPair(user.Principal())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	return &usecase.UserAuthOutput{User: user, Tokens: tokens}, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns the user with its addresses.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserRepoError(err, "failed to find user")
	}

	addresses, err := srv.addressRepo.FindByUser(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load addresses")
	}
	user.Addresses = addresses

	return user, nil
}

// UpdateUser applies a partial update. A new password is re-hashed; addresses are replaced.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	var hashedPassword string
	if input.Password != nil {
		if err := srv.hasher.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, errors.Wrap(err, "password does not meet security requirements")
		}

		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		hashedPassword = hashed
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return mapUserRepoError(err, "failed to find user")
		}

		applyUserUpdate(user, input)
		if hashedPassword != "" {
			user.PasswordHash = hashedPassword
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return mapUserRepoError(err, "failed to update user")
		}

		addressRepo := factory.NewAddressRepository()
		if input.Addresses != nil {
			addresses := buildAddresses(user.ID, *input.Addresses)
			if err := addressRepo.ReplaceForUser(ctx, user.ID, addresses); err != nil {
				return errors.Wrap(err, "failed to replace addresses")
			}
			user.Addresses = addresses
		} else {
			addresses, err := addressRepo.FindByUser(ctx, user.ID)
			if err != nil {
				return errors.Wrap(err, "failed to load addresses")
			}
			user.Addresses = addresses
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", id))

	return updated, nil
}

// DeleteUser removes the user together with its addresses and cart lines.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCartRepository().DeleteByUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete cart lines")
		}
		if err := factory.NewAddressRepository().DeleteByUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete addresses")
		}
		if err := factory.NewUserRepository().Delete(ctx, id); err != nil {
			return mapUserRepoError(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

func applyUserUpdate(user *entity.User, input *usecase.UpdateUserInput) {
	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.RoleID != nil {
		user.RoleID = input.RoleID
	}
}

func buildAddresses(userID uuid.UUID, inputs []usecase.AddressInput) []*entity.Address {
	addresses := make([]*entity.Address, 0, len(inputs))
	for _, in := range inputs {
		addresses = append(addresses, &entity.Address{
			UserID:     userID,
			Label:      in.Label,
			Street:     in.Street,
			City:       in.City,
			State:      in.State,
			PostalCode: in.PostalCode,
			Country:    in.Country,
		})
	}

	return addresses
}

func mapUserRepoError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, msg)
	case errors.Is(err, repository.ErrUserEmailTaken):
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, msg)
	default:
		return errors.Wrap(err, msg)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newLoginGuard(limiter service.LoginLimiter, cfg *config.Config) loginGuard {
	guard := loginGuard{limiter: limiter}
	if cfg != nil && cfg.Auth != nil {
		guard.window = cfg.Auth.LoginAttempts.Window
	}

	return guard
}
