package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type tokenRotationService struct {
	tokens service.TokenService
	logger *slog.Logger
}

// NewTokenService returns the refresh token rotation usecase. It never touches storage.
func NewTokenService(tokens service.TokenService, logger *slog.Logger) usecase.TokenUsecase {
	return &tokenRotationService{tokens: tokens, logger: logger}
}

func (srv *tokenRotationService) RotateTokens(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, err
	}

	pair, err := srv.tokens.IssueTokenPair(claims.Principal())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue rotated tokens")
	}

	return pair, nil
}
