package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// AddItem adds to an existing line for the same product or opens a new one.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddToCartInput) (*entity.CartItem, error) {
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, mapProductRepoError(err, "failed to find product for cart")
	}

	var item *entity.CartItem
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cartRepo := factory.NewCartRepository()

		existing, err := cartRepo.FindItem(ctx, input.UserID, input.ProductID)
		switch {
		case err == nil:
			existing.Quantity += quantity
			if err := cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity); err != nil {
				return errors.Wrap(err, "failed to increase cart quantity")
			}
			item = existing

			return nil
		case !errors.Is(err, repository.ErrCartItemNotFound):
			return errors.Wrap(err, "failed to find cart line")
		}

		item = &entity.CartItem{
			UserID:       input.UserID,
			ProductID:    input.ProductID,
			ProductImage: product.PrimaryImage(),
			Quantity:     quantity,
		}
		if err := cartRepo.Create(ctx, item); err != nil {
			if errors.Is(err, repository.ErrCartItemConflict) {
				return errors.Wrap(domainerrors.ErrCartItemConflict, "failed to create cart line")
			}

			return mapProductRepoError(err, "failed to create cart line")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add to cart transaction")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Cart updated",
		slog.Any("userID", input.UserID), slog.Any("productID", input.ProductID), slog.Int("quantity", item.Quantity))

	return item, nil
}

func (srv *cartService) ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	lines, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}
	if lines == nil {
		lines = []*entity.CartLine{}
	}

	return lines, nil
}

func (srv *cartService) UpdateQuantity(ctx context.Context, userID, cartID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	item, err := srv.ownedItem(ctx, userID, cartID)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return nil, mapCartRepoError(err, "failed to update cart line")
	}
	item.Quantity = quantity

	return item, nil
}

func (srv *cartService) RemoveItem(ctx context.Context, userID, cartID uuid.UUID) error {
	item, err := srv.ownedItem(ctx, userID, cartID)
	if err != nil {
		return err
	}

	if err := srv.cartRepo.Delete(ctx, item.ID); err != nil {
		return mapCartRepoError(err, "failed to delete cart line")
	}

	return nil
}

// ownedItem hides lines of other users behind the same not-found error.
func (srv *cartService) ownedItem(ctx context.Context, userID, cartID uuid.UUID) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, mapCartRepoError(err, "failed to find cart line")
	}
	if item.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart line belongs to another user")
	}

	return item, nil
}

func mapCartRepoError(err error, msg string) error {
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return errors.Wrap(domainerrors.ErrCartItemNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
