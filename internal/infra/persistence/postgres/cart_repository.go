package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindItem reads from the primary since it decides between insert and increment.
func (repo *cartRepository) FindItem(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cart line")
	}

	return toCartDomain(&cartM), nil
}

func (repo *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	var cartM model.CartModel
	if err := repo.db.WithContext(ctx).Where("cart_id = ?", id).First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cart line")
	}

	return toCartDomain(&cartM), nil
}

// Postgres default name for carts.user_id REFERENCES users.
const cartUserForeignKey = "carts_user_id_fkey"

// Create inserts a line. When the (user, product) line already exists, for
// instance written by a concurrent request, its quantity grows by item.Quantity
// instead, and item is refreshed with the stored row.
func (repo *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cartM := &model.CartModel{
		CartID:       item.ID,
		UserID:       item.UserID,
		ProductID:    item.ProductID,
		ProductImage: item.ProductImage,
		Quantity:     item.Quantity,
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity": gorm.Expr("carts.quantity + EXCLUDED.quantity"),
				}),
			},
			clause.Returning{},
		).
		Create(cartM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			if pgConstraintName(err) == cartUserForeignKey {
				return repository.ErrUserNotFound
			}

			return repository.ErrProductNotFound
		}
		if isUniqueConstraintViolation(err) {
			return repository.ErrCartItemConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart line")
	}
	*item = *toCartDomain(cartM)

	return nil
}

func (repo *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("cart_id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ListByUser joins every line with the product it refers to.
func (repo *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	var rows []model.CartLineRow
	err := repo.db.WithContext(ctx).
		Table("carts AS c").
		Select("c.cart_id, c.user_id, c.product_id, c.product_image, c.quantity, c.added_at, p.name, p.description, p.price").
		Joins("JOIN products AS p ON p.product_id = c.product_id").
		Where("c.user_id = ?", userID).
		Order("c.added_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list cart")
	}

	lines := make([]*entity.CartLine, 0, len(rows))
	for i := range rows {
		lines = append(lines, &entity.CartLine{
			CartItem:           *toCartDomain(&rows[i].CartModel),
			ProductName:        rows[i].Name,
			ProductDescription: rows[i].Description,
			ProductPrice:       rows[i].Price,
		})
	}

	return lines, nil
}

func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("cart_id = ?", id).Delete(&model.CartModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

func toCartDomain(data *model.CartModel) *entity.CartItem {
	return &entity.CartItem{
		ID:           data.CartID,
		UserID:       data.UserID,
		ProductID:    data.ProductID,
		ProductImage: data.ProductImage,
		Quantity:     data.Quantity,
		AddedAt:      data.AddedAt,
	}
}
