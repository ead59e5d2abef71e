package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	return db, mock
}

var userColumns = []string{"id", "name", "email", "password_hash", "gender", "dob", "phone_number", "role_id", "created_at", "updated_at"}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "A", "a@x.com", "hash", "", nil, "", nil, now, now))

	user, err := repo.FindByEmail(context.Background(), "a@x.com")

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Nil(t, user.RoleID)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("assigns id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))

		user := &entity.User{Email: "a@x.com", PasswordHash: "hash"}
		require.NoError(t, repo.Create(context.Background(), user))
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})

		err := repo.Create(context.Background(), &entity.User{Email: "a@x.com"})

		assert.ErrorIs(t, err, repository.ErrUserEmailTaken)
	})
}

func TestUserRepository_UpdateAndDelete_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(context.Background(), &entity.User{ID: uuid.New()}), repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), repository.ErrUserNotFound)
}

func TestAddressRepository_ReplaceForUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepository(db)
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM "addresses" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO "addresses"`).WillReturnResult(sqlmock.NewResult(0, 2))

	addresses := []*entity.Address{{City: "Paris"}, {City: "Lyon"}}
	require.NoError(t, repo.ReplaceForUser(context.Background(), userID, addresses))

	for _, addr := range addresses {
		assert.Equal(t, userID, addr.UserID)
		assert.NotEqual(t, uuid.Nil, addr.ID)
	}
}

func TestSellerRepository_FindByEmail_DecodesLogos(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSellerRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "sellers" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "company_name", "gst_number", "company_logos", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), "Acme", "shop@acme.io", "hash", "Acme Ltd", "GST", []byte(`["https://cdn/a.png","https://cdn/b.png"]`), now, now))

	seller, err := repo.FindByEmail(context.Background(), "shop@acme.io")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn/a.png", "https://cdn/b.png"}, seller.CompanyLogos)
}

func TestCategoryRepository_CreateSubcategory_UnknownCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectExec(`INSERT INTO "subcategories"`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := repo.CreateSubcategory(context.Background(), &entity.Subcategory{Name: "Mugs", CategoryID: uuid.New()})

	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestProductRepository_Search(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE .*name ILIKE \$1 OR description ILIKE \$2`).
		WithArgs(`%50\%%`, `%50\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE .*ILIKE.* ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "price", "sku", "stock_level", "created_by", "image_url", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), "50% off mug", 4.5, "SKU-1", 3, uuid.NewString(), []byte(`["https://cdn/1.png"]`), now, now))

	products, total, err := repo.Search(context.Background(), entity.ProductQuery{Term: "50%", Offset: 8, Limit: 8})

	require.NoError(t, err)
	assert.EqualValues(t, 11, total)
	require.Len(t, products, 1)
	assert.Equal(t, "https://cdn/1.png", products[0].PrimaryImage())
}

func TestProductRepository_Search_NoMatches(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	products, total, err := repo.Search(context.Background(), entity.ProductQuery{Limit: 8})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, products)
}

func TestProductRepository_Create_DuplicateSKU(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`INSERT INTO "products"`).WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &entity.Product{Name: "Mug", SKU: "S"})

	assert.ErrorIs(t, err, repository.ErrProductSKUTaken)
}

func TestProductRepository_Create_CheckViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`INSERT INTO "products"`).
		WillReturnError(&pgconn.PgError{Code: pgCheckViolation, ConstraintName: "products_price_check"})

	err := repo.Create(context.Background(), &entity.Product{Name: "Mug", SKU: "S", Price: -1})

	assert.ErrorIs(t, err, repository.ErrProductInvalid)
	assert.Contains(t, err.Error(), "products_price_check")
}

func TestCartRepository_Create_MissingReference(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{constraint: cartUserForeignKey, want: repository.ErrUserNotFound},
		{constraint: "carts_product_id_fkey", want: repository.ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewCartRepository(db)

			mock.ExpectQuery(`INSERT INTO "carts"`).
				WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: tt.constraint})

			err := repo.Create(context.Background(), &entity.CartItem{UserID: uuid.New(), ProductID: uuid.New(), Quantity: 1})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCartRepository_Create_ExistingLineIsIncremented(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)
	userID, productID, storedID := uuid.New(), uuid.New(), uuid.New()
	addedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "carts" .* ON CONFLICT \("user_id","product_id"\) DO UPDATE SET "quantity"=carts.quantity \+ EXCLUDED.quantity RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id", "product_id", "product_image", "quantity", "added_at"}).
			AddRow(storedID.String(), userID.String(), productID.String(), "img.png", 5, addedAt))

	item := &entity.CartItem{UserID: userID, ProductID: productID, ProductImage: "img.png", Quantity: 3}
	err := repo.Create(context.Background(), item)

	require.NoError(t, err)
	assert.Equal(t, storedID, item.ID)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, addedAt, item.AddedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_Create_UniqueViolationIsNotInternal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`INSERT INTO "carts"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "carts_pkey"})

	err := repo.Create(context.Background(), &entity.CartItem{UserID: uuid.New(), ProductID: uuid.New(), Quantity: 1})

	assert.ErrorIs(t, err, repository.ErrCartItemConflict)
}

func TestCartRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)
	userID, productID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT c.cart_id, .* FROM carts AS c JOIN products AS p ON p.product_id = c.product_id WHERE c.user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id", "product_id", "product_image", "quantity", "added_at", "name", "description", "price"}).
			AddRow(uuid.NewString(), userID.String(), productID.String(), "img.png", 2, time.Now(), "Mug", "Blue mug", 9.5))

	lines, err := repo.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, productID, lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Mug", lines[0].ProductName)
	assert.InDelta(t, 9.5, lines[0].ProductPrice, 0.001)
}

func TestCartRepository_FindItem_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1 AND product_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id"}))

	_, err := repo.FindItem(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)
}

func TestTransactionManager_Execute(t *testing.T) {
	t.Run("commits", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "carts" WHERE user_id = \$1`).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
			return f.NewCartRepository().DeleteByUser(context.Background(), uuid.New())
		})

		require.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
			return f.NewUserRepository().Delete(context.Background(), uuid.New())
		})

		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
	t.Run("rolls back on panic", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure is wrapped", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

		err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error { return nil })

		require.Error(t, err)
		assert.Contains(t, err.Error(), "transaction failed")
	})
}
