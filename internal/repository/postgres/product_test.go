package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/backoffice/internal/domain"
	"github.com/commercekit/backoffice/pkg/database"
	apperrors "github.com/commercekit/backoffice/pkg/errors"
)

func setupProductRepo(t *testing.T) (*ProductRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	repo := NewProductRepository(mock)
	return repo, mock
}

func TestProductRepository_Exists_Active(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("prod-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Exists_MissingOrInactive(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("prod-x").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.Exists(context.Background(), "prod-x")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetName_Success(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT name FROM products").
		WithArgs("prod-1").
		WillReturnRows(pgxmock.NewRows([]string{"name"}).AddRow("USB-C Cable"))

	name, err := repo.GetName(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "USB-C Cable", name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetName_NotFound(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT name FROM products").
		WithArgs("prod-x").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetName(context.Background(), "prod-x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create_DuplicateSlug(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	p := domain.Product{ID: "prod-1", Name: "Cable", Slug: "cable", Currency: "USD", IsActive: true}

	mock.ExpectExec("INSERT INTO products").
		WithArgs(p.ID, p.Name, p.Slug, p.Description, p.CategoryID, p.Price,
			p.Currency, p.ImageURL, p.IsActive, p.CreatedAt, p.UpdatedAt).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "products_slug_key" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), &p)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Deactivate_NotFound(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE products SET is_active = FALSE").
		WithArgs("prod-x").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Deactivate(context.Background(), "prod-x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
