package repository

import (
	"context"

	"github.com/commercekit/backoffice/internal/domain"
	"github.com/commercekit/backoffice/pkg/pagination"
)

// InventoryRepository defines read and delete operations over inventory
// records. Creation and mutation run inside service-owned transactions so the
// check-then-act sequences stay atomic.
type InventoryRepository interface {
	// GetByID retrieves a record by its identifier, with the product name
	// joined in when the product still exists.
	GetByID(ctx context.Context, id string) (*domain.InventoryRecord, error)

	// List returns a page of records plus the total count.
	List(ctx context.Context, params pagination.Params) ([]domain.InventoryRecord, int, error)

	// Delete removes a record permanently. It reports whether a row was
	// actually removed.
	Delete(ctx context.Context, id string) (bool, error)

	// SumByProduct aggregates quantities across all records for a product.
	// Zero records yield an all-zero summary, not an error.
	SumByProduct(ctx context.Context, productID string) (*domain.ProductStockSummary, error)
}

// ProductReader is the narrow read capability the inventory service needs
// from the catalog: referential checks and display-name decoration.
type ProductReader interface {
	// Exists reports whether the product exists and is active.
	Exists(ctx context.Context, id string) (bool, error)

	// GetName returns the product's display name.
	GetName(ctx context.Context, id string) (string, error)
}

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	List(ctx context.Context, params pagination.Params, categoryID *string) ([]domain.Product, int, error)

	// Deactivate soft-deletes a product by clearing its active flag.
	Deactivate(ctx context.Context, id string) error
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	ListAll(ctx context.Context) ([]domain.Category, error)

	// Deactivate soft-deletes a category by clearing its active flag.
	Deactivate(ctx context.Context, id string) error
}

// UserRepository defines persistence operations for operator accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, params pagination.Params) ([]domain.User, int, error)
	Deactivate(ctx context.Context, id string) error
}
