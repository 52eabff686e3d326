package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/commercekit/backoffice/internal/domain"
	"github.com/commercekit/backoffice/pkg/database"
	apperrors "github.com/commercekit/backoffice/pkg/errors"
	"github.com/commercekit/backoffice/pkg/pagination"
)

var productSortColumns = map[string]string{
	"created_at": "pr.created_at",
	"updated_at": "pr.updated_at",
	"name":       "pr.name",
	"price":      "pr.price",
}

// ProductRepository implements repository.ProductRepository and the
// repository.ProductReader capability using PostgreSQL.
type ProductRepository struct {
	db database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db database.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
	INSERT INTO products (id, name, slug, description, category_id, price, currency, image_url, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Slug,
		product.Description,
		product.CategoryID,
		product.Price,
		product.Currency,
		product.ImageURL,
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "slug", product.Slug)
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

const productSelect = `
	SELECT pr.id, pr.name, pr.slug, pr.description, pr.category_id, COALESCE(c.name, '') AS category_name,
		   pr.price, pr.currency, pr.image_url, pr.is_active, pr.created_at, pr.updated_at
	FROM products pr
	LEFT JOIN categories c ON c.id = pr.category_id`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.CategoryID,
		&p.CategoryName,
		&p.Price,
		&p.Currency,
		&p.ImageURL,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID retrieves a product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, productSelect+`
	WHERE pr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// GetBySlug retrieves a product by its slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, productSelect+`
	WHERE pr.slug = $1`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", slug)
		}
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return p, nil
}

// Update persists the full product row.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
	UPDATE products
	SET name = $1, slug = $2, description = $3, category_id = $4, price = $5,
		currency = $6, image_url = $7, is_active = $8, updated_at = $9
	WHERE id = $10`

	ct, err := r.db.Exec(ctx, query,
		product.Name,
		product.Slug,
		product.Description,
		product.CategoryID,
		product.Price,
		product.Currency,
		product.ImageURL,
		product.IsActive,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "slug", product.Slug)
		}
		return fmt.Errorf("update product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", product.ID)
	}

	return nil
}

// List returns a page of active products, optionally filtered by category.
func (r *ProductRepository) List(ctx context.Context, params pagination.Params, categoryID *string) ([]domain.Product, int, error) {
	orderBy, ok := productSortColumns[params.SortBy]
	if !ok {
		orderBy = "pr.created_at"
	}
	direction := "DESC"
	if params.SortOrder == pagination.OrderAsc {
		direction = "ASC"
	}

	where := "WHERE pr.is_active = TRUE"
	args := []any{params.PerPage, params.Offset}
	if categoryID != nil {
		where += " AND pr.category_id = $3"
		args = append(args, *categoryID)
	}

	query := fmt.Sprintf(`
	SELECT pr.id, pr.name, pr.slug, pr.description, pr.category_id, COALESCE(c.name, '') AS category_name,
		   pr.price, pr.currency, pr.image_url, pr.is_active, pr.created_at, pr.updated_at,
		   count(*) OVER() AS total_count
	FROM products pr
	LEFT JOIN categories c ON c.id = pr.category_id
	%s
	ORDER BY %s %s
	LIMIT $1 OFFSET $2`, where, orderBy, direction)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var (
		products []domain.Product
		total    int
	)

	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.Description,
			&p.CategoryID,
			&p.CategoryName,
			&p.Price,
			&p.Currency,
			&p.ImageURL,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, total, nil
}

// Deactivate soft-deletes a product. Inventory rows keep referencing the id
// but the product no longer passes referential checks.
func (r *ProductRepository) Deactivate(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", id)
	}
	return nil
}

// Exists reports whether the product exists and is active.
func (r *ProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1 AND is_active = TRUE)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return exists, nil
}

// GetName returns the product's display name regardless of active flag, so
// records for soft-deleted products still render with a name.
func (r *ProductRepository) GetName(ctx context.Context, id string) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM products WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NotFound("product", id)
		}
		return "", fmt.Errorf("get product name: %w", err)
	}
	return name, nil
}
