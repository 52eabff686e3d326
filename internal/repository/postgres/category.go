package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/commercekit/backoffice/internal/domain"
	"github.com/commercekit/backoffice/pkg/database"
	apperrors "github.com/commercekit/backoffice/pkg/errors"
)

// CategoryRepository implements repository.CategoryRepository using PostgreSQL.
type CategoryRepository struct {
	db database.DBTX
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(db database.DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
	INSERT INTO categories (id, name, slug, description, sort_order, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		category.Description,
		category.SortOrder,
		category.IsActive,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "slug", category.Slug)
		}
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

const categorySelect = `
	SELECT c.id, c.name, c.slug, c.description, c.sort_order, c.is_active,
		   (SELECT COUNT(*) FROM products pr WHERE pr.category_id = c.id AND pr.is_active = TRUE) AS product_count,
		   c.created_at, c.updated_at
	FROM categories c`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.SortOrder,
		&c.IsActive,
		&c.ProductCount,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a category by its identifier.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, categorySelect+`
	WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("category", id)
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return c, nil
}

// GetBySlug retrieves a category by its slug.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, categorySelect+`
	WHERE c.slug = $1`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("category", slug)
		}
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return c, nil
}

// Update persists the full category row.
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
	UPDATE categories
	SET name = $1, slug = $2, description = $3, sort_order = $4, is_active = $5, updated_at = $6
	WHERE id = $7`

	ct, err := r.db.Exec(ctx, query,
		category.Name,
		category.Slug,
		category.Description,
		category.SortOrder,
		category.IsActive,
		category.UpdatedAt,
		category.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "slug", category.Slug)
		}
		return fmt.Errorf("update category: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("category", category.ID)
	}

	return nil
}

// ListAll returns all active categories ordered for display.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, categorySelect+`
	WHERE c.is_active = TRUE
	ORDER BY c.sort_order ASC, c.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Slug,
			&c.Description,
			&c.SortOrder,
			&c.IsActive,
			&c.ProductCount,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	if categories == nil {
		categories = []domain.Category{}
	}

	return categories, nil
}

// Deactivate soft-deletes a category. Products keep their category_id.
func (r *CategoryRepository) Deactivate(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `UPDATE categories SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate category: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("category", id)
	}
	return nil
}
