package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/commercekit/backoffice/internal/domain"
	"github.com/commercekit/backoffice/internal/repository"
	apperrors "github.com/commercekit/backoffice/pkg/errors"
	"github.com/commercekit/backoffice/pkg/pagination"
	"github.com/commercekit/backoffice/pkg/slug"
)

// ProductEventPublisher publishes product lifecycle events.
type ProductEventPublisher interface {
	PublishProductCreated(ctx context.Context, product *domain.Product) error
	PublishProductUpdated(ctx context.Context, product *domain.Product) error
}

// ProductNameInvalidator drops a cached product name after the name changes.
// Nil when no cache is configured.
type ProductNameInvalidator interface {
	Invalidate(ctx context.Context, productID string) error
}

// ProductService implements the business logic for catalog products.
type ProductService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	events     ProductEventPublisher
	nameCache  ProductNameInvalidator
	logger     *slog.Logger
}

// NewProductService creates a new product service. nameCache may be nil.
func NewProductService(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	events ProductEventPublisher,
	nameCache ProductNameInvalidator,
	logger *slog.Logger,
) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		events:     events,
		nameCache:  nameCache,
		logger:     logger,
	}
}

// CreateProduct creates a product with a slug derived from its name.
func (s *ProductService) CreateProduct(ctx context.Context, input domain.CreateProductInput) (*domain.Product, error) {
	if input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("resolve category: %w", err)
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Slug:        slug.Generate(input.Name),
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Price:       input.Price,
		Currency:    currency,
		ImageURL:    input.ImageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.events.PublishProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product created event",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("slug", product.Slug),
	)

	return product, nil
}

// GetProduct retrieves a product by its identifier.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// GetProductBySlug retrieves a product by its URL slug.
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return product, nil
}

// UpdateProduct applies a partial patch to a product. A name change also
// regenerates the slug.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch domain.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}

	if patch.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *patch.CategoryID); err != nil {
			return nil, fmt.Errorf("resolve category: %w", err)
		}
		product.CategoryID = patch.CategoryID
	}
	if patch.Name != nil {
		product.Name = *patch.Name
		product.Slug = slug.Generate(*patch.Name)
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, apperrors.InvalidInput("price must be non-negative")
		}
		product.Price = *patch.Price
	}
	if patch.Currency != nil {
		product.Currency = *patch.Currency
	}
	if patch.ImageURL != nil {
		product.ImageURL = patch.ImageURL
	}
	if patch.IsActive != nil {
		product.IsActive = *patch.IsActive
	}

	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	// Stale cached names would decorate inventory reads until the TTL
	// expires, so a rename drops the entry. Best-effort like the events.
	if patch.Name != nil && s.nameCache != nil {
		if err := s.nameCache.Invalidate(ctx, product.ID); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate cached product name",
				slog.String("product_id", product.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.events.PublishProductUpdated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product updated event",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}

	return product, nil
}

// ListProducts returns a page of active products, optionally filtered by category.
func (s *ProductService) ListProducts(ctx context.Context, params pagination.Params, categoryID *string) ([]domain.Product, int, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PerPage <= 0 {
		params.PerPage = 20
	}
	if params.PerPage > 100 {
		params.PerPage = 100
	}
	params.Offset = (params.Page - 1) * params.PerPage

	products, total, err := s.repo.List(ctx, params, categoryID)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, total, nil
}

// DeleteProduct soft-deletes a product. Its inventory record, if any, is kept
// and keeps rendering with the stored product name.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.InfoContext(ctx, "product deactivated", slog.String("product_id", id))
	return nil
}
