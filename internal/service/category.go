package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/commercekit/backoffice/internal/domain"
	"github.com/commercekit/backoffice/internal/repository"
	"github.com/commercekit/backoffice/pkg/slug"
)

// CategoryService implements the business logic for categories.
type CategoryService struct {
	repo   repository.CategoryRepository
	logger *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, logger *slog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

// CreateCategory creates a category with a slug derived from its name.
func (s *CategoryService) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Slug:        slug.Generate(input.Name),
		Description: input.Description,
		SortOrder:   input.SortOrder,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.logger.InfoContext(ctx, "category created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// GetCategory retrieves a category by its identifier.
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// GetCategoryBySlug retrieves a category by its URL slug.
func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return category, nil
}

// UpdateCategory applies a partial patch to a category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, patch domain.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category for update: %w", err)
	}

	if patch.Name != nil {
		category.Name = *patch.Name
		category.Slug = slug.Generate(*patch.Name)
	}
	if patch.Description != nil {
		category.Description = patch.Description
	}
	if patch.SortOrder != nil {
		category.SortOrder = *patch.SortOrder
	}
	if patch.IsActive != nil {
		category.IsActive = *patch.IsActive
	}

	category.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	return category, nil
}

// ListCategories returns all active categories for display.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory soft-deletes a category. Products keep their category
// reference; it simply stops resolving to an active category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.logger.InfoContext(ctx, "category deactivated", slog.String("category_id", id))
	return nil
}
