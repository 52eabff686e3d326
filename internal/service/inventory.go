package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/commercekit/backoffice/internal/domain"
	"github.com/commercekit/backoffice/internal/repository"
	"github.com/commercekit/backoffice/pkg/database"
	apperrors "github.com/commercekit/backoffice/pkg/errors"
	"github.com/commercekit/backoffice/pkg/pagination"
)

// InventoryEventPublisher publishes inventory lifecycle events. Publishing is
// best-effort: failures are logged, never surfaced to API callers.
type InventoryEventPublisher interface {
	PublishInventoryCreated(ctx context.Context, rec *domain.InventoryRecord) error
	PublishInventoryUpdated(ctx context.Context, rec *domain.InventoryRecord) error
	PublishInventoryDeleted(ctx context.Context, recordID string) error
	PublishInventoryLowStock(ctx context.Context, rec *domain.InventoryRecord) error
}

// InventoryService implements the business logic for inventory records. It is
// the sole writer of inventory state; all writes run inside transactions on db
// so the check-then-act sequences stay atomic under concurrency.
type InventoryService struct {
	db       database.DBTX
	repo     repository.InventoryRepository
	products repository.ProductReader
	events   InventoryEventPublisher
	logger   *slog.Logger
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(
	db database.DBTX,
	repo repository.InventoryRepository,
	products repository.ProductReader,
	events InventoryEventPublisher,
	logger *slog.Logger,
) *InventoryService {
	return &InventoryService{
		db:       db,
		repo:     repo,
		products: products,
		events:   events,
		logger:   logger,
	}
}

// CreateInventory creates the single inventory record for a product. The
// product must exist and be active, and no record may already exist for it.
// The referential check, duplicate check, and insert run in one transaction
// so concurrent creates for the same product cannot both succeed.
func (s *InventoryService) CreateInventory(ctx context.Context, input domain.CreateInventoryInput) (*domain.InventoryRecord, error) {
	quantity := 0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	usedQuantity := 0
	if input.UsedQuantity != nil {
		usedQuantity = *input.UsedQuantity
	}
	threshold := domain.DefaultLowStockThreshold
	if input.LowStockThreshold != nil {
		threshold = *input.LowStockThreshold
	}

	if quantity < 0 || usedQuantity < 0 {
		return nil, apperrors.InvalidInput("quantity and used_quantity must be non-negative")
	}
	if threshold <= 0 {
		return nil, apperrors.InvalidInput("low_stock_threshold must be positive")
	}
	if usedQuantity > quantity {
		return nil, apperrors.InvalidInput("used_quantity cannot exceed quantity")
	}

	// Cheap pre-check outside the transaction; re-checked under the
	// transaction below so a concurrent deactivation cannot slip through.
	exists, err := s.products.Exists(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("check product exists: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound("product", input.ProductID)
	}

	now := time.Now().UTC()
	rec := &domain.InventoryRecord{
		ID:                uuid.New().String(),
		ProductID:         input.ProductID,
		Quantity:          quantity,
		UsedQuantity:      usedQuantity,
		LowStockThreshold: threshold,
		LastRestocked:     now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	rec.Recompute()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var productExists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1 AND is_active = TRUE)`,
		rec.ProductID,
	).Scan(&productExists)
	if err != nil {
		return nil, fmt.Errorf("check product in transaction: %w", err)
	}
	if !productExists {
		return nil, apperrors.NotFound("product", rec.ProductID)
	}

	var duplicate bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM inventory_records WHERE product_id = $1)`,
		rec.ProductID,
	).Scan(&duplicate)
	if err != nil {
		return nil, fmt.Errorf("check duplicate inventory: %w", err)
	}
	if duplicate {
		return nil, apperrors.Conflict("inventory already exists for this product")
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO inventory_records (id, product_id, quantity, used_quantity, available_quantity, status, low_stock_threshold, last_restocked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID,
		rec.ProductID,
		rec.Quantity,
		rec.UsedQuantity,
		rec.AvailableQuantity,
		rec.Status,
		rec.LowStockThreshold,
		rec.LastRestocked,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		// A concurrent create that committed first trips the unique
		// constraint on product_id.
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("inventory already exists for this product")
		}
		return nil, fmt.Errorf("insert inventory record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create transaction: %w", err)
	}

	s.decorate(ctx, rec)
	s.publishCreated(ctx, rec)

	s.logger.InfoContext(ctx, "inventory record created",
		slog.String("record_id", rec.ID),
		slog.String("product_id", rec.ProductID),
		slog.Int("quantity", rec.Quantity),
		slog.String("status", rec.Status),
	)

	return rec, nil
}

// UpdateInventory applies a partial patch to a record. Derived fields are
// recomputed from the resulting base values whenever any base field is
// patched; a status-only patch is applied as an explicit override. Quantity
// increases refresh the restock timestamp. The read-modify-write runs under a
// row lock so concurrent updates never interleave field-by-field.
func (s *InventoryService) UpdateInventory(ctx context.Context, id string, patch domain.UpdateInventoryInput) (*domain.InventoryRecord, error) {
	if patch.Status != nil && !domain.IsValidStockStatus(*patch.Status) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid status %q", *patch.Status))
	}
	if (patch.Quantity != nil && *patch.Quantity < 0) || (patch.UsedQuantity != nil && *patch.UsedQuantity < 0) {
		return nil, apperrors.InvalidInput("quantity and used_quantity must be non-negative")
	}
	if patch.LowStockThreshold != nil && *patch.LowStockThreshold <= 0 {
		return nil, apperrors.InvalidInput("low_stock_threshold must be positive")
	}

	// An empty patch changes nothing, including last_restocked.
	if patch.Empty() {
		return s.GetInventory(ctx, id)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var rec domain.InventoryRecord
	err = tx.QueryRow(ctx, `
		SELECT id, product_id, quantity, used_quantity, available_quantity, status, low_stock_threshold, last_restocked, created_at, updated_at
		FROM inventory_records
		WHERE id = $1
		FOR UPDATE`,
		id,
	).Scan(
		&rec.ID,
		&rec.ProductID,
		&rec.Quantity,
		&rec.UsedQuantity,
		&rec.AvailableQuantity,
		&rec.Status,
		&rec.LowStockThreshold,
		&rec.LastRestocked,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("inventory record", id)
		}
		return nil, fmt.Errorf("lock inventory record for update: %w", err)
	}

	oldQuantity := rec.Quantity

	if patch.Quantity != nil {
		rec.Quantity = *patch.Quantity
	}
	if patch.UsedQuantity != nil {
		rec.UsedQuantity = *patch.UsedQuantity
	}
	if patch.LowStockThreshold != nil {
		rec.LowStockThreshold = *patch.LowStockThreshold
	}

	if rec.UsedQuantity > rec.Quantity {
		return nil, apperrors.InvalidInput("used_quantity cannot exceed quantity")
	}

	if patch.Quantity != nil || patch.UsedQuantity != nil || patch.LowStockThreshold != nil {
		rec.Recompute()
	} else if patch.Status != nil {
		rec.Status = *patch.Status
	}

	now := time.Now().UTC()
	if patch.Quantity != nil && *patch.Quantity > oldQuantity {
		rec.LastRestocked = now
	}
	rec.UpdatedAt = now

	_, err = tx.Exec(ctx, `
		UPDATE inventory_records
		SET quantity = $1, used_quantity = $2, available_quantity = $3, status = $4,
			low_stock_threshold = $5, last_restocked = $6, updated_at = $7
		WHERE id = $8`,
		rec.Quantity,
		rec.UsedQuantity,
		rec.AvailableQuantity,
		rec.Status,
		rec.LowStockThreshold,
		rec.LastRestocked,
		rec.UpdatedAt,
		rec.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update inventory record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update transaction: %w", err)
	}

	s.decorate(ctx, &rec)
	s.publishUpdated(ctx, &rec)

	s.logger.InfoContext(ctx, "inventory record updated",
		slog.String("record_id", rec.ID),
		slog.String("product_id", rec.ProductID),
		slog.Int("quantity", rec.Quantity),
		slog.Int("available", rec.AvailableQuantity),
		slog.String("status", rec.Status),
	)

	return &rec, nil
}

// GetInventory retrieves a single record with the product name joined in.
func (s *InventoryService) GetInventory(ctx context.Context, id string) (*domain.InventoryRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	return rec, nil
}

// ListInventory returns a page of records plus the total count.
func (s *InventoryService) ListInventory(ctx context.Context, params pagination.Params) ([]domain.InventoryRecord, int, error) {
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

	records, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory records: %w", err)
	}

	return records, total, nil
}

// DeleteInventory removes a record permanently and reports whether a row was
// actually removed. The referenced product is untouched.
func (s *InventoryService) DeleteInventory(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory record: %w", err)
	}

	if removed {
		if err := s.events.PublishInventoryDeleted(ctx, id); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish inventory deleted event",
				slog.String("record_id", id),
				slog.String("error", err.Error()),
			)
		}

		s.logger.InfoContext(ctx, "inventory record deleted", slog.String("record_id", id))
	}

	return removed, nil
}

// GetProductStock aggregates stock across all inventory records for a
// product. The uniqueness constraint means at most one record exists today,
// but the aggregate stays defensive: zero or many records both work, and zero
// records yield all-zero totals rather than an error.
func (s *InventoryService) GetProductStock(ctx context.Context, productID string) (*domain.ProductStockSummary, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product_id is required")
	}

	summary, err := s.repo.SumByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product stock: %w", err)
	}

	return summary, nil
}

// decorate attaches the product display name. Resolution failures are
// tolerated; the record is returned without a name.
func (s *InventoryService) decorate(ctx context.Context, rec *domain.InventoryRecord) {
	name, err := s.products.GetName(ctx, rec.ProductID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to resolve product name",
			slog.String("product_id", rec.ProductID),
			slog.String("error", err.Error()),
		)
		return
	}
	rec.ProductName = name
}

func (s *InventoryService) publishCreated(ctx context.Context, rec *domain.InventoryRecord) {
	if err := s.events.PublishInventoryCreated(ctx, rec); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish inventory created event",
			slog.String("record_id", rec.ID),
			slog.String("error", err.Error()),
		)
	}
	s.publishLowStockIfNeeded(ctx, rec)
}

func (s *InventoryService) publishUpdated(ctx context.Context, rec *domain.InventoryRecord) {
	if err := s.events.PublishInventoryUpdated(ctx, rec); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish inventory updated event",
			slog.String("record_id", rec.ID),
			slog.String("error", err.Error()),
		)
	}
	s.publishLowStockIfNeeded(ctx, rec)
}

func (s *InventoryService) publishLowStockIfNeeded(ctx context.Context, rec *domain.InventoryRecord) {
	if rec.Status == domain.StatusInStock {
		return
	}
	if err := s.events.PublishInventoryLowStock(ctx, rec); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish low stock event",
			slog.String("record_id", rec.ID),
			slog.String("error", err.Error()),
		)
	}
}

// isUniqueViolation reports whether the error is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
