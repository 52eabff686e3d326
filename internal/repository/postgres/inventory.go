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

// inventorySortColumns whitelists the sortable fields for list queries. Keys
// are the API-facing names, values the actual columns.
var inventorySortColumns = map[string]string{
	"created_at":         "i.created_at",
	"updated_at":         "i.updated_at",
	"quantity":           "i.quantity",
	"used_quantity":      "i.used_quantity",
	"available_quantity": "i.available_quantity",
	"status":             "i.status",
	"last_restocked":     "i.last_restocked",
}

// InventoryRepository implements repository.InventoryRepository using PostgreSQL.
type InventoryRepository struct {
	db database.DBTX
}

// NewInventoryRepository creates a new PostgreSQL-backed inventory repository.
func NewInventoryRepository(db database.DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventorySelect = `
	SELECT i.id, i.product_id, COALESCE(p.name, '') AS product_name,
		   i.quantity, i.used_quantity, i.available_quantity, i.status,
		   i.low_stock_threshold, i.last_restocked, i.created_at, i.updated_at
	FROM inventory_records i
	LEFT JOIN products p ON p.id = i.product_id`

// GetByID retrieves a record by its identifier with the product name joined in.
func (r *InventoryRepository) GetByID(ctx context.Context, id string) (*domain.InventoryRecord, error) {
	query := inventorySelect + `
	WHERE i.id = $1`

	var rec domain.InventoryRecord
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.ProductID,
		&rec.ProductName,
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
		return nil, fmt.Errorf("get inventory record by id: %w", err)
	}

	return &rec, nil
}

// List returns a page of records plus the total count in a single query.
func (r *InventoryRepository) List(ctx context.Context, params pagination.Params) ([]domain.InventoryRecord, int, error) {
	orderBy, ok := inventorySortColumns[params.SortBy]
	if !ok {
		orderBy = "i.created_at"
	}
	direction := "DESC"
	if params.SortOrder == pagination.OrderAsc {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
	SELECT i.id, i.product_id, COALESCE(p.name, '') AS product_name,
		   i.quantity, i.used_quantity, i.available_quantity, i.status,
		   i.low_stock_threshold, i.last_restocked, i.created_at, i.updated_at,
		   count(*) OVER() AS total_count
	FROM inventory_records i
	LEFT JOIN products p ON p.id = i.product_id
	ORDER BY %s %s
	LIMIT $1 OFFSET $2`, orderBy, direction)

	rows, err := r.db.Query(ctx, query, params.PerPage, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory records: %w", err)
	}
	defer rows.Close()

	var (
		records []domain.InventoryRecord
		total   int
	)

	for rows.Next() {
		var rec domain.InventoryRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.ProductID,
			&rec.ProductName,
			&rec.Quantity,
			&rec.UsedQuantity,
			&rec.AvailableQuantity,
			&rec.Status,
			&rec.LowStockThreshold,
			&rec.LastRestocked,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan inventory record row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate inventory record rows: %w", err)
	}

	if records == nil {
		records = []domain.InventoryRecord{}
	}

	return records, total, nil
}

// Delete removes a record permanently and reports whether a row was removed.
func (r *InventoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM inventory_records WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory record: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// SumByProduct aggregates quantities across all records for a product. The
// unique constraint means at most one row matches today, but the aggregate
// tolerates any number including zero.
func (r *InventoryRepository) SumByProduct(ctx context.Context, productID string) (*domain.ProductStockSummary, error) {
	query := `
	SELECT COALESCE(SUM(quantity), 0),
		   COALESCE(SUM(used_quantity), 0),
		   COUNT(*)
	FROM inventory_records
	WHERE product_id = $1`

	summary := domain.ProductStockSummary{ProductID: productID}
	err := r.db.QueryRow(ctx, query, productID).Scan(
		&summary.TotalQuantity,
		&summary.TotalUsed,
		&summary.RecordCount,
	)
	if err != nil {
		return nil, fmt.Errorf("sum inventory by product: %w", err)
	}

	summary.TotalAvailable = summary.TotalQuantity - summary.TotalUsed
	return &summary, nil
}
