package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/backoffice/internal/domain"
	"github.com/commercekit/backoffice/pkg/database"
	apperrors "github.com/commercekit/backoffice/pkg/errors"
	"github.com/commercekit/backoffice/pkg/pagination"
)

func setupInventoryRepo(t *testing.T) (*InventoryRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	repo := NewInventoryRepository(mock)
	return repo, mock
}

var inventoryColumns = []string{
	"id", "product_id", "product_name",
	"quantity", "used_quantity", "available_quantity", "status",
	"low_stock_threshold", "last_restocked", "created_at", "updated_at",
}

func sampleRecord() domain.InventoryRecord {
	ts := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	return domain.InventoryRecord{
		ID:                "rec-1",
		ProductID:         "prod-1",
		ProductName:       "Wireless Headphones",
		Quantity:          100,
		UsedQuantity:      10,
		AvailableQuantity: 90,
		Status:            domain.StatusInStock,
		LowStockThreshold: 20,
		LastRestocked:     ts,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
}

func recordRows(recs ...domain.InventoryRecord) *pgxmock.Rows {
	rows := pgxmock.NewRows(inventoryColumns)
	for _, rec := range recs {
		rows.AddRow(rec.ID, rec.ProductID, rec.ProductName,
			rec.Quantity, rec.UsedQuantity, rec.AvailableQuantity, rec.Status,
			rec.LowStockThreshold, rec.LastRestocked, rec.CreatedAt, rec.UpdatedAt)
	}
	return rows
}

func TestInventoryRepository_GetByID_Success(t *testing.T) {
	repo, mock := setupInventoryRepo(t)
	defer mock.Close()

	rec := sampleRecord()
	mock.ExpectQuery("SELECT .+ FROM inventory_records i").
		WithArgs(rec.ID).
		WillReturnRows(recordRows(rec))

	result, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, result.ID)
	assert.Equal(t, rec.ProductID, result.ProductID)
	assert.Equal(t, "Wireless Headphones", result.ProductName)
	assert.Equal(t, 90, result.AvailableQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupInventoryRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM inventory_records i").
		WithArgs("rec-x").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByID(context.Background(), "rec-x")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_List_Success(t *testing.T) {
	repo, mock := setupInventoryRepo(t)
	defer mock.Close()

	rec := sampleRecord()
	rows := pgxmock.NewRows(append(inventoryColumns, "total_count")).
		AddRow(rec.ID, rec.ProductID, rec.ProductName,
			rec.Quantity, rec.UsedQuantity, rec.AvailableQuantity, rec.Status,
			rec.LowStockThreshold, rec.LastRestocked, rec.CreatedAt, rec.UpdatedAt, 42)

	mock.ExpectQuery("SELECT .+ count\\(\\*\\) OVER\\(\\) AS total_count").
		WithArgs(20, 0).
		WillReturnRows(rows)

	records, total, err := repo.List(context.Background(), pagination.DefaultParams())
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 42, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_List_Empty(t *testing.T) {
	repo, mock := setupInventoryRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM inventory_records i").
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(append(inventoryColumns, "total_count")))

	records, total, err := repo.List(context.Background(), pagination.DefaultParams())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_List_UnknownSortFallsBack(t *testing.T) {
	repo, mock := setupInventoryRepo(t)
	defer mock.Close()

	params := pagination.DefaultParams()
	params.SortBy = "drop table"

	mock.ExpectQuery("ORDER BY i.created_at DESC").
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(append(inventoryColumns, "total_count")))

	_, _, err := repo.List(context.Background(), params)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_Delete_Removed(t *testing.T) {
	repo, mock := setupInventoryRepo(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM inventory_records").
		WithArgs("rec-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	removed, err := repo.Delete(context.Background(), "rec-1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_Delete_NoRow(t *testing.T) {
	repo, mock := setupInventoryRepo(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM inventory_records").
		WithArgs("rec-x").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	removed, err := repo.Delete(context.Background(), "rec-x")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_SumByProduct_WithRecords(t *testing.T) {
	repo, mock := setupInventoryRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(quantity\\), 0\\)").
		WithArgs("prod-1").
		WillReturnRows(pgxmock.NewRows([]string{"sum_quantity", "sum_used", "count"}).
			AddRow(150, 30, 2))

	summary, err := repo.SumByProduct(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, 150, summary.TotalQuantity)
	assert.Equal(t, 30, summary.TotalUsed)
	assert.Equal(t, 120, summary.TotalAvailable)
	assert.Equal(t, 2, summary.RecordCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_SumByProduct_ZeroRecords(t *testing.T) {
	repo, mock := setupInventoryRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(quantity\\), 0\\)").
		WithArgs("prod-x").
		WillReturnRows(pgxmock.NewRows([]string{"sum_quantity", "sum_used", "count"}).
			AddRow(0, 0, 0))

	summary, err := repo.SumByProduct(context.Background(), "prod-x")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalQuantity)
	assert.Zero(t, summary.TotalUsed)
	assert.Zero(t, summary.TotalAvailable)
	assert.Zero(t, summary.RecordCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_GetByID_QueryError(t *testing.T) {
	repo, mock := setupInventoryRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM inventory_records i").
		WithArgs("rec-1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByID(context.Background(), "rec-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
