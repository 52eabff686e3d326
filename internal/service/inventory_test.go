package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/backoffice/internal/domain"
	"github.com/commercekit/backoffice/pkg/database"
	apperrors "github.com/commercekit/backoffice/pkg/errors"
	"github.com/commercekit/backoffice/pkg/pagination"
)

// --- Mock InventoryRepository ---

type mockInventoryRepo struct {
	mock.Mock
}

func (m *mockInventoryRepo) GetByID(ctx context.Context, id string) (*domain.InventoryRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryRecord), args.Error(1)
}

func (m *mockInventoryRepo) List(ctx context.Context, params pagination.Params) ([]domain.InventoryRecord, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.InventoryRecord), args.Int(1), args.Error(2)
}

func (m *mockInventoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockInventoryRepo) SumByProduct(ctx context.Context, productID string) (*domain.ProductStockSummary, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductStockSummary), args.Error(1)
}

// --- Mock ProductReader ---

type mockProductReader struct {
	mock.Mock
}

func (m *mockProductReader) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductReader) GetName(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// --- Mock event publisher ---

type mockEvents struct {
	mock.Mock
}

func (m *mockEvents) PublishInventoryCreated(ctx context.Context, rec *domain.InventoryRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *mockEvents) PublishInventoryUpdated(ctx context.Context, rec *domain.InventoryRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *mockEvents) PublishInventoryDeleted(ctx context.Context, recordID string) error {
	return m.Called(ctx, recordID).Error(0)
}

func (m *mockEvents) PublishInventoryLowStock(ctx context.Context, rec *domain.InventoryRecord) error {
	return m.Called(ctx, rec).Error(0)
}

// --- Test helpers ---

const productID = "5cc3b5a7-94df-4788-9acf-0b8c9d2e3f4a"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fixture struct {
	svc      *InventoryService
	db       pgxmock.PgxPoolIface
	repo     *mockInventoryRepo
	products *mockProductReader
	events   *mockEvents
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.NewMockPool()
	require.NoError(t, err)
	t.Cleanup(db.Close)

	f := &fixture{
		db:       db,
		repo:     new(mockInventoryRepo),
		products: new(mockProductReader),
		events:   new(mockEvents),
	}
	f.svc = NewInventoryService(db, f.repo, f.products, f.events, newTestLogger())
	return f
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

var lockColumns = []string{
	"id", "product_id", "quantity", "used_quantity", "available_quantity",
	"status", "low_stock_threshold", "last_restocked", "created_at", "updated_at",
}

func lockedRow(rec domain.InventoryRecord) *pgxmock.Rows {
	return pgxmock.NewRows(lockColumns).
		AddRow(rec.ID, rec.ProductID, rec.Quantity, rec.UsedQuantity, rec.AvailableQuantity,
			rec.Status, rec.LowStockThreshold, rec.LastRestocked, rec.CreatedAt, rec.UpdatedAt)
}

func expectCreateTx(f *fixture, productExists, duplicate bool) {
	f.db.ExpectBegin()
	f.db.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM products").
		WithArgs(productID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(productExists))
	if !productExists {
		f.db.ExpectRollback()
		return
	}
	f.db.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM inventory_records").
		WithArgs(productID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(duplicate))
	if duplicate {
		f.db.ExpectRollback()
	}
}

// --- CreateInventory ---

func TestCreateInventory_InStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.products.On("Exists", ctx, productID).Return(true, nil)
	expectCreateTx(f, true, false)
	f.db.ExpectExec("INSERT INTO inventory_records").
		WithArgs(pgxmock.AnyArg(), productID, 100, 10, 90, domain.StatusInStock, 20,
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	f.db.ExpectCommit()

	f.products.On("GetName", ctx, productID).Return("Wireless Headphones", nil)
	f.events.On("PublishInventoryCreated", ctx, mock.Anything).Return(nil)

	rec, err := f.svc.CreateInventory(ctx, domain.CreateInventoryInput{
		ProductID:         productID,
		Quantity:          intPtr(100),
		UsedQuantity:      intPtr(10),
		LowStockThreshold: intPtr(20),
	})
	require.NoError(t, err)

	assert.Equal(t, 90, rec.AvailableQuantity)
	assert.Equal(t, domain.StatusInStock, rec.Status)
	assert.Equal(t, "Wireless Headphones", rec.ProductName)
	assert.False(t, rec.LastRestocked.IsZero())
	assert.NoError(t, f.db.ExpectationsWereMet())
	f.events.AssertNotCalled(t, "PublishInventoryLowStock", mock.Anything, mock.Anything)
}

func TestCreateInventory_LowStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.products.On("Exists", ctx, productID).Return(true, nil)
	expectCreateTx(f, true, false)
	f.db.ExpectExec("INSERT INTO inventory_records").
		WithArgs(pgxmock.AnyArg(), productID, 15, 10, 5, domain.StatusLowStock, 10,
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	f.db.ExpectCommit()

	f.products.On("GetName", ctx, productID).Return("Cable", nil)
	f.events.On("PublishInventoryCreated", ctx, mock.Anything).Return(nil)
	f.events.On("PublishInventoryLowStock", ctx, mock.Anything).Return(nil)

	rec, err := f.svc.CreateInventory(ctx, domain.CreateInventoryInput{
		ProductID:         productID,
		Quantity:          intPtr(15),
		UsedQuantity:      intPtr(10),
		LowStockThreshold: intPtr(10),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, rec.AvailableQuantity)
	assert.Equal(t, domain.StatusLowStock, rec.Status)
	f.events.AssertCalled(t, "PublishInventoryLowStock", ctx, mock.Anything)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestCreateInventory_OutOfStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.products.On("Exists", ctx, productID).Return(true, nil)
	expectCreateTx(f, true, false)
	f.db.ExpectExec("INSERT INTO inventory_records").
		WithArgs(pgxmock.AnyArg(), productID, 10, 10, 0, domain.StatusOutOfStock, domain.DefaultLowStockThreshold,
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	f.db.ExpectCommit()

	f.products.On("GetName", ctx, productID).Return("Cable", nil)
	f.events.On("PublishInventoryCreated", ctx, mock.Anything).Return(nil)
	f.events.On("PublishInventoryLowStock", ctx, mock.Anything).Return(nil)

	rec, err := f.svc.CreateInventory(ctx, domain.CreateInventoryInput{
		ProductID:    productID,
		Quantity:     intPtr(10),
		UsedQuantity: intPtr(10),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, rec.AvailableQuantity)
	assert.Equal(t, domain.StatusOutOfStock, rec.Status)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestCreateInventory_UsedExceedsQuantity(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateInventory(context.Background(), domain.CreateInventoryInput{
		ProductID:    productID,
		Quantity:     intPtr(3),
		UsedQuantity: intPtr(5),
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	f.products.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestCreateInventory_ProductMissingOrDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.products.On("Exists", ctx, productID).Return(false, nil)

	_, err := f.svc.CreateInventory(ctx, domain.CreateInventoryInput{ProductID: productID})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateInventory_ProductDeactivatedDuringTx(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.products.On("Exists", ctx, productID).Return(true, nil)
	expectCreateTx(f, false, false)

	_, err := f.svc.CreateInventory(ctx, domain.CreateInventoryInput{ProductID: productID})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestCreateInventory_DuplicateRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.products.On("Exists", ctx, productID).Return(true, nil)
	expectCreateTx(f, true, true)

	_, err := f.svc.CreateInventory(ctx, domain.CreateInventoryInput{ProductID: productID})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestCreateInventory_ConcurrentCreateLosesRace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.products.On("Exists", ctx, productID).Return(true, nil)
	expectCreateTx(f, true, false)
	f.db.ExpectExec("INSERT INTO inventory_records").
		WithArgs(pgxmock.AnyArg(), productID, 0, 0, 0, domain.StatusOutOfStock, domain.DefaultLowStockThreshold,
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "inventory_records_product_id_key" (SQLSTATE 23505)`))
	f.db.ExpectRollback()

	_, err := f.svc.CreateInventory(ctx, domain.CreateInventoryInput{ProductID: productID})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

// --- UpdateInventory ---

func baseRecord() domain.InventoryRecord {
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	rec := domain.InventoryRecord{
		ID:                "rec-1",
		ProductID:         productID,
		Quantity:          100,
		UsedQuantity:      10,
		LowStockThreshold: 20,
		LastRestocked:     ts,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
	rec.Recompute()
	return rec
}

func expectLock(f *fixture, rec domain.InventoryRecord) {
	f.db.ExpectBegin()
	f.db.ExpectQuery("SELECT .+ FROM inventory_records WHERE id = \\$1 FOR UPDATE").
		WithArgs(rec.ID).
		WillReturnRows(lockedRow(rec))
}

func TestUpdateInventory_RestockAdvancesTimestamp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := baseRecord()

	expectLock(f, rec)
	// Quantity raised to 200: available recomputed with the existing
	// used_quantity of 10, last_restocked refreshed.
	f.db.ExpectExec("UPDATE inventory_records").
		WithArgs(200, 10, 190, domain.StatusInStock, 20,
			pgxmock.AnyArg(), pgxmock.AnyArg(), rec.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	f.db.ExpectCommit()

	f.products.On("GetName", ctx, productID).Return("Headphones", nil)
	f.events.On("PublishInventoryUpdated", ctx, mock.Anything).Return(nil)

	updated, err := f.svc.UpdateInventory(ctx, rec.ID, domain.UpdateInventoryInput{Quantity: intPtr(200)})
	require.NoError(t, err)

	assert.Equal(t, 200, updated.Quantity)
	assert.Equal(t, 190, updated.AvailableQuantity)
	assert.True(t, updated.LastRestocked.After(rec.LastRestocked))
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestUpdateInventory_QuantityDecreaseKeepsRestockTimestamp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := baseRecord()

	expectLock(f, rec)
	f.db.ExpectExec("UPDATE inventory_records").
		WithArgs(50, 10, 40, domain.StatusInStock, 20,
			rec.LastRestocked, pgxmock.AnyArg(), rec.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	f.db.ExpectCommit()

	f.products.On("GetName", ctx, productID).Return("Headphones", nil)
	f.events.On("PublishInventoryUpdated", ctx, mock.Anything).Return(nil)

	updated, err := f.svc.UpdateInventory(ctx, rec.ID, domain.UpdateInventoryInput{Quantity: intPtr(50)})
	require.NoError(t, err)

	assert.Equal(t, rec.LastRestocked, updated.LastRestocked)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestUpdateInventory_EmptyPatchIsARead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := baseRecord()

	f.repo.On("GetByID", ctx, rec.ID).Return(&rec, nil)

	result, err := f.svc.UpdateInventory(ctx, rec.ID, domain.UpdateInventoryInput{})
	require.NoError(t, err)

	assert.Equal(t, rec.LastRestocked, result.LastRestocked)
	assert.Equal(t, rec.Quantity, result.Quantity)
	// No transaction, no write, no event.
	assert.NoError(t, f.db.ExpectationsWereMet())
	f.events.AssertNotCalled(t, "PublishInventoryUpdated", mock.Anything, mock.Anything)
}

func TestUpdateInventory_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.db.ExpectBegin()
	f.db.ExpectQuery("SELECT .+ FOR UPDATE").
		WithArgs("rec-x").
		WillReturnError(pgx.ErrNoRows)
	f.db.ExpectRollback()

	_, err := f.svc.UpdateInventory(ctx, "rec-x", domain.UpdateInventoryInput{Quantity: intPtr(1)})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestUpdateInventory_UsedExceedsResultingQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := baseRecord()

	expectLock(f, rec)
	f.db.ExpectRollback()

	_, err := f.svc.UpdateInventory(ctx, rec.ID, domain.UpdateInventoryInput{Quantity: intPtr(5)})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestUpdateInventory_ZeroQuantityApplies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := baseRecord()
	rec.UsedQuantity = 0
	rec.Recompute()

	expectLock(f, rec)
	// A legitimate zero must not be ignored as "absent".
	f.db.ExpectExec("UPDATE inventory_records").
		WithArgs(0, 0, 0, domain.StatusOutOfStock, 20,
			rec.LastRestocked, pgxmock.AnyArg(), rec.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	f.db.ExpectCommit()

	f.products.On("GetName", ctx, productID).Return("Headphones", nil)
	f.events.On("PublishInventoryUpdated", ctx, mock.Anything).Return(nil)
	f.events.On("PublishInventoryLowStock", ctx, mock.Anything).Return(nil)

	updated, err := f.svc.UpdateInventory(ctx, rec.ID, domain.UpdateInventoryInput{Quantity: intPtr(0)})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOutOfStock, updated.Status)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestUpdateInventory_ThresholdPatchRecomputesStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := baseRecord()
	rec.Quantity = 15
	rec.UsedQuantity = 10
	rec.LowStockThreshold = 10
	rec.Recompute()
	require.Equal(t, domain.StatusLowStock, rec.Status)

	expectLock(f, rec)
	// Lowering the threshold below the available quantity flips the record
	// back to in stock even though no quantity changed.
	f.db.ExpectExec("UPDATE inventory_records").
		WithArgs(15, 10, 5, domain.StatusInStock, 4,
			rec.LastRestocked, pgxmock.AnyArg(), rec.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	f.db.ExpectCommit()

	f.products.On("GetName", ctx, productID).Return("Headphones", nil)
	f.events.On("PublishInventoryUpdated", ctx, mock.Anything).Return(nil)

	updated, err := f.svc.UpdateInventory(ctx, rec.ID, domain.UpdateInventoryInput{LowStockThreshold: intPtr(4)})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInStock, updated.Status)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestUpdateInventory_StatusOnlyPatchOverrides(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := baseRecord()

	expectLock(f, rec)
	f.db.ExpectExec("UPDATE inventory_records").
		WithArgs(100, 10, 90, domain.StatusOutOfStock, 20,
			rec.LastRestocked, pgxmock.AnyArg(), rec.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	f.db.ExpectCommit()

	f.products.On("GetName", ctx, productID).Return("Headphones", nil)
	f.events.On("PublishInventoryUpdated", ctx, mock.Anything).Return(nil)
	f.events.On("PublishInventoryLowStock", ctx, mock.Anything).Return(nil)

	updated, err := f.svc.UpdateInventory(ctx, rec.ID, domain.UpdateInventoryInput{
		Status: strPtr(domain.StatusOutOfStock),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOutOfStock, updated.Status)
	assert.Equal(t, 90, updated.AvailableQuantity)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestUpdateInventory_InvalidStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateInventory(context.Background(), "rec-1", domain.UpdateInventoryInput{
		Status: strPtr("backordered"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUpdateInventory_NameLookupFailureTolerated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := baseRecord()

	expectLock(f, rec)
	f.db.ExpectExec("UPDATE inventory_records").
		WithArgs(120, 10, 110, domain.StatusInStock, 20,
			pgxmock.AnyArg(), pgxmock.AnyArg(), rec.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	f.db.ExpectCommit()

	f.products.On("GetName", ctx, productID).Return("", errors.New("catalog unavailable"))
	f.events.On("PublishInventoryUpdated", ctx, mock.Anything).Return(nil)

	updated, err := f.svc.UpdateInventory(ctx, rec.ID, domain.UpdateInventoryInput{Quantity: intPtr(120)})
	require.NoError(t, err)

	assert.Empty(t, updated.ProductName)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

// --- GetInventory / ListInventory ---

func TestGetInventory_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := baseRecord()

	f.repo.On("GetByID", ctx, rec.ID).Return(&rec, nil)

	result, err := f.svc.GetInventory(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, result.ID)
}

func TestGetInventory_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("GetByID", ctx, "rec-x").Return(nil, apperrors.NotFound("inventory record", "rec-x"))

	_, err := f.svc.GetInventory(ctx, "rec-x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListInventory_CapsPerPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("List", ctx, mock.MatchedBy(func(p pagination.Params) bool {
		return p.PerPage == 100 && p.Page == 1 && p.Offset == 0
	})).Return([]domain.InventoryRecord{}, 0, nil)

	_, _, err := f.svc.ListInventory(ctx, pagination.Params{Page: 1, PerPage: 500})
	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

// --- DeleteInventory ---

func TestDeleteInventory_Removed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("Delete", ctx, "rec-1").Return(true, nil)
	f.events.On("PublishInventoryDeleted", ctx, "rec-1").Return(nil)

	removed, err := f.svc.DeleteInventory(ctx, "rec-1")
	require.NoError(t, err)
	assert.True(t, removed)
	f.events.AssertCalled(t, "PublishInventoryDeleted", ctx, "rec-1")
}

func TestDeleteInventory_NoRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("Delete", ctx, "rec-x").Return(false, nil)

	removed, err := f.svc.DeleteInventory(ctx, "rec-x")
	require.NoError(t, err)
	assert.False(t, removed)
	f.events.AssertNotCalled(t, "PublishInventoryDeleted", mock.Anything, mock.Anything)
}

// --- GetProductStock ---

func TestGetProductStock_ZeroRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("SumByProduct", ctx, productID).Return(&domain.ProductStockSummary{ProductID: productID}, nil)

	summary, err := f.svc.GetProductStock(ctx, productID)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalQuantity)
	assert.Zero(t, summary.TotalAvailable)
	assert.Zero(t, summary.RecordCount)
}

func TestGetProductStock_EmptyProductID(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetProductStock(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
