package domain

import (
	"time"
)

// Stock status constants.
const (
	StatusInStock    = "in_stock"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
)

// DefaultLowStockThreshold is applied when a record is created without an
// explicit threshold.
const DefaultLowStockThreshold = 10

// InventoryRecord tracks stock for a single product. Exactly one record
// exists per product, enforced by a unique constraint.
type InventoryRecord struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product_id"`
	ProductName       string    `json:"product_name,omitempty"`
	Quantity          int       `json:"quantity"`
	UsedQuantity      int       `json:"used_quantity"`
	AvailableQuantity int       `json:"available_quantity"`
	Status            string    `json:"status"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	LastRestocked     time.Time `json:"last_restocked"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ComputeStatus derives the stock status from quantities and threshold.
// Available stock at or below zero is out of stock, at or below the
// threshold is low stock, anything above is in stock.
func ComputeStatus(quantity, usedQuantity, lowStockThreshold int) string {
	available := quantity - usedQuantity
	switch {
	case available <= 0:
		return StatusOutOfStock
	case available <= lowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Recompute refreshes the derived fields from the base quantities. Every
// write path must call this before persisting; AvailableQuantity and Status
// are never accepted from callers.
func (r *InventoryRecord) Recompute() {
	r.AvailableQuantity = r.Quantity - r.UsedQuantity
	r.Status = ComputeStatus(r.Quantity, r.UsedQuantity, r.LowStockThreshold)
}

// ValidStockStatuses returns the set of valid stock statuses.
func ValidStockStatuses() []string {
	return []string{StatusInStock, StatusLowStock, StatusOutOfStock}
}

// IsValidStockStatus checks whether the given string is a valid stock status.
func IsValidStockStatus(status string) bool {
	for _, s := range ValidStockStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// CreateInventoryInput carries the caller-supplied fields for creating a
// record. Optional fields are pointers so absent and zero are distinguishable.
type CreateInventoryInput struct {
	ProductID         string `json:"product_id" validate:"required,uuid"`
	Quantity          *int   `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	UsedQuantity      *int   `json:"used_quantity,omitempty" validate:"omitempty,gte=0"`
	LowStockThreshold *int   `json:"low_stock_threshold,omitempty" validate:"omitempty,gt=0"`
}

// UpdateInventoryInput is a partial patch. Nil fields are left untouched;
// presence is checked via the pointer, not truthiness, so legitimate zero
// values still apply.
type UpdateInventoryInput struct {
	Quantity          *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	UsedQuantity      *int    `json:"used_quantity,omitempty" validate:"omitempty,gte=0"`
	LowStockThreshold *int    `json:"low_stock_threshold,omitempty" validate:"omitempty,gt=0"`
	Status            *string `json:"status,omitempty" validate:"omitempty,oneof=in_stock low_stock out_of_stock"`
}

// Empty reports whether the patch contains no fields.
func (in UpdateInventoryInput) Empty() bool {
	return in.Quantity == nil && in.UsedQuantity == nil && in.LowStockThreshold == nil && in.Status == nil
}

// ProductStockSummary aggregates stock across all inventory records for a
// product. Zero records yield all-zero totals.
type ProductStockSummary struct {
	ProductID      string `json:"product_id"`
	TotalQuantity  int    `json:"total_quantity"`
	TotalUsed      int    `json:"total_used"`
	TotalAvailable int    `json:"total_available"`
	RecordCount    int    `json:"record_count"`
}
