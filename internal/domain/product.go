package domain

import (
	"time"
)

// Product represents a catalog product. Deletion is soft: IsActive is set to
// false and the row is retained so inventory references stay resolvable.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	CategoryID   *string   `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	Price        int64     `json:"price"`
	Currency     string    `json:"currency"`
	ImageURL     *string   `json:"image_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description string  `json:"description" validate:"max=5000"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	Price       int64   `json:"price" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductInput holds the partial patch for updating a product. Nil
// fields are left untouched.
type UpdateProductInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	Price       *int64  `json:"price" validate:"omitempty,gte=0"`
	Currency    *string `json:"currency" validate:"omitempty,len=3"`
	ImageURL    *string `json:"image_url" validate:"omitempty"`
	IsActive    *bool   `json:"is_active"`
}
