package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Model       string          `json:"model"`
	Brand       string          `json:"brand"`
	Material    string          `json:"material"`
	Color       string          `json:"color"`
	Family      string          `json:"family"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	Unit        string          `json:"unit"`
	Location    string          `json:"location"`
	Stock       int             `json:"stock" validate:"min=0"`
	Warehouse   string          `json:"warehouse" validate:"required"`
}

// UpdateProductRequest body para PUT /api/products/:code. Campos nil no cambian.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Model       *string          `json:"model,omitempty"`
	Brand       *string          `json:"brand,omitempty"`
	Material    *string          `json:"material,omitempty"`
	Color       *string          `json:"color,omitempty"`
	Family      *string          `json:"family,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	Currency    *string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	Unit        *string          `json:"unit,omitempty"`
	Location    *string          `json:"location,omitempty"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Model       string          `json:"model"`
	Brand       string          `json:"brand"`
	Material    string          `json:"material"`
	Color       string          `json:"color"`
	Family      string          `json:"family"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	Unit        string          `json:"unit"`
	Location    string          `json:"location"`
	Stock       int             `json:"stock"`
	Warehouse   string          `json:"warehouse"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
