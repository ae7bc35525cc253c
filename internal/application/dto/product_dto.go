package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Stock     int64           `json:"stock"`
	ImageURL  string          `json:"image_url,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// Stock aquí es edición administrativa directa, no pasa por el ledger.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Category  *string          `json:"category"`
	Price     *decimal.Decimal `json:"price"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	Stock     *int64           `json:"stock"`
	ImageURL  *string          `json:"image_url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Stock     int64           `json:"stock"`
	ImageURL  string          `json:"image_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos del catálogo.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
