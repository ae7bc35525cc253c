package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock solo se modifica vía decremento condicional atómico (ledger de ventas)
// o edición directa de administrador; nunca con read-modify-write del caller.
type Product struct {
	ID        string
	Code      string // código único de producto
	Name      string
	Category  string
	Price     decimal.Decimal // precio de venta unitario
	CostPrice decimal.Decimal // costo unitario, capturado por línea al vender
	Stock     int64           // existencia, nunca negativa (CHECK stock >= 0)
	ImageURL  string          // referencia opcional a la imagen (el upload es externo)
	CreatedAt time.Time
	UpdatedAt time.Time
}
