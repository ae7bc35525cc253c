package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLine es una línea de venta embebida en Sale (no es direccionable por sí sola).
// ProductName, UnitCost y Profit se capturan al momento de la venta y son
// inmutables aunque el producto cambie después.
type SaleLine struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`    // precio total de la línea, tal como lo entrega el caller
	Discount    decimal.Decimal `json:"discount"` // descuento de la línea, >= 0
	UnitCost    decimal.Decimal `json:"cost_price"`
	Profit      decimal.Decimal `json:"profit"`
}

// Sale representa una venta registrada. Una vez persistida es inmutable:
// no existe update ni delete.
type Sale struct {
	ID           string
	BillNo       string // único global, lo aporta el caller
	VehicleNo    string
	CustomerName string
	SalesUser    string // vendedor, requerido
	Date         time.Time
	Lines        []SaleLine      // al menos una, en el orden solicitado
	TotalProfit  decimal.Decimal // suma exacta de Lines[i].Profit
}
