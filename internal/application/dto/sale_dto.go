package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea solicitada en POST /api/sales.
// Price es el precio TOTAL de la línea (no unitario), tal como lo envía el caller.
type SaleLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
}

// CreateSaleRequest body para POST /api/sales.
// BillNo lo aporta el caller y debe ser único global.
type CreateSaleRequest struct {
	BillNo       string            `json:"bill_no"`
	VehicleNo    string            `json:"vehicle_no,omitempty"`
	CustomerName string            `json:"customer_name,omitempty"`
	SalesUser    string            `json:"sales_user"`
	Lines        []SaleLineRequest `json:"products"`
}

// SaleLineResponse línea con costo y utilidad capturados al vender.
type SaleLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	UnitCost    decimal.Decimal `json:"cost_price"`
	Profit      decimal.Decimal `json:"profit"`
}

// SaleResponse venta completa con sus líneas.
type SaleResponse struct {
	ID           string             `json:"id"`
	BillNo       string             `json:"bill_no"`
	VehicleNo    string             `json:"vehicle_no,omitempty"`
	CustomerName string             `json:"customer_name,omitempty"`
	SalesUser    string             `json:"sales_user"`
	Date         time.Time          `json:"date"`
	Lines        []SaleLineResponse `json:"products"`
	TotalProfit  decimal.Decimal    `json:"total_profit"`
}

// SaleListResponse listado ordenado por fecha descendente.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ListSalesQuery filtros de GET /api/sales (el rol "user" es forzado a sus propias ventas).
type ListSalesQuery struct {
	User      string `query:"user"`
	Date      string `query:"date"` // YYYY-MM-DD, día calendario completo
	BillNo    string `query:"bill_no"`
	VehicleNo string `query:"vehicle_no"`
}

// ReportQuery filtros de GET /api/sales/report: rango [from, to] o atajo month=YYYY-MM.
type ReportQuery struct {
	From  string `query:"from"`
	To    string `query:"to"`
	Month string `query:"month"`
	User  string `query:"user"`
}

// ReportResponse ventas del período y suma de utilidad total.
type ReportResponse struct {
	Sales       []SaleResponse  `json:"sales"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}
