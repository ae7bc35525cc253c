package sales

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// LineProfit implementa la fórmula de utilidad por línea (servicio de dominio).
// Profit = (Price - UnitCost * Quantity) - Discount
// Price es el precio TOTAL de la línea, no unitario. La fórmula se conserva
// literalmente aunque el descuento pueda estar ya reflejado en Price: los
// históricos dependen de ella.
func LineProfit(price, unitCost decimal.Decimal, quantity int64, discount decimal.Decimal) decimal.Decimal {
	cost := unitCost.Mul(decimal.NewFromInt(quantity))
	return price.Sub(cost).Sub(discount)
}

// TotalProfit suma exacta de las utilidades de las líneas (sin redondeo intermedio).
func TotalProfit(lines []entity.SaleLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Profit)
	}
	return total
}
