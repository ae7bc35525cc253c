package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	domsales "github.com/tu-usuario/ventas-api/internal/domain/sales"
)

// CreateSaleUseCase arma una venta multi-línea y descuenta el inventario en
// una sola transacción. El decremento por producto es un UPDATE condicional
// atómico con piso en cero (ver ProductRepository.AdjustStock); si cualquier
// línea falla —producto inexistente, stock insuficiente o bill_no duplicado—
// el rollback de la tx revierte los decrementos ya aplicados.
type CreateSaleUseCase struct {
	txRunner TxRunner
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner}
}

// CreateSale valida la solicitud, reserva el stock línea a línea y persiste la
// venta con la utilidad calculada al momento del decremento.
//
// Fórmula por línea: profit = (price - costPrice*quantity) - discount, con
// price como total de la línea. TotalProfit es la suma exacta de las líneas.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.SalesUser == "" {
		return nil, fmt.Errorf("%w: sales_user es requerido", domain.ErrInvalidInput)
	}
	if in.BillNo == "" {
		return nil, fmt.Errorf("%w: bill_no es requerido", domain.ErrInvalidInput)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: la venta requiere al menos una línea", domain.ErrInvalidInput)
	}
	for i, line := range in.Lines {
		if line.ProductID == "" {
			return nil, fmt.Errorf("%w: línea %d sin product_id", domain.ErrInvalidInput, i+1)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: línea %d requiere cantidad positiva", domain.ErrInvalidInput, i+1)
		}
		if line.Price.IsNegative() {
			return nil, fmt.Errorf("%w: línea %d con precio negativo", domain.ErrInvalidInput, i+1)
		}
		if line.Discount.IsNegative() {
			return nil, fmt.Errorf("%w: línea %d con descuento negativo", domain.ErrInvalidInput, i+1)
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:           uuid.New().String(),
		BillNo:       in.BillNo,
		VehicleNo:    in.VehicleNo,
		CustomerName: in.CustomerName,
		SalesUser:    in.SalesUser,
		Date:         now,
		Lines:        make([]entity.SaleLine, 0, len(in.Lines)),
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// 1) Reservar stock línea a línea. AdjustStock es el decremento
		// condicional atómico; devuelve el producto con nombre y costo
		// capturados en ese instante. Cualquier error aborta la tx completa.
		for _, line := range in.Lines {
			product, err := productRepo.AdjustStock(ctx, line.ProductID, -line.Quantity)
			if err != nil {
				return err
			}
			profit := domsales.LineProfit(line.Price, product.CostPrice, line.Quantity, line.Discount)
			sale.Lines = append(sale.Lines, entity.SaleLine{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				Price:       line.Price,
				Discount:    line.Discount,
				UnitCost:    product.CostPrice,
				Profit:      profit,
			})
		}

		// 2) Utilidad total: suma exacta de las líneas.
		sale.TotalProfit = domsales.TotalProfit(sale.Lines)

		// 3) Persistir dentro de la misma tx: un bill_no duplicado (23505)
		// también revierte los decrementos del paso 1.
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	resp := &dto.SaleResponse{
		ID:           s.ID,
		BillNo:       s.BillNo,
		VehicleNo:    s.VehicleNo,
		CustomerName: s.CustomerName,
		SalesUser:    s.SalesUser,
		Date:         s.Date,
		Lines:        make([]dto.SaleLineResponse, 0, len(s.Lines)),
		TotalProfit:  s.TotalProfit,
	}
	for _, l := range s.Lines {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Discount:    l.Discount,
			UnitCost:    l.UnitCost,
			Profit:      l.Profit,
		})
	}
	return resp
}
