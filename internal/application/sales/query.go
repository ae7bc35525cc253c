package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// QueryUseCase consultas del libro de ventas, con recorte por rol.
type QueryUseCase struct {
	saleRepo repository.SaleRepository
	loc      *time.Location // zona horaria de referencia para ventanas de día
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(saleRepo repository.SaleRepository, loc *time.Location) *QueryUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &QueryUseCase{saleRepo: saleRepo, loc: loc}
}

// ListSales resuelve los filtros efectivos según el rol del caller y consulta
// el repositorio. date (YYYY-MM-DD) acota al día calendario completo en la
// zona horaria de referencia. Orden: fecha descendente.
func (uc *QueryUseCase) ListSales(ctx context.Context, callerUsername, callerRole string, q dto.ListSalesQuery) (*dto.SaleListResponse, error) {
	filters := repository.SaleFilters{
		SalesUser: q.User,
		BillNo:    q.BillNo,
		VehicleNo: q.VehicleNo,
	}
	if q.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", q.Date, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, q.Date)
		}
		from, to := DayWindow(day, uc.loc)
		filters.From = &from
		filters.To = &to
	}
	filters = EffectiveFilters(callerRole, filters, callerUsername)

	list, err := uc.saleRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleListResponse{Sales: make([]dto.SaleResponse, 0, len(list))}
	for _, s := range list {
		resp.Sales = append(resp.Sales, *toSaleResponse(s))
	}
	return resp, nil
}

// GetSale obtiene una venta por ID. El rol "user" solo puede ver las suyas.
func (uc *QueryUseCase) GetSale(ctx context.Context, callerUsername, callerRole, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if callerRole == entity.RoleUser && sale.SalesUser != callerUsername {
		return nil, domain.ErrForbidden
	}
	return toSaleResponse(sale), nil
}

// GetSaleEntity variante interna que devuelve la entidad (recibo PDF).
func (uc *QueryUseCase) GetSaleEntity(ctx context.Context, callerUsername, callerRole, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if callerRole == entity.RoleUser && sale.SalesUser != callerUsername {
		return nil, domain.ErrForbidden
	}
	return sale, nil
}
