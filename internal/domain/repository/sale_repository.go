package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// SaleFilters filtros de consulta del libro de ventas. Los campos vacíos no
// filtran. From/To son inclusivos; la capa de aplicación los construye tanto
// para el día calendario completo como para rangos de reporte.
type SaleFilters struct {
	SalesUser string
	From      *time.Time
	To        *time.Time
	BillNo    string
	VehicleNo string
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son write-once: no hay Update ni Delete. Create retorna
// ErrDuplicateBill ante colisión del índice único de bill_no.
// List retorna ordenado por fecha descendente.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetByBillNo(ctx context.Context, billNo string) (*entity.Sale, error)
	List(ctx context.Context, f SaleFilters) ([]*entity.Sale, error)
}
