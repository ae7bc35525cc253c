package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx). Las líneas
// de la venta viajan como JSONB en la misma fila: son un snapshot inmutable
// tomado al confirmar la venta, no filas vivas que haya que actualizar.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta completa. Devuelve ErrDuplicateBill si el bill_no
// ya existe (constraint único, 23505).
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	lines, err := json.Marshal(sale.Lines)
	if err != nil {
		return fmt.Errorf("marshal sale lines: %w", err)
	}
	query := `
		INSERT INTO sales (id, bill_no, vehicle_no, customer_name, sales_user, date, lines, total_profit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		sale.ID, sale.BillNo, nullIfEmpty(sale.VehicleNo), nullIfEmpty(sale.CustomerName),
		sale.SalesUser, sale.Date, lines, sale.TotalProfit,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBill
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

const saleColumns = `id, bill_no, COALESCE(vehicle_no, ''), COALESCE(customer_name, ''), sales_user, date, lines, total_profit`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var lines []byte
	err := row.Scan(
		&s.ID, &s.BillNo, &s.VehicleNo, &s.CustomerName,
		&s.SalesUser, &s.Date, &lines, &s.TotalProfit,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &s.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal sale lines: %w", err)
	}
	return &s, nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetByBillNo obtiene una venta por número de factura.
func (r *SaleRepo) GetByBillNo(ctx context.Context, billNo string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE bill_no = $1`, billNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by bill_no: %w", err)
	}
	return s, nil
}

// List consulta el libro de ventas con filtros opcionales, orden por fecha
// descendente. From/To son inclusivos.
func (r *SaleRepo) List(ctx context.Context, filters repository.SaleFilters) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	args := []any{}
	if filters.SalesUser != "" {
		args = append(args, filters.SalesUser)
		query += fmt.Sprintf(" AND sales_user = $%d", len(args))
	}
	if filters.BillNo != "" {
		args = append(args, filters.BillNo)
		query += fmt.Sprintf(" AND bill_no = $%d", len(args))
	}
	if filters.VehicleNo != "" {
		args = append(args, filters.VehicleNo)
		query += fmt.Sprintf(" AND vehicle_no = $%d", len(args))
	}
	if filters.From != nil {
		args = append(args, *filters.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
