package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ReportUseCase agrega utilidad total sobre las consultas del libro de ventas
// (capa delgada de composición de consultas, solo lectura).
type ReportUseCase struct {
	saleRepo repository.SaleRepository
	loc      *time.Location
}

// NewReportUseCase construye el agregador de reportes.
func NewReportUseCase(saleRepo repository.SaleRepository, loc *time.Location) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{saleRepo: saleRepo, loc: loc}
}

// Summarize devuelve las ventas del período y la suma de su utilidad total.
// Acepta rango explícito [from, to] o el atajo month=YYYY-MM (primer instante
// del mes hasta el último milisegundo del último día). Sin período, agrega
// sobre todo el histórico, como el listado sin filtros.
func (uc *ReportUseCase) Summarize(ctx context.Context, q dto.ReportQuery) (*dto.ReportResponse, error) {
	filters := repository.SaleFilters{SalesUser: q.User}

	switch {
	case q.From != "" && q.To != "":
		from, err := parseReportTime(q.From, uc.loc)
		if err != nil {
			return nil, err
		}
		to, err := parseReportTime(q.To, uc.loc)
		if err != nil {
			return nil, err
		}
		filters.From = &from
		filters.To = &to
	case q.Month != "":
		from, to, err := MonthRange(q.Month, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		filters.From = &from
		filters.To = &to
	}

	list, err := uc.saleRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReportResponse{
		Sales:       make([]dto.SaleResponse, 0, len(list)),
		TotalProfit: decimal.Zero,
	}
	for _, s := range list {
		resp.Sales = append(resp.Sales, *toSaleResponse(s))
		resp.TotalProfit = resp.TotalProfit.Add(s.TotalProfit)
	}
	return resp, nil
}

// parseReportTime acepta fecha sola o timestamp RFC 3339 sin zona.
func parseReportTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05.999", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, s)
}
