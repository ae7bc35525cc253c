package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/sales"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

func venta(id, billNo, user string, date time.Time, profit string) *entity.Sale {
	return &entity.Sale{
		ID:          id,
		BillNo:      billNo,
		SalesUser:   user,
		Date:        date,
		TotalProfit: dec(profit),
	}
}

func TestListSales_OrdenYFiltros(t *testing.T) {
	loc := time.UTC
	store := newFakeSaleStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, venta("s1", "F-1", "vendedor1", time.Date(2024, 3, 10, 9, 0, 0, 0, loc), "10")))
	require.NoError(t, store.Create(ctx, venta("s2", "F-2", "vendedor2", time.Date(2024, 3, 10, 18, 0, 0, 0, loc), "20")))
	require.NoError(t, store.Create(ctx, venta("s3", "F-3", "vendedor1", time.Date(2024, 3, 11, 8, 0, 0, 0, loc), "30")))

	uc := sales.NewQueryUseCase(store, loc)

	t.Run("admin sin filtros, orden descendente por fecha", func(t *testing.T) {
		resp, err := uc.ListSales(ctx, "jefe", entity.RoleAdmin, dto.ListSalesQuery{})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 3)
		assert.Equal(t, "F-3", resp.Sales[0].BillNo)
		assert.Equal(t, "F-2", resp.Sales[1].BillNo)
		assert.Equal(t, "F-1", resp.Sales[2].BillNo)
	})

	t.Run("filtro por día calendario completo", func(t *testing.T) {
		resp, err := uc.ListSales(ctx, "jefe", entity.RoleAdmin, dto.ListSalesQuery{Date: "2024-03-10"})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 2, "debe incluir la venta de las 18:00 del mismo día")
	})

	t.Run("rol user ve solo lo propio aunque pida otro vendedor", func(t *testing.T) {
		resp, err := uc.ListSales(ctx, "vendedor1", entity.RoleUser, dto.ListSalesQuery{User: "vendedor2"})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 2)
		for _, s := range resp.Sales {
			assert.Equal(t, "vendedor1", s.SalesUser)
		}
	})

	t.Run("fecha inválida", func(t *testing.T) {
		_, err := uc.ListSales(ctx, "jefe", entity.RoleAdmin, dto.ListSalesQuery{Date: "10/03/2024"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGetSale_RecortePorRol(t *testing.T) {
	loc := time.UTC
	store := newFakeSaleStore()
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, venta("s1", "F-1", "vendedor1", time.Now(), "10")))

	uc := sales.NewQueryUseCase(store, loc)

	t.Run("dueño puede verla", func(t *testing.T) {
		resp, err := uc.GetSale(ctx, "vendedor1", entity.RoleUser, "s1")
		require.NoError(t, err)
		assert.Equal(t, "F-1", resp.BillNo)
	})

	t.Run("otro rol user no puede verla", func(t *testing.T) {
		_, err := uc.GetSale(ctx, "vendedor2", entity.RoleUser, "s1")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("manager ve cualquiera", func(t *testing.T) {
		resp, err := uc.GetSale(ctx, "jefe", entity.RoleManager, "s1")
		require.NoError(t, err)
		assert.Equal(t, "s1", resp.ID)
	})

	t.Run("inexistente", func(t *testing.T) {
		_, err := uc.GetSale(ctx, "jefe", entity.RoleAdmin, "no-existe")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReport_Summarize(t *testing.T) {
	loc := time.UTC
	store := newFakeSaleStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, venta("s1", "F-1", "vendedor1", time.Date(2024, 2, 29, 23, 59, 59, 0, loc), "10.50")))
	require.NoError(t, store.Create(ctx, venta("s2", "F-2", "vendedor2", time.Date(2024, 3, 1, 0, 0, 0, 0, loc), "20.25")))
	require.NoError(t, store.Create(ctx, venta("s3", "F-3", "vendedor1", time.Date(2024, 3, 31, 22, 0, 0, 0, loc), "5.00")))

	uc := sales.NewReportUseCase(store, loc)

	t.Run("atajo de mes", func(t *testing.T) {
		resp, err := uc.Summarize(ctx, dto.ReportQuery{Month: "2024-03"})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 2)
		assert.True(t, resp.TotalProfit.Equal(dec("25.25")), "obtuvo %s", resp.TotalProfit)
	})

	t.Run("mes equivale al rango explícito", func(t *testing.T) {
		porMes, err := uc.Summarize(ctx, dto.ReportQuery{Month: "2024-03"})
		require.NoError(t, err)
		porRango, err := uc.Summarize(ctx, dto.ReportQuery{
			From: "2024-03-01T00:00:00.000",
			To:   "2024-03-31T23:59:59.999",
		})
		require.NoError(t, err)
		assert.Equal(t, len(porMes.Sales), len(porRango.Sales))
		assert.True(t, porMes.TotalProfit.Equal(porRango.TotalProfit))
	})

	t.Run("sin período agrega todo el histórico", func(t *testing.T) {
		resp, err := uc.Summarize(ctx, dto.ReportQuery{})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 3)
		assert.True(t, resp.TotalProfit.Equal(dec("35.75")))
	})

	t.Run("filtrado por vendedor", func(t *testing.T) {
		resp, err := uc.Summarize(ctx, dto.ReportQuery{User: "vendedor1"})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 2)
		assert.True(t, resp.TotalProfit.Equal(dec("15.50")))
	})

	t.Run("período sin ventas suma cero", func(t *testing.T) {
		resp, err := uc.Summarize(ctx, dto.ReportQuery{Month: "2024-01"})
		require.NoError(t, err)
		assert.Empty(t, resp.Sales)
		assert.True(t, resp.TotalProfit.IsZero())
	})

	t.Run("mes inválido", func(t *testing.T) {
		_, err := uc.Summarize(ctx, dto.ReportQuery{Month: "2024/03"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
