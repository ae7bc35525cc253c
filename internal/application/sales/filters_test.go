package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/application/sales"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

func TestEffectiveFilters_RecortePorRol(t *testing.T) {
	requested := repository.SaleFilters{SalesUser: "otro-vendedor", BillNo: "F-9"}

	t.Run("rol user consulta solo lo propio", func(t *testing.T) {
		got := sales.EffectiveFilters(entity.RoleUser, requested, "vendedor1")
		assert.Equal(t, "vendedor1", got.SalesUser,
			"el filtro de vendedor del cliente debe ignorarse")
		assert.Equal(t, "F-9", got.BillNo, "los demás filtros se conservan")
	})

	t.Run("admin y manager pasan sin cambios", func(t *testing.T) {
		for _, role := range []string{entity.RoleAdmin, entity.RoleManager} {
			got := sales.EffectiveFilters(role, requested, "jefe")
			assert.Equal(t, "otro-vendedor", got.SalesUser)
		}
	})

	t.Run("rol user sin filtro solicitado", func(t *testing.T) {
		got := sales.EffectiveFilters(entity.RoleUser, repository.SaleFilters{}, "vendedor1")
		assert.Equal(t, "vendedor1", got.SalesUser)
	})
}

func TestDayWindow(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 3, 15, 14, 30, 0, 0, loc)

	from, to := sales.DayWindow(day, loc)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, int(999*time.Millisecond), loc), to)
}

func TestMonthRange(t *testing.T) {
	loc := time.UTC

	t.Run("mes de 31 días", func(t *testing.T) {
		from, to, err := sales.MonthRange("2024-03", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), from)
		assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, int(999*time.Millisecond), loc), to)
	})

	t.Run("febrero bisiesto", func(t *testing.T) {
		from, to, err := sales.MonthRange("2024-02", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, loc), from)
		assert.Equal(t, 29, to.Day())
	})

	t.Run("febrero no bisiesto", func(t *testing.T) {
		_, to, err := sales.MonthRange("2023-02", loc)
		require.NoError(t, err)
		assert.Equal(t, 28, to.Day())
	})

	t.Run("mes inválido", func(t *testing.T) {
		_, _, err := sales.MonthRange("2024-13", loc)
		assert.Error(t, err)
		_, _, err = sales.MonthRange("marzo", loc)
		assert.Error(t, err)
	})
}
