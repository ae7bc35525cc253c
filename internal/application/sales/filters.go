package sales

import (
	"fmt"
	"time"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// EffectiveFilters aplica el recorte de consulta por rol del lado servidor:
// el rol "user" siempre consulta sus propias ventas, ignorando cualquier
// filtro de vendedor que haya enviado el cliente. admin y manager pasan
// sus filtros sin cambios. Función pura: (rol, filtros, identidad) -> filtros.
func EffectiveFilters(role string, requested repository.SaleFilters, callerUsername string) repository.SaleFilters {
	if role == entity.RoleUser {
		requested.SalesUser = callerUsername
	}
	return requested
}

// DayWindow devuelve la ventana inclusiva del día calendario completo de t
// en la zona horaria loc: [00:00:00.000, 23:59:59.999].
func DayWindow(t time.Time, loc *time.Location) (from, to time.Time) {
	t = t.In(loc)
	from = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	to = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return from, to
}

// MonthRange expande el atajo "YYYY-MM" al primer instante del mes y al
// último milisegundo del último día, en la zona horaria loc.
func MonthRange(month string, loc *time.Location) (from, to time.Time, err error) {
	first, err := time.ParseInLocation("2006-01", month, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("mes inválido %q: %w", month, err)
	}
	from = first
	// Día 0 del mes siguiente = último día de este mes.
	last := first.AddDate(0, 1, -first.Day())
	to = time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return from, to, nil
}
