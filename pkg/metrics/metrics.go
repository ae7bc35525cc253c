package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Métricas HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Métricas de negocio
	SalesCreatedCounter      prometheus.Counter
	InsufficientStockCounter prometheus.Counter
	DuplicateBillCounter     prometheus.Counter
)

var initOnce sync.Once

// Init registra las métricas Prometheus con el prefijo dado. Es idempotente:
// solo la primera llamada registra (promauto entra en pánico ante nombres
// duplicados); las siguientes no hacen nada.
func Init(prefix string) {
	initOnce.Do(func() { register(prefix) })
}

func register(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	SalesCreatedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_sales_created_total",
			Help: "Total de ventas registradas",
		},
	)

	InsufficientStockCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_sales_insufficient_stock_total",
			Help: "Total de ventas rechazadas por stock insuficiente",
		},
	)

	DuplicateBillCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_sales_duplicate_bill_total",
			Help: "Total de ventas rechazadas por número de factura duplicado",
		},
	)
}

// Middleware registra contador y duración por petición. Usa la ruta registrada
// (no la URL cruda) para no explotar la cardinalidad con IDs.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		labels := prometheus.Labels{
			"method": c.Method(),
			"path":   c.Route().Path,
			"status": strconv.Itoa(status),
		}
		HTTPRequestsTotal.With(labels).Inc()
		HTTPRequestDuration.With(labels).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone el endpoint /metrics en formato Prometheus.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
