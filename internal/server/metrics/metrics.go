package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Счетчики операций калькулятора, раздельно по типу операции
var (
	// CalculationsTotal количество успешно выполненных и сохраненных операций
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calcapi_calculations_total",
		Help: "Total number of calculator operations performed and persisted",
	}, []string{"operation"})

	// CalculationErrors количество отклоненных вычислений (деление на ноль,
	// отрицательный корень, переполнение)
	CalculationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calcapi_calculation_errors_total",
		Help: "Total number of rejected calculator operations",
	}, []string{"operation"})
)

// Handler возвращает HTTP handler для /metrics в формате Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
