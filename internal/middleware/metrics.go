package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name. Wired into the
// cache client as a hook so cache degradation is visible on the dashboard.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mechmate_redis_errors_total",
		Help: "Total number of Redis command errors by command.",
	},
	[]string{"command"},
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the shared HTTP metrics middleware. The underlying
// collectors register against the default Prometheus registry, so the
// instance is created once regardless of how many servers are constructed
// (tests build several).
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}
