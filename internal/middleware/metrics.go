package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts failed Redis commands by command name. Incremented from
// the cache client's process hook.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bobchat_redis_errors_total",
		Help: "Total number of Redis command errors.",
	},
	[]string{"command"},
)

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus middleware for the given service name.
// The instance is shared: fiberprometheus registers its collectors in the
// default registry, and registering twice panics.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(service)
	})
	return promInstance
}

// MetricsMiddleware returns the HTTP metrics collection handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
