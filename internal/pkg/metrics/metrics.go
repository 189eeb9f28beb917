// Package metrics holds the Prometheus collectors of the API and the gin
// middleware that feeds them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UnmatchedRoute labels requests that did not match any registered route
const UnmatchedRoute = "unmatched"

// Write operations recorded by EntityWrites
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// HTTPRequests counts handled requests by method, route template and status code
var HTTPRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bangazon_http_requests_total",
		Help: "Total number of HTTP requests handled by the API",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration records request latency by method and route template
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bangazon_http_request_duration_seconds",
		Help:    "Latency in seconds of HTTP requests handled by the API",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// EntityWrites counts successful writes by entity and operation (create/update/delete)
var EntityWrites = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bangazon_entity_writes_total",
		Help: "Total number of persisted entity writes",
	},
	[]string{"entity", "operation"},
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPRequestDuration, EntityWrites)
}

// GinMiddleware records HTTPRequests and HTTPRequestDuration for every request
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = UnmatchedRoute
		}

		method := c.Request.Method
		HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordWrite increments EntityWrites
func RecordWrite(entity, operation string) {
	EntityWrites.WithLabelValues(entity, operation).Inc()
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
