package metrics

import (
    "net/http"
    "strconv"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
    requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
        Name: "http_requests_total",
        Help: "HTTP requests by method, route and status.",
    }, []string{"method", "route", "status"})

    requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
        Name:    "http_request_duration_seconds",
        Help:    "HTTP request latency by method and route.",
        Buckets: prometheus.DefBuckets,
    }, []string{"method", "route"})
)

// Handler exposes the prometheus registry, mounted at /metrics.
func Handler() http.Handler {
    return promhttp.Handler()
}

// Middleware records a counter and latency sample per request, labelled by the
// route template rather than the raw path to bound cardinality.
func Middleware() gin.HandlerFunc {
    return func(c *gin.Context) {
        start := time.Now()
        c.Next()
        route := c.FullPath()
        if route == "" {
            route = "unmatched"
        }
        requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
        requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
    }
}
