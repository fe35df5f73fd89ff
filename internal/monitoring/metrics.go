package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hoodbook_cart_operations_total",
			Help: "Cart operations by kind and outcome",
		},
		[]string{"operation", "status"},
	)

	bookingsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hoodbook_bookings_confirmed_total",
			Help: "Bookings created at checkout",
		},
	)

	checkinScans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hoodbook_checkin_scans_total",
			Help: "Attendance scans by result",
		},
		[]string{"result"},
	)

	storeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hoodbook_state_store_errors_total",
			Help: "Failed state store reads and writes",
		},
		[]string{"key", "operation"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hoodbook_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func TrackCartOperation(operation, status string) {
	cartOperations.WithLabelValues(operation, status).Inc()
}

func TrackBookingsConfirmed(n int) {
	bookingsConfirmed.Add(float64(n))
}

func TrackScan(result string) {
	checkinScans.WithLabelValues(result).Inc()
}

func TrackStoreError(key, operation string) {
	storeErrors.WithLabelValues(key, operation).Inc()
}

// RequestMetrics records latency per matched route.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
