// Package observability exposes Prometheus metrics for the API.
package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lifehub",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests handled, labeled by method, route and status code.",
}, []string{"method", "route", "status"})

// HTTPRequestDuration observes HTTP request latency by method and route.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "lifehub",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds, labeled by method and route.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// MilestonesEmitted counts milestone events crossed by finance-goal writes.
var MilestonesEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lifehub",
	Subsystem: "sync",
	Name:      "milestones_emitted_total",
	Help:      "Total finance-goal milestone events emitted, labeled by goal type.",
}, []string{"goal_type"})

// NotificationsSent counts notification delivery outcomes.
var NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lifehub",
	Subsystem: "notifications",
	Name:      "jobs_processed_total",
	Help:      "Total notification jobs processed, labeled by final status.",
}, []string{"status"})

// MetricsMiddleware returns a Gin middleware recording request counts and
// latency. The route template is used as the label, not the raw path, to keep
// cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}

// MilestoneMetrics adapts the milestone counter to the sync orchestrator's
// recorder interface.
type MilestoneMetrics struct{}

// NewMilestoneMetrics creates a new MilestoneMetrics instance.
func NewMilestoneMetrics() *MilestoneMetrics {
	return &MilestoneMetrics{}
}

// RecordMilestone increments the milestone counter for the given goal type.
func (m *MilestoneMetrics) RecordMilestone(goalType string) {
	MilestonesEmitted.WithLabelValues(goalType).Inc()
}

// NotificationMetrics adapts the notification counter to the worker's
// recorder interface.
type NotificationMetrics struct{}

// NewNotificationMetrics creates a new NotificationMetrics instance.
func NewNotificationMetrics() *NotificationMetrics {
	return &NotificationMetrics{}
}

// RecordOutcome increments the processed-jobs counter for the final status.
func (m *NotificationMetrics) RecordOutcome(status string) {
	NotificationsSent.WithLabelValues(status).Inc()
}
