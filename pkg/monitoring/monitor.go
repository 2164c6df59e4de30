package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	AssessmentSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_submissions_total",
			Help: "Scored assessment submissions by feedback tier",
		},
		[]string{"tier"},
	)

	SubmissionRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_submission_rejections_total",
			Help: "Submissions rejected before a result was stored",
		},
		[]string{"reason"},
	)

	ScheduleUpdateFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_schedule_update_failures_total",
			Help: "Results stored whose user schedule update failed afterwards",
		},
	)

	AssessmentPercentage = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assessment_percentage",
			Help:    "Distribution of assessment percentages",
			Buckets: []float64{20, 40, 60, 80, 100},
		},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(AssessmentSubmissions)
		prometheus.MustRegister(SubmissionRejections)
		prometheus.MustRegister(ScheduleUpdateFailures)
		prometheus.MustRegister(AssessmentPercentage)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
