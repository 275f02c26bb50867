package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventdesk/internal/helpers"
	"eventdesk/internal/metric"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// Metrics records a request counter and latency histogram per handled
// request. Requests that matched no route are labelled "unmatched" so
// arbitrary paths cannot explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metric.RequestsTotal.WithLabelValues(method, route, status).Inc()
		metric.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// ErrorHandler is the outermost error boundary. Handlers attach unexpected
// errors to the context instead of writing responses; this middleware
// classifies the last one — store unreachable becomes a 503 with a fixed
// remediation hint, anything else a generic 500 — so no stack detail leaks
// to the caller.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID, _ := c.Get("request_id")

		logger.Error("Request error",
			"request_id", requestID,
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		if c.Writer.Written() {
			return
		}

		if helpers.IsStoreUnavailable(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": helpers.StoreUnavailableDetail})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
