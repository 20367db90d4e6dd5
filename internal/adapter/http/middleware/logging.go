package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZapMiddleware writes one access log line per request. Requests on a task
// or notification route carry the record id under task_id or notification_id.
func GinZapMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("path", path),
			zap.String("lang", GetLang(c)),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if field, ok := recordIDField(c); ok {
			fields = append(fields, field)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("http request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("http request", fields...)
		default:
			logger.Info("http request", fields...)
		}
	}
}

// recordIDField names the :id route param after the entity the route serves.
func recordIDField(c *gin.Context) (zap.Field, bool) {
	raw := c.Param("id")
	if raw == "" {
		return zap.Field{}, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return zap.String("invalid_id", raw), true
	}

	route := c.FullPath()
	switch {
	case strings.HasPrefix(route, "/api/tasks/"):
		return zap.Uint64("task_id", id), true
	case strings.HasPrefix(route, "/api/notifications/"):
		return zap.Uint64("notification_id", id), true
	default:
		return zap.Uint64("id", id), true
	}
}
