package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logging grava uma linha "http_request" por requisição.
// 4xx sai como warn e 5xx como error.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		durationMs := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Float64("duration_ms", durationMs),
			slog.String("request_id", c.GetString(ContextRequestID)),
			slog.String("client_ip", c.ClientIP()),
		}

		if id, ok := c.Get(ContextSubjectID); ok {
			attrs = append(attrs, slog.Any("subject_id", id))
		}

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}

		logger.Log(c.Request.Context(), level, "http_request", attrs...)
	}
}
