package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"log/slog"
)

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		log.Info("incoming request",
			"method", req.Method,
			"path", req.URL.Path,
			"query", req.URL.RawQuery,
			"user_agent", req.UserAgent(),
			"remote_addr", req.RemoteAddr,
			"content_length", req.ContentLength,
		)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		var logLevel slog.Level
		switch {
		case status >= 500:
			logLevel = slog.LevelError
		case status >= 400:
			logLevel = slog.LevelWarn
		default:
			logLevel = slog.LevelInfo
		}

		log.LogAttrs(c.Request.Context(), logLevel, "request completed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("query", req.URL.RawQuery),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("response_size", c.Writer.Size()),
			slog.String("user_agent", req.UserAgent()),
			slog.String("remote_addr", req.RemoteAddr),
		)
	}
}
