package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StructuredLogging logs one line per request. Probe and scrape endpoints
// are skipped so they do not drown out real traffic.
func StructuredLogging(logger *zap.SugaredLogger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		if param.Path == "/health" || param.Path == "/metrics" {
			return ""
		}

		requestID := ""
		if param.Keys != nil {
			if id, exists := param.Keys[ContextRequestID]; exists {
				requestID, _ = id.(string)
			}
		}

		logger.Infow("HTTP request",
			"request_id", requestID,
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency_ms", param.Latency.Milliseconds(),
			"client_ip", param.ClientIP,
			"user_agent", param.Request.UserAgent(),
			"error", param.ErrorMessage,
		)

		return ""
	})
}
