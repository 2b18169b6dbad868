package middleware

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger пишет одну запись на запрос. Ошибку кладёт handleError через c.Set("error").
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		level := logger.InfoLevel
		switch {
		case status >= 500:
			level = logger.ErrorLevel
		case status >= 400:
			level = logger.WarnLevel
		}

		errMsg := c.GetString("error")
		if errMsg == "" && len(c.Errors) > 0 {
			errMsg = c.Errors.String()
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("request_id", requestid.Get(c)),
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
			logger.String("error", errMsg),
		)
	}
}
