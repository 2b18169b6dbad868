package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// BodyLimit обрезает тело запроса до limit байт, чтение сверх лимита вернёт *http.MaxBytesError.
func BodyLimit(limit int64) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
