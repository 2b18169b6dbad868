package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-contrib/requestid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery превращает панику обработчика в 500 и кладёт её в контекст,
// чтобы RequestLogger записал причину вместе с запросом.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// клиент оборвал соединение, net/http обработает сам
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			reqID := requestid.Get(c)
			var userID string
			if s, ok := GetSession(c); ok {
				userID = s.UserID
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.Any("error", rec),
				logger.String("request_id", reqID),
				logger.String("user_id", userID),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.String("stack", string(debug.Stack())),
			)

			c.Set("error", fmt.Sprintf("panic: %v", rec))
			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error":      "internal server error",
				"request_id": reqID,
			})
		}()

		c.Next()
	}
}
