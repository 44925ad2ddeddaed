package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/internal/shared/response"
)

const ErrCodePanic = "SYS_PANIC"

// Recovery bắt panic của handler, log kèm request_id + stack và trả 500.
// Client nhận request_id để đối chiếu log.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			requestID := GetRequestID(c)
			log.Error().
				Str("request_id", requestID).
				Str("method", c.Request.Method).
				Str("route", c.FullPath()).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("[Recovery] Panic recovered")

			// handler đã ghi response một phần thì chỉ dừng chain
			if c.Writer.Written() {
				c.Abort()
				return
			}

			var details interface{}
			if requestID != "" {
				details = gin.H{"request_id": requestID}
			}
			response.ErrorWithDetails(c, http.StatusInternalServerError, ErrCodePanic, "Internal server error", details)
			c.Abort()
		}()

		c.Next()
	}
}
