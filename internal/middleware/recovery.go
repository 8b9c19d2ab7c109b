package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"mrdom-sdr/pkg/response"
)

// Recovery turns a handler panic into a 500 response.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.InternalError(c, fmt.Errorf("%v", recovered))
		c.Abort()
	})
}
