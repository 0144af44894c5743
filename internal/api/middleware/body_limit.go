package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// BodyLimit refuse les corps de requête au-delà de maxBytes.
// Le plafond s'applique à la lecture : un Content-Length menteur est
// coupé par le MaxBytesReader sous-jacent.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10004, "corps de requête trop volumineux")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
