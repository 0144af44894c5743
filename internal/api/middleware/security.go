package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders pose les en-têtes de durcissement sur toutes les réponses.
// L'API ne sert que du JSON et des pièces jointes, d'où la CSP minimale.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		c.Next()
	}
}
