package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/idrissziadi/stage-sub004/pkg/jwt"
	"github.com/idrissziadi/stage-sub004/pkg/redis"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// JWTAuth extrait et vérifie l'access token de l'en-tête
// Authorization: Bearer <token>. Le client Redis peut être nil : le
// contrôle de liste noire est alors sauté (mode dégradé) ; une erreur
// Redis ponctuelle est journalisée sans bloquer la requête.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "en-tête d'authentification manquant")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "format d'en-tête d'authentification invalide")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalide ou expiré")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "type de token invalide")
			c.Abort()
			return
		}

		if rdb != nil && claims.ID != "" {
			revoque, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("contrôle de liste noire indisponible", zap.Error(err))
			} else if revoque {
				response.Unauthorized(c, 10002, "token révoqué")
				c.Abort()
				return
			}
		}

		c.Set("compte_id", claims.CompteID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth n'admet la requête que si le rôle du compte figure dans la liste
func RoleAuth(rolesAdmis ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "non authentifié")
			c.Abort()
			return
		}

		roleCompte := role.(string)
		for _, r := range rolesAdmis {
			if roleCompte == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "accès refusé pour ce rôle")
		c.Abort()
	}
}
