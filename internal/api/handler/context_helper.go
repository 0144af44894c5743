package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/pkg/jwt"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// MustGetCompteID extrait compte_id du contexte Gin.
// Si le middleware JWT n'a pas injecté la valeur, écrit un 401 et renvoie
// false ; l'appelant doit alors retourner immédiatement.
func MustGetCompteID(c *gin.Context) (string, bool) {
	v, exists := c.Get("compte_id")
	if !exists {
		response.Unauthorized(c, 10002, "non authentifié")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "non authentifié")
		return "", false
	}
	return s, true
}

// MustGetRole extrait role du contexte Gin.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "non authentifié")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "non authentifié")
		return "", false
	}
	return s, true
}

// MustGetClaims extrait les claims complets injectés par le middleware JWT.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "non authentifié")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "non authentifié")
		return nil, false
	}
	return claims, true
}

// parsePagination lit page et page_size de la query string, avec bornes
func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
