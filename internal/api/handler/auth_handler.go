package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// AuthHandler authentification et cycle de vie des tokens
type AuthHandler struct {
	authSvc   service.AuthService
	compteSvc service.CompteService
}

// NewAuthHandler crée l'AuthHandler
func NewAuthHandler(authSvc service.AuthService, compteSvc service.CompteService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, compteSvc: compteSvc}
}

// Signup création publique d'un compte
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.compteSvc.CreateCompte(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// Login connexion par identifiant et mot de passe
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrIdentifiantsInvalides) {
			response.Error(c, http.StatusUnauthorized, 11001, "identifiant ou mot de passe incorrect")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Refresh renouvelle le couple de tokens à partir d'un refresh token
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRefreshInvalide) {
			response.Error(c, http.StatusUnauthorized, 11002, "refresh token invalide ou expiré")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout révoque l'access token courant (liste noire Redis)
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
