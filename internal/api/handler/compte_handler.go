package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// CompteHandler gestion des comptes d'identité
type CompteHandler struct {
	compteSvc service.CompteService
}

// NewCompteHandler crée le CompteHandler
func NewCompteHandler(compteSvc service.CompteService) *CompteHandler {
	return &CompteHandler{compteSvc: compteSvc}
}

// Create crée un compte ; le rôle est fixé à la création et immuable ensuite
// POST /api/v1/comptes
func (h *CompteHandler) Create(c *gin.Context) {
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

// GetByID lit un compte par son identifiant
// GET /api/v1/comptes/:id
func (h *CompteHandler) GetByID(c *gin.Context) {
	result, err := h.compteSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// List liste les comptes, paginée
// GET /api/v1/comptes
func (h *CompteHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	list, total, err := h.compteSvc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OKPage(c, list, total, page, pageSize)
}
