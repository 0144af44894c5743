package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// StagiaireHandler gestion des profils stagiaires
type StagiaireHandler struct {
	stagiaireSvc service.StagiaireService
	compteSvc    service.CompteService
}

// NewStagiaireHandler crée le StagiaireHandler
func NewStagiaireHandler(stagiaireSvc service.StagiaireService, compteSvc service.CompteService) *StagiaireHandler {
	return &StagiaireHandler{stagiaireSvc: stagiaireSvc, compteSvc: compteSvc}
}

// Create crée un profil stagiaire
// POST /api/v1/stagiaires
func (h *StagiaireHandler) Create(c *gin.Context) {
	var req dto.CreateStagiaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.stagiaireSvc.Create(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// GetByID lit un profil stagiaire
// GET /api/v1/stagiaires/:id
func (h *StagiaireHandler) GetByID(c *gin.Context) {
	result, err := h.stagiaireSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Me lit le profil stagiaire du compte authentifié
// GET /api/v1/stagiaires/moi
func (h *StagiaireHandler) Me(c *gin.Context) {
	compteID, ok := MustGetCompteID(c)
	if !ok {
		return
	}

	profil, err := h.stagiaireSvc.ProfilParCompte(c.Request.Context(), compteID)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	result, err := h.stagiaireSvc.GetByID(c.Request.Context(), profil.ProfilID())
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Update met à jour partiellement un profil stagiaire
// PATCH /api/v1/stagiaires/:id
func (h *StagiaireHandler) Update(c *gin.Context) {
	var req dto.UpdatePersonneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.stagiaireSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Delete supprime un profil stagiaire
// DELETE /api/v1/stagiaires/:id
func (h *StagiaireHandler) Delete(c *gin.Context) {
	if err := h.stagiaireSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// List liste les stagiaires, paginée
// GET /api/v1/stagiaires
func (h *StagiaireHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	list, total, err := h.stagiaireSvc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OKPage(c, list, total, page, pageSize)
}

// LierCompte lie le profil à un compte de rôle Stagiaire
// POST /api/v1/stagiaires/:id/compte
func (h *StagiaireHandler) LierCompte(c *gin.Context) {
	var req dto.LinkProfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	if err := h.compteSvc.LierProfil(c.Request.Context(), h.stagiaireSvc, c.Param("id"), req.IDCompte); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// DelierCompte détache le profil de son compte ; le compte subsiste
// DELETE /api/v1/stagiaires/:id/compte
func (h *StagiaireHandler) DelierCompte(c *gin.Context) {
	if err := h.compteSvc.DelierProfil(c.Request.Context(), h.stagiaireSvc, c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}
