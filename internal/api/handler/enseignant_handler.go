package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// EnseignantHandler gestion des profils enseignants
type EnseignantHandler struct {
	enseignantSvc service.EnseignantService
	compteSvc     service.CompteService
}

// NewEnseignantHandler crée l'EnseignantHandler
func NewEnseignantHandler(enseignantSvc service.EnseignantService, compteSvc service.CompteService) *EnseignantHandler {
	return &EnseignantHandler{enseignantSvc: enseignantSvc, compteSvc: compteSvc}
}

// Create crée un profil enseignant, grade optionnel
// POST /api/v1/enseignants
func (h *EnseignantHandler) Create(c *gin.Context) {
	var req dto.CreateEnseignantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.enseignantSvc.Create(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// GetByID lit un profil enseignant
// GET /api/v1/enseignants/:id
func (h *EnseignantHandler) GetByID(c *gin.Context) {
	result, err := h.enseignantSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Me lit le profil enseignant du compte authentifié
// GET /api/v1/enseignants/moi
func (h *EnseignantHandler) Me(c *gin.Context) {
	compteID, ok := MustGetCompteID(c)
	if !ok {
		return
	}

	profil, err := h.enseignantSvc.ProfilParCompte(c.Request.Context(), compteID)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	result, err := h.enseignantSvc.GetByID(c.Request.Context(), profil.ProfilID())
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Update met à jour partiellement un profil enseignant, grade compris
// PATCH /api/v1/enseignants/:id
func (h *EnseignantHandler) Update(c *gin.Context) {
	var req dto.UpdateEnseignantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.enseignantSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Delete supprime un profil enseignant
// DELETE /api/v1/enseignants/:id
func (h *EnseignantHandler) Delete(c *gin.Context) {
	if err := h.enseignantSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// List liste les enseignants, paginée
// GET /api/v1/enseignants
func (h *EnseignantHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	list, total, err := h.enseignantSvc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OKPage(c, list, total, page, pageSize)
}

// LierCompte lie le profil à un compte de rôle Enseignant
// POST /api/v1/enseignants/:id/compte
func (h *EnseignantHandler) LierCompte(c *gin.Context) {
	var req dto.LinkProfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	if err := h.compteSvc.LierProfil(c.Request.Context(), h.enseignantSvc, c.Param("id"), req.IDCompte); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// DelierCompte détache le profil de son compte
// DELETE /api/v1/enseignants/:id/compte
func (h *EnseignantHandler) DelierCompte(c *gin.Context) {
	if err := h.compteSvc.DelierProfil(c.Request.Context(), h.enseignantSvc, c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}
