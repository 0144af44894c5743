package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// CoursHandler dépôt et revue des supports de cours
type CoursHandler struct {
	coursSvc      service.CoursService
	enseignantSvc service.EnseignantService
}

// NewCoursHandler crée le CoursHandler
func NewCoursHandler(coursSvc service.CoursService, enseignantSvc service.EnseignantService) *CoursHandler {
	return &CoursHandler{coursSvc: coursSvc, enseignantSvc: enseignantSvc}
}

// Deposer dépose un cours au nom de l'enseignant authentifié.
// Le statut initial est forcé en attente quel que soit l'appelant.
// POST /api/v1/cours
func (h *CoursHandler) Deposer(c *gin.Context) {
	compteID, ok := MustGetCompteID(c)
	if !ok {
		return
	}

	profil, err := h.enseignantSvc.ProfilParCompte(c.Request.Context(), compteID)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	var req dto.CreateCoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.coursSvc.Deposer(c.Request.Context(), profil.ProfilID(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// GetByID lit un cours
// GET /api/v1/cours/:id
func (h *CoursHandler) GetByID(c *gin.Context) {
	result, err := h.coursSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Revoir tranche la revue d'un cours (accept ou reject, observation exigée).
// La décision est définitive : une soumission déjà revue ne se rejuge pas.
// POST /api/v1/cours/:id/revue
func (h *CoursHandler) Revoir(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, evt, err := h.coursSvc.Revoir(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, gin.H{"soumission": result, "evenement": evt})
}

// Delete supprime un cours
// DELETE /api/v1/cours/:id
func (h *CoursHandler) Delete(c *gin.Context) {
	if err := h.coursSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// List liste les cours par module, par enseignant ou par statut
// GET /api/v1/cours?id_module=... | ?id_enseignant=... | ?status=...
func (h *CoursHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if idModule := c.Query("id_module"); idModule != "" {
		list, err := h.coursSvc.ListByModule(ctx, idModule)
		if err != nil {
			repondreErreur(c, err)
			return
		}
		response.OK(c, list)
		return
	}

	if idEnseignant := c.Query("id_enseignant"); idEnseignant != "" {
		list, err := h.coursSvc.ListByEnseignant(ctx, idEnseignant)
		if err != nil {
			repondreErreur(c, err)
			return
		}
		response.OK(c, list)
		return
	}

	page, pageSize := parsePagination(c)
	list, total, err := h.coursSvc.ListByStatus(ctx, c.Query("status"), page, pageSize)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OKPage(c, list, total, page, pageSize)
}

// MesCours liste les cours de l'enseignant authentifié
// GET /api/v1/cours/moi
func (h *CoursHandler) MesCours(c *gin.Context) {
	compteID, ok := MustGetCompteID(c)
	if !ok {
		return
	}

	profil, err := h.enseignantSvc.ProfilParCompte(c.Request.Context(), compteID)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	list, err := h.coursSvc.ListByEnseignant(c.Request.Context(), profil.ProfilID())
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, list)
}
