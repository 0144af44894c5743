package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// AffectationHandler affectations enseignant↔module par année scolaire
type AffectationHandler struct {
	affectationSvc service.AffectationService
}

// NewAffectationHandler crée l'AffectationHandler
func NewAffectationHandler(affectationSvc service.AffectationService) *AffectationHandler {
	return &AffectationHandler{affectationSvc: affectationSvc}
}

// Affecter affecte un enseignant à un module pour une année scolaire,
// semestre optionnel
// POST /api/v1/affectations
func (h *AffectationHandler) Affecter(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.affectationSvc.Affecter(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// Retirer retire une affectation identifiée par son triplet
// DELETE /api/v1/affectations?id_module=...&id_enseignant=...&annee_scolaire=...
func (h *AffectationHandler) Retirer(c *gin.Context) {
	idModule := c.Query("id_module")
	idEnseignant := c.Query("id_enseignant")
	annee := c.Query("annee_scolaire")
	if idModule == "" || idEnseignant == "" || annee == "" {
		response.BadRequest(c, 10001, "id_module, id_enseignant et annee_scolaire requis")
		return
	}

	if err := h.affectationSvc.Retirer(c.Request.Context(), idModule, idEnseignant, annee); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// ChangerSemestre change le semestre d'une affectation existante
// PATCH /api/v1/affectations/semestre
func (h *AffectationHandler) ChangerSemestre(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.affectationSvc.ChangerSemestre(c.Request.Context(), req.IDModule, req.IDEnseignant, req.AnneeScolaire, req.Semestre)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// List liste les affectations par enseignant, par module ou par année
// GET /api/v1/affectations?id_enseignant=... | ?id_module=... | ?annee_scolaire=...
func (h *AffectationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if idEnseignant := c.Query("id_enseignant"); idEnseignant != "" {
		list, err := h.affectationSvc.ListByEnseignant(ctx, idEnseignant)
		if err != nil {
			repondreErreur(c, err)
			return
		}
		response.OK(c, list)
		return
	}

	if idModule := c.Query("id_module"); idModule != "" {
		list, err := h.affectationSvc.ListByModule(ctx, idModule)
		if err != nil {
			repondreErreur(c, err)
			return
		}
		response.OK(c, list)
		return
	}

	if annee := c.Query("annee_scolaire"); annee != "" {
		list, err := h.affectationSvc.ListByAnnee(ctx, annee)
		if err != nil {
			repondreErreur(c, err)
			return
		}
		response.OK(c, list)
		return
	}

	response.BadRequest(c, 10001, "id_enseignant, id_module ou annee_scolaire requis")
}
