package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// InscriptionHandler inscriptions des stagiaires aux offres de formation
type InscriptionHandler struct {
	inscriptionSvc service.InscriptionService
	stagiaireSvc   service.StagiaireService
}

// NewInscriptionHandler crée l'InscriptionHandler
func NewInscriptionHandler(inscriptionSvc service.InscriptionService, stagiaireSvc service.StagiaireService) *InscriptionHandler {
	return &InscriptionHandler{inscriptionSvc: inscriptionSvc, stagiaireSvc: stagiaireSvc}
}

// Inscrire inscrit le stagiaire authentifié à une offre active
// POST /api/v1/inscriptions
func (h *InscriptionHandler) Inscrire(c *gin.Context) {
	compteID, ok := MustGetCompteID(c)
	if !ok {
		return
	}

	profil, err := h.stagiaireSvc.ProfilParCompte(c.Request.Context(), compteID)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	var req dto.CreateInscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.inscriptionSvc.Inscrire(c.Request.Context(), profil.ProfilID(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// GetByID lit une inscription
// GET /api/v1/inscriptions/:id
func (h *InscriptionHandler) GetByID(c *gin.Context) {
	result, err := h.inscriptionSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// ChangerStatut fait transiter une inscription dans sa machine à états
// POST /api/v1/inscriptions/:id/statut
func (h *InscriptionHandler) ChangerStatut(c *gin.Context) {
	var req dto.UpdateInscriptionStatutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, evt, err := h.inscriptionSvc.ChangerStatut(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, gin.H{"inscription": result, "evenement": evt})
}

// ChangerStatutEnMasse applique la même transition à un lot, tout ou rien
// POST /api/v1/inscriptions/statut
func (h *InscriptionHandler) ChangerStatutEnMasse(c *gin.Context) {
	var req dto.BulkInscriptionStatutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	evts, err := h.inscriptionSvc.ChangerStatutEnMasse(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, evts)
}

// List liste les inscriptions d'une offre ou d'un stagiaire
// GET /api/v1/inscriptions?id_offre=... | ?id_stagiaire=...
func (h *InscriptionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if idOffre := c.Query("id_offre"); idOffre != "" {
		list, err := h.inscriptionSvc.ListByOffre(ctx, idOffre)
		if err != nil {
			repondreErreur(c, err)
			return
		}
		response.OK(c, list)
		return
	}

	if idStagiaire := c.Query("id_stagiaire"); idStagiaire != "" {
		list, err := h.inscriptionSvc.ListByStagiaire(ctx, idStagiaire)
		if err != nil {
			repondreErreur(c, err)
			return
		}
		response.OK(c, list)
		return
	}

	response.BadRequest(c, 10001, "id_offre ou id_stagiaire requis")
}

// MesInscriptions liste les inscriptions du stagiaire authentifié
// GET /api/v1/inscriptions/moi
func (h *InscriptionHandler) MesInscriptions(c *gin.Context) {
	compteID, ok := MustGetCompteID(c)
	if !ok {
		return
	}

	profil, err := h.stagiaireSvc.ProfilParCompte(c.Request.Context(), compteID)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	list, err := h.inscriptionSvc.ListByStagiaire(c.Request.Context(), profil.ProfilID())
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, list)
}
