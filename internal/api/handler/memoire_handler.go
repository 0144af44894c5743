package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// MemoireHandler dépôt et revue des mémoires de fin de formation
type MemoireHandler struct {
	memoireSvc   service.MemoireService
	stagiaireSvc service.StagiaireService
}

// NewMemoireHandler crée le MemoireHandler
func NewMemoireHandler(memoireSvc service.MemoireService, stagiaireSvc service.StagiaireService) *MemoireHandler {
	return &MemoireHandler{memoireSvc: memoireSvc, stagiaireSvc: stagiaireSvc}
}

// Deposer dépose un mémoire au nom du stagiaire authentifié,
// encadreur optionnel
// POST /api/v1/memoires
func (h *MemoireHandler) Deposer(c *gin.Context) {
	compteID, ok := MustGetCompteID(c)
	if !ok {
		return
	}

	profil, err := h.stagiaireSvc.ProfilParCompte(c.Request.Context(), compteID)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	var req dto.CreateMemoireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.memoireSvc.Deposer(c.Request.Context(), profil.ProfilID(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// GetByID lit un mémoire
// GET /api/v1/memoires/:id
func (h *MemoireHandler) GetByID(c *gin.Context) {
	result, err := h.memoireSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Revoir tranche la revue d'un mémoire ; décision définitive
// POST /api/v1/memoires/:id/revue
func (h *MemoireHandler) Revoir(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, evt, err := h.memoireSvc.Revoir(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, gin.H{"soumission": result, "evenement": evt})
}

// Delete supprime un mémoire
// DELETE /api/v1/memoires/:id
func (h *MemoireHandler) Delete(c *gin.Context) {
	if err := h.memoireSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// List liste les mémoires par stagiaire, par encadreur ou par statut
// GET /api/v1/memoires?id_stagiaire=... | ?id_encadreur=... | ?status=...
func (h *MemoireHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if idStagiaire := c.Query("id_stagiaire"); idStagiaire != "" {
		list, err := h.memoireSvc.ListByStagiaire(ctx, idStagiaire)
		if err != nil {
			repondreErreur(c, err)
			return
		}
		response.OK(c, list)
		return
	}

	if idEncadreur := c.Query("id_encadreur"); idEncadreur != "" {
		list, err := h.memoireSvc.ListByEncadreur(ctx, idEncadreur)
		if err != nil {
			repondreErreur(c, err)
			return
		}
		response.OK(c, list)
		return
	}

	page, pageSize := parsePagination(c)
	list, total, err := h.memoireSvc.ListByStatus(ctx, c.Query("status"), page, pageSize)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OKPage(c, list, total, page, pageSize)
}

// MesMemoires liste les mémoires du stagiaire authentifié
// GET /api/v1/memoires/moi
func (h *MemoireHandler) MesMemoires(c *gin.Context) {
	compteID, ok := MustGetCompteID(c)
	if !ok {
		return
	}

	profil, err := h.stagiaireSvc.ProfilParCompte(c.Request.Context(), compteID)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	list, err := h.memoireSvc.ListByStagiaire(c.Request.Context(), profil.ProfilID())
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, list)
}
