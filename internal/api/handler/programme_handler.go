package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// ProgrammeHandler dépôt et revue des programmes pédagogiques.
// Le dépôt se fait au nom de l'établissement régional authentifié ;
// la revue relève du niveau national.
type ProgrammeHandler struct {
	programmeSvc service.ProgrammeService
	etabSvc      service.EtablissementService
}

// NewProgrammeHandler crée le ProgrammeHandler
func NewProgrammeHandler(programmeSvc service.ProgrammeService, etabSvc service.EtablissementService) *ProgrammeHandler {
	return &ProgrammeHandler{programmeSvc: programmeSvc, etabSvc: etabSvc}
}

// Deposer dépose un programme au nom de l'établissement régional authentifié
// POST /api/v1/programmes
func (h *ProgrammeHandler) Deposer(c *gin.Context) {
	compteID, ok := MustGetCompteID(c)
	if !ok {
		return
	}

	profil, err := h.etabSvc.BinderRegionale().ProfilParCompte(c.Request.Context(), compteID)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	var req dto.CreateProgrammeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.programmeSvc.Deposer(c.Request.Context(), profil.ProfilID(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// GetByID lit un programme
// GET /api/v1/programmes/:id
func (h *ProgrammeHandler) GetByID(c *gin.Context) {
	result, err := h.programmeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Revoir tranche la revue d'un programme ; décision définitive
// POST /api/v1/programmes/:id/revue
func (h *ProgrammeHandler) Revoir(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, evt, err := h.programmeSvc.Revoir(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, gin.H{"soumission": result, "evenement": evt})
}

// Delete supprime un programme
// DELETE /api/v1/programmes/:id
func (h *ProgrammeHandler) Delete(c *gin.Context) {
	if err := h.programmeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// List liste les programmes par établissement régional ou par statut
// GET /api/v1/programmes?id_etab_regionale=... | ?status=...
func (h *ProgrammeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if idEtab := c.Query("id_etab_regionale"); idEtab != "" {
		list, err := h.programmeSvc.ListByEtabRegionale(ctx, idEtab)
		if err != nil {
			repondreErreur(c, err)
			return
		}
		response.OK(c, list)
		return
	}

	page, pageSize := parsePagination(c)
	list, total, err := h.programmeSvc.ListByStatus(ctx, c.Query("status"), page, pageSize)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OKPage(c, list, total, page, pageSize)
}
