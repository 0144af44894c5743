package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// HierarchieHandler gestion de la hiérarchie académique
// branche → spécialité → module
type HierarchieHandler struct {
	hierarchieSvc service.HierarchieService
}

// NewHierarchieHandler crée le HierarchieHandler
func NewHierarchieHandler(hierarchieSvc service.HierarchieService) *HierarchieHandler {
	return &HierarchieHandler{hierarchieSvc: hierarchieSvc}
}

type creerNoeud func(c *gin.Context, req *dto.CreateNodeRequest) (*dto.NodeResponse, error)
type modifierNoeud func(c *gin.Context, id string, req *dto.UpdateNodeRequest) (*dto.NodeResponse, error)

func (h *HierarchieHandler) creer(c *gin.Context, fn creerNoeud) {
	var req dto.CreateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := fn(c, &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

func (h *HierarchieHandler) modifier(c *gin.Context, fn modifierNoeud) {
	var req dto.UpdateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := fn(c, c.Param("id"), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// ── Branches ──

// CreateBranche crée une branche sous un établissement régional
// POST /api/v1/branches
func (h *HierarchieHandler) CreateBranche(c *gin.Context) {
	h.creer(c, func(c *gin.Context, req *dto.CreateNodeRequest) (*dto.NodeResponse, error) {
		return h.hierarchieSvc.CreateBranche(c.Request.Context(), req)
	})
}

// UpdateBranche met à jour partiellement une branche
// PATCH /api/v1/branches/:id
func (h *HierarchieHandler) UpdateBranche(c *gin.Context) {
	h.modifier(c, func(c *gin.Context, id string, req *dto.UpdateNodeRequest) (*dto.NodeResponse, error) {
		return h.hierarchieSvc.UpdateBranche(c.Request.Context(), id, req)
	})
}

// DeleteBranche supprime une branche, cascade confirmée par confirme=true
// DELETE /api/v1/branches/:id?confirme=true
func (h *HierarchieHandler) DeleteBranche(c *gin.Context) {
	preview, err := h.hierarchieSvc.DeleteBranche(c.Request.Context(), c.Param("id"), c.Query("confirme") == "true")
	repondreSuppression(c, preview, err)
}

// ListBranches liste les branches d'un établissement régional
// GET /api/v1/branches?id_etab_regionale=...
func (h *HierarchieHandler) ListBranches(c *gin.Context) {
	list, err := h.hierarchieSvc.ListBranches(c.Request.Context(), c.Query("id_etab_regionale"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, list)
}

// ── Spécialités ──

// CreateSpecialite crée une spécialité sous une branche
// POST /api/v1/specialites
func (h *HierarchieHandler) CreateSpecialite(c *gin.Context) {
	h.creer(c, func(c *gin.Context, req *dto.CreateNodeRequest) (*dto.NodeResponse, error) {
		return h.hierarchieSvc.CreateSpecialite(c.Request.Context(), req)
	})
}

// UpdateSpecialite met à jour partiellement une spécialité
// PATCH /api/v1/specialites/:id
func (h *HierarchieHandler) UpdateSpecialite(c *gin.Context) {
	h.modifier(c, func(c *gin.Context, id string, req *dto.UpdateNodeRequest) (*dto.NodeResponse, error) {
		return h.hierarchieSvc.UpdateSpecialite(c.Request.Context(), id, req)
	})
}

// DeleteSpecialite supprime une spécialité, cascade confirmée par confirme=true
// DELETE /api/v1/specialites/:id?confirme=true
func (h *HierarchieHandler) DeleteSpecialite(c *gin.Context) {
	preview, err := h.hierarchieSvc.DeleteSpecialite(c.Request.Context(), c.Param("id"), c.Query("confirme") == "true")
	repondreSuppression(c, preview, err)
}

// ListSpecialites liste les spécialités d'une branche
// GET /api/v1/specialites?id_branche=...
func (h *HierarchieHandler) ListSpecialites(c *gin.Context) {
	list, err := h.hierarchieSvc.ListSpecialites(c.Request.Context(), c.Query("id_branche"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, list)
}

// ── Modules ──

// CreateModule crée un module sous une spécialité
// POST /api/v1/modules
func (h *HierarchieHandler) CreateModule(c *gin.Context) {
	h.creer(c, func(c *gin.Context, req *dto.CreateNodeRequest) (*dto.NodeResponse, error) {
		return h.hierarchieSvc.CreateModule(c.Request.Context(), req)
	})
}

// UpdateModule met à jour partiellement un module
// PATCH /api/v1/modules/:id
func (h *HierarchieHandler) UpdateModule(c *gin.Context) {
	h.modifier(c, func(c *gin.Context, id string, req *dto.UpdateNodeRequest) (*dto.NodeResponse, error) {
		return h.hierarchieSvc.UpdateModule(c.Request.Context(), id, req)
	})
}

// DeleteModule supprime un module, cascade confirmée par confirme=true
// DELETE /api/v1/modules/:id?confirme=true
func (h *HierarchieHandler) DeleteModule(c *gin.Context) {
	preview, err := h.hierarchieSvc.DeleteModule(c.Request.Context(), c.Param("id"), c.Query("confirme") == "true")
	repondreSuppression(c, preview, err)
}

// ListModules liste les modules d'une spécialité
// GET /api/v1/modules?id_specialite=...
func (h *HierarchieHandler) ListModules(c *gin.Context) {
	list, err := h.hierarchieSvc.ListModules(c.Request.Context(), c.Query("id_specialite"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, list)
}
