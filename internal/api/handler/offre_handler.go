package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// OffreHandler gestion des offres de formation et de leur cycle de vie
type OffreHandler struct {
	offreSvc service.OffreService
}

// NewOffreHandler crée l'OffreHandler
func NewOffreHandler(offreSvc service.OffreService) *OffreHandler {
	return &OffreHandler{offreSvc: offreSvc}
}

// Create crée une offre en brouillon
// POST /api/v1/offres
func (h *OffreHandler) Create(c *gin.Context) {
	var req dto.CreateOffreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.offreSvc.Create(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// GetByID lit une offre, désignations et durée dérivées comprises
// GET /api/v1/offres/:id
func (h *OffreHandler) GetByID(c *gin.Context) {
	result, err := h.offreSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Update met à jour les dates d'une offre
// PATCH /api/v1/offres/:id
func (h *OffreHandler) Update(c *gin.Context) {
	var req dto.UpdateOffreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.offreSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Delete supprime une offre
// DELETE /api/v1/offres/:id
func (h *OffreHandler) Delete(c *gin.Context) {
	if err := h.offreSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// List liste les offres, paginée, filtrable par établissement
// GET /api/v1/offres?id_etab_formation=...
func (h *OffreHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var (
		list  []dto.OffreResponse
		total int64
		err   error
	)
	if idEtab := c.Query("id_etab_formation"); idEtab != "" {
		list, total, err = h.offreSvc.ListByEtab(c.Request.Context(), idEtab, page, pageSize)
	} else {
		list, total, err = h.offreSvc.List(c.Request.Context(), page, pageSize)
	}
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OKPage(c, list, total, page, pageSize)
}

// Activer passe une offre de brouillon à active
// POST /api/v1/offres/:id/activer
func (h *OffreHandler) Activer(c *gin.Context) {
	result, err := h.offreSvc.Activer(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// Archiver passe une offre d'active à archivée (état terminal)
// POST /api/v1/offres/:id/archiver
func (h *OffreHandler) Archiver(c *gin.Context) {
	result, err := h.offreSvc.Archiver(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// ── Spécialités ouvertes dans un établissement ──

// OuvrirSpecialite ouvre une spécialité dans un établissement de formation
// POST /api/v1/specialites-ouvertes
func (h *OffreHandler) OuvrirSpecialite(c *gin.Context) {
	var req dto.CreateSpecialiteEtabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.offreSvc.OuvrirSpecialite(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// FermerSpecialite ferme une spécialité dans un établissement
// DELETE /api/v1/specialites-ouvertes?id_specialite=...&id_etab_formation=...
func (h *OffreHandler) FermerSpecialite(c *gin.Context) {
	idSpecialite := c.Query("id_specialite")
	idEtab := c.Query("id_etab_formation")
	if idSpecialite == "" || idEtab == "" {
		response.BadRequest(c, 10001, "id_specialite et id_etab_formation requis")
		return
	}

	if err := h.offreSvc.FermerSpecialite(c.Request.Context(), idSpecialite, idEtab); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// ListSpecialitesOuvertes liste les spécialités ouvertes d'un établissement
// GET /api/v1/specialites-ouvertes?id_etab_formation=...
func (h *OffreHandler) ListSpecialitesOuvertes(c *gin.Context) {
	list, err := h.offreSvc.ListSpecialitesOuvertes(c.Request.Context(), c.Query("id_etab_formation"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, list)
}
