package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// EtablissementHandler gestion des trois niveaux d'établissements
type EtablissementHandler struct {
	etabSvc   service.EtablissementService
	compteSvc service.CompteService
}

// NewEtablissementHandler crée l'EtablissementHandler
func NewEtablissementHandler(etabSvc service.EtablissementService, compteSvc service.CompteService) *EtablissementHandler {
	return &EtablissementHandler{etabSvc: etabSvc, compteSvc: compteSvc}
}

// ── Niveau national ──

// CreateNationale crée un établissement national (sans parent)
// POST /api/v1/etablissements/nationales
func (h *EtablissementHandler) CreateNationale(c *gin.Context) {
	var req dto.CreateEtablissementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.etabSvc.CreateNationale(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// GetNationale lit un établissement national
// GET /api/v1/etablissements/nationales/:id
func (h *EtablissementHandler) GetNationale(c *gin.Context) {
	result, err := h.etabSvc.GetNationale(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// ListNationales liste les établissements nationaux
// GET /api/v1/etablissements/nationales
func (h *EtablissementHandler) ListNationales(c *gin.Context) {
	list, err := h.etabSvc.ListNationales(c.Request.Context())
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, list)
}

// ── Niveau régional ──

// CreateRegionale crée un établissement régional, parent national exigé
// POST /api/v1/etablissements/regionales
func (h *EtablissementHandler) CreateRegionale(c *gin.Context) {
	var req dto.CreateEtablissementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.etabSvc.CreateRegionale(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// GetRegionale lit un établissement régional
// GET /api/v1/etablissements/regionales/:id
func (h *EtablissementHandler) GetRegionale(c *gin.Context) {
	result, err := h.etabSvc.GetRegionale(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// ListRegionales liste les régionaux, filtrables par parent national
// GET /api/v1/etablissements/regionales?id_nationale=...
func (h *EtablissementHandler) ListRegionales(c *gin.Context) {
	list, err := h.etabSvc.ListRegionales(c.Request.Context(), c.Query("id_nationale"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, list)
}

// DeleteRegionale supprime un régional ; la cascade exige confirme=true
// dès qu'au moins une ligne dépendante serait emportée
// DELETE /api/v1/etablissements/regionales/:id?confirme=true
func (h *EtablissementHandler) DeleteRegionale(c *gin.Context) {
	confirme := c.Query("confirme") == "true"

	preview, err := h.etabSvc.DeleteRegionale(c.Request.Context(), c.Param("id"), confirme)
	repondreSuppression(c, preview, err)
}

// ── Niveau formation ──

// CreateFormation crée un établissement de formation, parent régional exigé
// POST /api/v1/etablissements/formations
func (h *EtablissementHandler) CreateFormation(c *gin.Context) {
	var req dto.CreateEtablissementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.etabSvc.CreateFormation(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

// GetFormation lit un établissement de formation
// GET /api/v1/etablissements/formations/:id
func (h *EtablissementHandler) GetFormation(c *gin.Context) {
	result, err := h.etabSvc.GetFormation(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

// ListFormations liste les établissements de formation, paginée
// GET /api/v1/etablissements/formations
func (h *EtablissementHandler) ListFormations(c *gin.Context) {
	page, pageSize := parsePagination(c)

	list, total, err := h.etabSvc.ListFormations(c.Request.Context(), page, pageSize)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OKPage(c, list, total, page, pageSize)
}

// DeleteFormation supprime un établissement de formation
// DELETE /api/v1/etablissements/formations/:id
func (h *EtablissementHandler) DeleteFormation(c *gin.Context) {
	if err := h.etabSvc.DeleteFormation(c.Request.Context(), c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// ── Liaison compte↔établissement ──

func (h *EtablissementHandler) lierCompte(c *gin.Context, binder service.ProfilBinder) {
	var req dto.LinkProfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	if err := h.compteSvc.LierProfil(c.Request.Context(), binder, c.Param("id"), req.IDCompte); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *EtablissementHandler) delierCompte(c *gin.Context, binder service.ProfilBinder) {
	if err := h.compteSvc.DelierProfil(c.Request.Context(), binder, c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

// LierCompteNationale lie un compte EtablissementNationale au profil
// POST /api/v1/etablissements/nationales/:id/compte
func (h *EtablissementHandler) LierCompteNationale(c *gin.Context) {
	h.lierCompte(c, h.etabSvc.BinderNationale())
}

// DelierCompteNationale détache le compte du profil national
// DELETE /api/v1/etablissements/nationales/:id/compte
func (h *EtablissementHandler) DelierCompteNationale(c *gin.Context) {
	h.delierCompte(c, h.etabSvc.BinderNationale())
}

// LierCompteRegionale lie un compte EtablissementRegionale au profil
// POST /api/v1/etablissements/regionales/:id/compte
func (h *EtablissementHandler) LierCompteRegionale(c *gin.Context) {
	h.lierCompte(c, h.etabSvc.BinderRegionale())
}

// DelierCompteRegionale détache le compte du profil régional
// DELETE /api/v1/etablissements/regionales/:id/compte
func (h *EtablissementHandler) DelierCompteRegionale(c *gin.Context) {
	h.delierCompte(c, h.etabSvc.BinderRegionale())
}

// LierCompteFormation lie un compte EtablissementFormation au profil
// POST /api/v1/etablissements/formations/:id/compte
func (h *EtablissementHandler) LierCompteFormation(c *gin.Context) {
	h.lierCompte(c, h.etabSvc.BinderFormation())
}

// DelierCompteFormation détache le compte du profil de formation
// DELETE /api/v1/etablissements/formations/:id/compte
func (h *EtablissementHandler) DelierCompteFormation(c *gin.Context) {
	h.delierCompte(c, h.etabSvc.BinderFormation())
}
