package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// ReferentielHandler gestion des référentiels plats
// (grades, diplômes, modes de formation)
type ReferentielHandler struct {
	refSvc service.ReferentielService
}

// NewReferentielHandler crée le ReferentielHandler
func NewReferentielHandler(refSvc service.ReferentielService) *ReferentielHandler {
	return &ReferentielHandler{refSvc: refSvc}
}

func (h *ReferentielHandler) creer(c *gin.Context, fn func(context.Context, *dto.CreateReferentielRequest) (*dto.ReferentielResponse, error)) {
	var req dto.CreateReferentielRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := fn(c.Request.Context(), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.Created(c, result)
}

func (h *ReferentielHandler) modifier(c *gin.Context, fn func(context.Context, string, *dto.UpdateReferentielRequest) (*dto.ReferentielResponse, error)) {
	var req dto.UpdateReferentielRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := fn(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, result)
}

func (h *ReferentielHandler) supprimer(c *gin.Context, fn func(context.Context, string) error) {
	if err := fn(c.Request.Context(), c.Param("id")); err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ReferentielHandler) lister(c *gin.Context, fn func(context.Context) ([]dto.ReferentielResponse, error)) {
	list, err := fn(c.Request.Context())
	if err != nil {
		repondreErreur(c, err)
		return
	}

	response.OK(c, list)
}

// ── Grades ──

// CreateGrade crée un grade d'enseignant
// POST /api/v1/grades
func (h *ReferentielHandler) CreateGrade(c *gin.Context) { h.creer(c, h.refSvc.CreateGrade) }

// UpdateGrade met à jour un grade
// PATCH /api/v1/grades/:id
func (h *ReferentielHandler) UpdateGrade(c *gin.Context) { h.modifier(c, h.refSvc.UpdateGrade) }

// DeleteGrade supprime un grade
// DELETE /api/v1/grades/:id
func (h *ReferentielHandler) DeleteGrade(c *gin.Context) { h.supprimer(c, h.refSvc.DeleteGrade) }

// ListGrades liste les grades
// GET /api/v1/grades
func (h *ReferentielHandler) ListGrades(c *gin.Context) { h.lister(c, h.refSvc.ListGrades) }

// ── Diplômes ──

// CreateDiplome crée un diplôme
// POST /api/v1/diplomes
func (h *ReferentielHandler) CreateDiplome(c *gin.Context) { h.creer(c, h.refSvc.CreateDiplome) }

// UpdateDiplome met à jour un diplôme
// PATCH /api/v1/diplomes/:id
func (h *ReferentielHandler) UpdateDiplome(c *gin.Context) { h.modifier(c, h.refSvc.UpdateDiplome) }

// DeleteDiplome supprime un diplôme
// DELETE /api/v1/diplomes/:id
func (h *ReferentielHandler) DeleteDiplome(c *gin.Context) { h.supprimer(c, h.refSvc.DeleteDiplome) }

// ListDiplomes liste les diplômes
// GET /api/v1/diplomes
func (h *ReferentielHandler) ListDiplomes(c *gin.Context) { h.lister(c, h.refSvc.ListDiplomes) }

// ── Modes de formation ──

// CreateMode crée un mode de formation
// POST /api/v1/modes
func (h *ReferentielHandler) CreateMode(c *gin.Context) { h.creer(c, h.refSvc.CreateMode) }

// UpdateMode met à jour un mode de formation
// PATCH /api/v1/modes/:id
func (h *ReferentielHandler) UpdateMode(c *gin.Context) { h.modifier(c, h.refSvc.UpdateMode) }

// DeleteMode supprime un mode de formation
// DELETE /api/v1/modes/:id
func (h *ReferentielHandler) DeleteMode(c *gin.Context) { h.supprimer(c, h.refSvc.DeleteMode) }

// ListModes liste les modes de formation
// GET /api/v1/modes
func (h *ReferentielHandler) ListModes(c *gin.Context) { h.lister(c, h.refSvc.ListModes) }
