package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/service"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler exports bureautiques d'une offre
// (liste d'émargement Excel, calendrier iCalendar)
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crée l'ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Inscriptions télécharge la liste d'émargement d'une offre au format xlsx
// GET /api/v1/offres/:id/export/inscriptions
func (h *ExportHandler) Inscriptions(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportInscriptions(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// Calendrier télécharge le calendrier d'une offre au format iCalendar
// GET /api/v1/offres/:id/export/calendrier
func (h *ExportHandler) Calendrier(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportCalendrier(c.Request.Context(), c.Param("id"))
	if err != nil {
		repondreErreur(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentTypeICS, buf.Bytes())
}
