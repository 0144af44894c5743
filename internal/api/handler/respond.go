package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/apperr"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// Codes applicatifs par nature d'erreur métier. Le statut HTTP suit la
// nature ; le code affine pour les clients.
const (
	codeValidation   = 40001
	codeIntrouvable  = 40401
	codeConflit      = 40901
	codeTransition   = 40902
	codeConfirmation = 40903
)

// repondreErreur traduit une erreur métier en réponse HTTP.
// Toute erreur sans nature connue est rendue en 500 sans détail.
func repondreErreur(c *gin.Context, err error) {
	message := err.Error()
	var e *apperr.Error
	if errors.As(err, &e) {
		message = e.Message
	}

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		response.BadRequest(c, codeValidation, message)
	case apperr.KindIntrouvable:
		response.NotFound(c, codeIntrouvable, message)
	case apperr.KindConflit:
		response.Conflict(c, codeConflit, message)
	case apperr.KindTransition:
		response.Conflict(c, codeTransition, message)
	default:
		response.InternalError(c)
	}
}

// repondreSuppression rend le résultat d'une suppression en cascade.
// Quand la confirmation manque, l'aperçu des dépendants part en 409 pour
// que le client puisse la redemander en connaissance de cause.
func repondreSuppression(c *gin.Context, preview *dto.DeleteNodePreview, err error) {
	if err != nil {
		if errors.Is(err, service.ErrSuppressionNonConfirmee) {
			c.JSON(http.StatusConflict, response.Response{
				Code:    codeConfirmation,
				Message: "suppression en cascade non confirmée",
				Data:    preview,
			})
			return
		}
		repondreErreur(c, err)
		return
	}

	response.OK(c, preview)
}
