// Package handle exposes the HTTP surface: JSON endpoints for prediction,
// diagnosis, translation, history and emergency support, plus the rendered
// pages.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"crop-doctor/api/internal/apperr"
	"crop-doctor/api/internal/blob"
	"crop-doctor/api/internal/classifier"
	"crop-doctor/api/internal/diagnose"
	"crop-doctor/api/internal/store"
	"crop-doctor/api/internal/translate"
)

type Handle struct {
	log         *zap.SugaredLogger
	diagnosis   *diagnose.Service
	translation *translate.Service
	classifier  *classifier.Client

	// Optional collaborators; nil when the feature is not configured.
	predictions *store.PredictionRepo
	emergencies *store.EmergencyRepo
	blobs       blob.Store
}

func New(
	log *zap.SugaredLogger,
	diagnosis *diagnose.Service,
	translation *translate.Service,
	cls *classifier.Client,
	predictions *store.PredictionRepo,
	emergencies *store.EmergencyRepo,
	blobs blob.Store,
) *Handle {
	return &Handle{
		log:         log,
		diagnosis:   diagnosis,
		translation: translation,
		classifier:  cls,
		predictions: predictions,
		emergencies: emergencies,
		blobs:       blobs,
	}
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeOracle:
		return http.StatusBadGateway
	case apperr.CodeConfiguration:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(statusFor(ae.Code), errorEnvelope{Error: apiError{
			Message: ae.Error(),
			Code:    string(ae.Code),
		}})
		return
	}
	c.JSON(http.StatusInternalServerError, errorEnvelope{Error: apiError{
		Message: err.Error(),
		Code:    "internal_error",
	}})
}

func respondValidation(c *gin.Context, msg string) {
	respondError(c, apperr.Validationf("%s", msg))
}
