package handle

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crop-doctor/api/internal/diagnose"
)

type diagnosisRequest struct {
	DiseaseName string               `json:"disease_name"`
	UserContext diagnose.UserContext `json:"user_context"`
	Lang        string               `json:"lang"`
}

type diagnosisResponse struct {
	Report string `json:"report"`
}

func (h *Handle) GetDiagnosis(c *gin.Context) {
	var req diagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "bad json: "+err.Error())
		return
	}

	// Language may arrive top-level or inside the questionnaire.
	lang := req.Lang
	if lang == "" {
		lang = req.UserContext.Lang
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestDeadline(c, 180*time.Second))
	defer cancel()

	report, err := h.diagnosis.Report(ctx, req.DiseaseName, req.UserContext, lang)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, diagnosisResponse{Report: report})
}
