package handle

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type translateRequest struct {
	Texts []string `json:"texts"`
	Lang  string   `json:"lang"`
}

type translateResponse struct {
	Translations []string `json:"translations"`
}

func (h *Handle) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "texts must be a list of strings")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestDeadline(c, 180*time.Second))
	defer cancel()

	out, err := h.translation.Translate(ctx, req.Texts, req.Lang)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, translateResponse{Translations: out})
}
