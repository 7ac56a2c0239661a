package handle

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crop-doctor/api/internal/apperr"
)

const historyLimit = 50

type historyEntry struct {
	Timestamp          string  `json:"timestamp"`
	PredictedClassName string  `json:"predicted_class_name"`
	Confidence         float64 `json:"confidence"`
	ImageBase64        string  `json:"image_base64,omitempty"`
}

type historyResponse struct {
	History []historyEntry `json:"history"`
}

func (h *Handle) History(c *gin.Context) {
	if h.predictions == nil {
		respondError(c, apperr.Configuration("database not configured (DATABASE_URL)"))
		return
	}

	rows, err := h.predictions.ListRecent(c.Request.Context(), historyLimit)
	if err != nil {
		h.log.Errorw("history fetch failed", "err", err)
		respondError(c, err)
		return
	}

	out := make([]historyEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, historyEntry{
			Timestamp:          r.CreatedAt.UTC().Format(time.RFC3339),
			PredictedClassName: r.Label,
			Confidence:         r.Confidence,
			ImageBase64:        r.ImageB64,
		})
	}
	c.JSON(http.StatusOK, historyResponse{History: out})
}
