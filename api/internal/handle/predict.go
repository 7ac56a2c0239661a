package handle

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type predictResponse struct {
	PredictedClassName string  `json:"predicted_class_name"`
	Confidence         float64 `json:"confidence"`
}

// requestDeadline lets callers shorten or stretch the oracle deadline per
// request; the services themselves impose none.
func requestDeadline(c *gin.Context, def time.Duration) time.Duration {
	if ts := c.GetHeader("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	if ts := c.Query("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	return def
}

func (h *Handle) Predict(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondValidation(c, "no image file provided")
		return
	}
	f, err := file.Open()
	if err != nil {
		respondValidation(c, "unreadable image file")
		return
	}
	defer f.Close()
	img, err := io.ReadAll(f)
	if err != nil || len(img) == 0 {
		respondValidation(c, "unreadable image file")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestDeadline(c, 60*time.Second))
	defer cancel()

	pred, err := h.classifier.Classify(ctx, img)
	if err != nil {
		respondError(c, err)
		return
	}

	// History persistence is best effort; a storage hiccup must not cost
	// the farmer their result.
	if h.predictions != nil {
		b64 := base64.StdEncoding.EncodeToString(img)
		if _, err := h.predictions.Insert(ctx, pred.Label, pred.Confidence, b64); err != nil {
			h.log.Errorw("prediction record insert failed", "label", pred.Label, "err", err)
		}
	}

	c.JSON(http.StatusOK, predictResponse{
		PredictedClassName: pred.Label,
		Confidence:         pred.Confidence,
	})
}
