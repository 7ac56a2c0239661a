// Package classifier calls the external leaf-image inference service. The
// model itself lives behind a fixed tensor-in/probabilities-out HTTP
// contract; this side only resolves the winning label.
package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"crop-doctor/api/internal/apperr"
	"crop-doctor/api/internal/util"
)

type Client struct {
	baseURL string
	labels  map[int]string
	httpc   *http.Client
}

func New(baseURL string, labels map[int]string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		labels:  labels,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

type predictRequest struct {
	Content  string `json:"content"` // base64 image bytes
	MimeType string `json:"mimeType,omitempty"`
}

type predictResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

type Prediction struct {
	Label      string
	Confidence float64 // percent
}

// Classify posts the raw image and resolves argmax over the returned
// probability vector against the label table.
func (c *Client) Classify(ctx context.Context, img []byte) (Prediction, error) {
	if c.baseURL == "" {
		return Prediction{}, apperr.Configuration("classifier service not configured (CLASSIFIER_URL)")
	}
	if len(c.labels) == 0 {
		return Prediction{}, apperr.Configuration("class label table is empty (CLASS_INDICES_FILE)")
	}

	payload, _ := json.Marshal(predictRequest{
		Content:  base64.StdEncoding.EncodeToString(img),
		MimeType: util.SniffMimeHTTP(img),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/predict", bytes.NewReader(payload))
	if err != nil {
		return Prediction{}, apperr.Oracle("classifier request failed", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Prediction{}, apperr.Oracle("classifier request failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return Prediction{}, apperr.Oracle("classifier request failed",
			fmt.Errorf("classifier %d: %s", resp.StatusCode, string(b)))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Prediction{}, apperr.Oracle("classifier response unreadable", err)
	}
	if len(out.Probabilities) == 0 {
		return Prediction{}, apperr.Oracle("classifier response unreadable",
			fmt.Errorf("empty probability vector"))
	}

	best := 0
	for i, p := range out.Probabilities {
		if p > out.Probabilities[best] {
			best = i
		}
	}
	label, ok := c.labels[best]
	if !ok {
		return Prediction{}, apperr.Oracle("classifier response unreadable",
			fmt.Errorf("no label for class index %d", best))
	}
	return Prediction{Label: label, Confidence: out.Probabilities[best] * 100}, nil
}
