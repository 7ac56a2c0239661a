package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"crop-doctor/api/internal/apperr"
)

var testLabels = map[int]string{
	0: "Potato___Early_blight",
	1: "Potato___Late_blight",
	2: "Potato___healthy",
}

func TestClassifyResolvesArgmax(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/predict" {
			t.Errorf("path: want=/v1/predict got=%s", r.URL.Path)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body: %v", err)
		}
		if s, ok := req["content"].(string); !ok || s == "" {
			t.Error("request missing image content")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"probabilities": []float64{0.05, 0.92, 0.03},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, testLabels)
	pred, err := c.Classify(context.Background(), []byte{0xFF, 0xD8, 0x01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.Label != "Potato___Late_blight" {
		t.Fatalf("label: want=Potato___Late_blight got=%s", pred.Label)
	}
	if pred.Confidence < 91.9 || pred.Confidence > 92.1 {
		t.Fatalf("confidence: want~92 got=%f", pred.Confidence)
	}
}

func TestClassifyUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, testLabels)
	_, err := c.Classify(context.Background(), []byte{0x01})
	if apperr.CodeOf(err) != apperr.CodeOracle {
		t.Fatalf("error code: want=%q got=%q (err=%v)", apperr.CodeOracle, apperr.CodeOf(err), err)
	}
}

func TestClassifyEmptyProbabilities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"probabilities": []float64{}})
	}))
	defer srv.Close()

	c := New(srv.URL, testLabels)
	if _, err := c.Classify(context.Background(), []byte{0x01}); apperr.CodeOf(err) != apperr.CodeOracle {
		t.Fatalf("error code: want=%q got=%q", apperr.CodeOracle, apperr.CodeOf(err))
	}
}

func TestClassifyUnconfigured(t *testing.T) {
	c := New("", testLabels)
	_, err := c.Classify(context.Background(), []byte{0x01})
	if apperr.CodeOf(err) != apperr.CodeConfiguration {
		t.Fatalf("error code: want=%q got=%q", apperr.CodeConfiguration, apperr.CodeOf(err))
	}
}

func TestLoadLabelsInvertsIndices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "class_indices.json")
	data := `{"Potato___Early_blight": 0, "Potato___Late_blight": 1, "Potato___healthy": 2}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	labels, err := LoadLabels(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 3 {
		t.Fatalf("label count: want=3 got=%d", len(labels))
	}
	if labels[1] != "Potato___Late_blight" {
		t.Fatalf("labels[1]: want=Potato___Late_blight got=%s", labels[1])
	}
}

func TestLoadLabelsMissingFile(t *testing.T) {
	if _, err := LoadLabels(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("want error for missing file, got none")
	}
}
