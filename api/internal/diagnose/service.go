// Package diagnose turns a classifier label plus the user questionnaire
// into a multilingual agronomist report via the generative backend.
package diagnose

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"crop-doctor/api/internal/apperr"
	"crop-doctor/api/internal/lang"
	"crop-doctor/api/internal/llm"
)

type Service struct {
	engine llm.Engine
	log    *zap.SugaredLogger
}

func NewService(engine llm.Engine, log *zap.SugaredLogger) *Service {
	return &Service{engine: engine, log: log}
}

// Report builds the diagnosis prompt and runs one oracle call. The raw
// completion is returned verbatim as the report text.
func (s *Service) Report(ctx context.Context, diseaseName string, uc UserContext, rawLang string) (string, error) {
	if s.engine == nil || !s.engine.Configured() {
		return "", apperr.Configuration("Gemini API key not configured on the backend (GEMINI_API_KEY)")
	}
	if strings.TrimSpace(diseaseName) == "" {
		return "", apperr.Validationf("disease name is required for diagnosis")
	}

	code := lang.Normalize(rawLang)
	prompt := BuildPrompt(diseaseName, uc, code)

	out, err := s.engine.Generate(ctx, prompt)
	if err != nil {
		s.log.Errorw("diagnosis generation failed",
			"engine", s.engine.Name(), "model", s.engine.GetModel(), "err", err)
		return "", apperr.Oracle("diagnosis generation failed", err)
	}
	return out, nil
}
