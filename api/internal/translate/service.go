// Package translate batches UI strings through the generative backend while
// guaranteeing the reply has exactly as many entries as the request.
package translate

import (
	"context"

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

// Translate returns a slice the same length as texts, in the same order.
// The base language short-circuits to the input without an oracle call.
func (s *Service) Translate(ctx context.Context, texts []string, rawLang string) ([]string, error) {
	if s.engine == nil || !s.engine.Configured() {
		return nil, apperr.Configuration("Gemini API key not configured on the backend (GEMINI_API_KEY)")
	}
	if len(texts) > MaxBatchSize {
		return nil, apperr.Validationf("too many strings to translate in one request (max %d)", MaxBatchSize)
	}

	code := lang.Normalize(rawLang)
	if code == lang.Base {
		return texts, nil
	}

	prompt, err := EncodeRequest(texts, code)
	if err != nil {
		return nil, apperr.Validationf("invalid translation batch: %v", err)
	}
	raw, err := s.engine.Generate(ctx, prompt)
	if err != nil {
		s.log.Errorw("translation generation failed",
			"engine", s.engine.Name(), "model", s.engine.GetModel(), "lang", code, "err", err)
		return nil, apperr.Oracle("translation failed", err)
	}
	out, err := DecodeResponse(raw, texts)
	if err != nil {
		s.log.Errorw("translation decode failed", "lang", code, "err", err)
		return nil, apperr.Oracle("translation failed", err)
	}
	return out, nil
}
