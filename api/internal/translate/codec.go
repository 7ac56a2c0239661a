package translate

import (
	"encoding/json"
	"errors"
	"fmt"

	"crop-doctor/api/internal/lang"
	"crop-doctor/api/internal/util"
)

// MaxBatchSize bounds one translation request. Enforced, not advisory.
const MaxBatchSize = 200

// ProductName must survive translation verbatim.
const ProductName = "AI Crop Doctor"

// EncodeRequest renders the instruction for translating an ordered list of
// UI strings. The source strings ride along as a JSON array so ordering is
// unambiguous on both sides.
func EncodeRequest(texts []string, code lang.Code) (string, error) {
	payload, err := json.Marshal(texts)
	if err != nil {
		return "", fmt.Errorf("encode source strings: %w", err)
	}
	return fmt.Sprintf(`Translate the following UI strings into %s.
Rules:
- Return ONLY a valid JSON array of strings (no markdown, no explanation).
- Keep ordering exactly the same.
- Keep numbers, URLs, and units unchanged.
- Keep product/app name %q as-is.

Strings to translate (JSON array):
%s
`, lang.DisplayName(code), ProductName, payload), nil
}

// DecodeResponse parses the oracle reply against the source batch. A fenced
// reply is unwrapped first. A reply that is not a JSON array of strings is
// an error. A length mismatch is repaired by appending the source strings
// and truncating to the source length; the tail past what the model
// returned stays untranslated. That repair is deliberate policy.
func DecodeResponse(raw string, source []string) ([]string, error) {
	cleaned := util.StripCodeFences(raw)

	var out []string
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("translation response is not a JSON array of strings: %w", err)
	}
	if out == nil {
		return nil, errors.New("translation response is not a JSON array of strings")
	}
	if len(out) != len(source) {
		out = append(out, source...)[:len(source)]
	}
	return out, nil
}
