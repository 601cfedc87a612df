package analyzer

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/doclens/doclens/document"
)

// ErrMalformedResponse indicates the reasoner's reply held no parsable verdicts.
var ErrMalformedResponse = errors.New("analyzer: malformed analysis response")

type responseEnvelope struct {
	Analyses []document.Analysis `json:"analyses"`
}

// ParseResponse extracts analysis verdicts from a reasoner reply. Models wrap
// JSON in code fences or surrounding prose; both are tolerated. Relevance is
// clamped to the 0-100 range.
func ParseResponse(raw string) ([]document.Analysis, error) {
	payload := extractJSON(raw)
	if payload == "" {
		return nil, ErrMalformedResponse
	}
	var envelope responseEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, errors.Join(ErrMalformedResponse, err)
	}
	for i := range envelope.Analyses {
		if envelope.Analyses[i].Relevance < 0 {
			envelope.Analyses[i].Relevance = 0
		}
		if envelope.Analyses[i].Relevance > 100 {
			envelope.Analyses[i].Relevance = 100
		}
	}
	return envelope.Analyses, nil
}

// extractJSON strips code fences and surrounding prose, returning the
// outermost JSON object.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx >= 0 {
			raw = raw[:idx]
		}
	}
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
