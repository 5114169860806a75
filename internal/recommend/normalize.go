package recommend

import (
	"encoding/json"
	"strings"
)

// Normalize reshapes the model's raw text into the response contract. The
// model is instructed to answer with bare JSON but routinely wraps it in
// markdown fences or surrounding prose; both are stripped before parsing.
// When the remainder still is not valid JSON the fixed fallback result is
// substituted, so the returned value is always valid JSON.
//
// A parse success is passed through verbatim: a well-formed object with the
// wrong fields is not caught here.
func Normalize(raw string) (data json.RawMessage, fallbackUsed bool) {
	text := extractJSON(raw)
	if json.Valid([]byte(text)) {
		return json.RawMessage(text), false
	}

	fallback, err := json.Marshal(fallbackResult)
	if err != nil {
		// fallbackResult is a fixed value; marshaling it cannot fail.
		panic("marshal fallback result: " + err.Error())
	}
	return fallback, true
}

// extractJSON strips markdown code fences (with an optional language tag) and
// any prose around the outermost JSON object.
func extractJSON(raw string) string {
	text := strings.TrimSpace(raw)

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	return text
}
