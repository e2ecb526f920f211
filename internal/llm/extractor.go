// Package llm - extractor.go pulls JSON values out of completions that are
// expected, but not guaranteed, to be pure JSON. The service may prepend
// prose or wrap the value in commentary; extraction degrades instead of
// failing so malformed output never loses the underlying text.
package llm

import (
	"encoding/json"
	"strings"
)

// ObjectSpan returns the outermost {...} span in text, scanning from the
// first opening brace to the last closing brace.
func ObjectSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ArraySpan returns the outermost [...] span in text
func ArraySpan(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// DecodeObject parses the embedded JSON object in a completion.
// When no object can be extracted, it returns {"raw": text} so the caller
// keeps the full completion and can tell the result is unparsed.
func DecodeObject(text string) map[string]any {
	cleaned := CleanJSONBlock(text)
	if span, ok := ObjectSpan(cleaned); ok {
		var out map[string]any
		if err := json.Unmarshal([]byte(span), &out); err == nil && out != nil {
			return out
		}
	}
	return map[string]any{"raw": text}
}

// DecodeObjectInto unmarshals the embedded JSON object into v and reports
// whether a well-formed object was found. v is untouched on failure.
func DecodeObjectInto(text string, v any) bool {
	cleaned := CleanJSONBlock(text)
	span, ok := ObjectSpan(cleaned)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(span), v) == nil
}

// DecodeStringArray parses the embedded JSON array of strings in a
// completion. Any failure yields an empty list, never nil and never an error.
func DecodeStringArray(text string) []string {
	cleaned := CleanJSONBlock(text)
	span, ok := ArraySpan(cleaned)
	if !ok {
		return []string{}
	}

	var decoded []string
	if err := json.Unmarshal([]byte(span), &decoded); err != nil {
		return []string{}
	}

	out := make([]string, 0, len(decoded))
	for _, s := range decoded {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
