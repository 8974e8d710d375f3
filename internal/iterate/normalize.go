package iterate

import (
	"encoding/json"
	"strings"
)

const (
	// shown when no JSON object could be recovered from the response
	unparsedExplanation = "The AI response couldn't be parsed as JSON. Showing raw response instead."

	// shown when a parsed object was missing one or both required fields
	incompleteExplanation = "The AI returned an incomplete response."

	// stands in for modified code when the response itself was empty
	emptyResponsePlaceholder = "// The AI returned an empty response."
)

// ParseIterationResult converts unreliable generated text into an
// IterationResult. It never fails: direct JSON parsing is tried first, then
// a greedy brace-delimited span, then the raw text is passed through with a
// fixed diagnostic. Both fields of the returned value are always populated.
func ParseIterationResult(raw string) IterationResult {
	// model output commonly wraps the object in markdown fences even when
	// told not to, so strip those before the direct parse
	if result, ok := tryParseObject(stripFences(raw)); ok {
		return ensureFields(result, raw)
	}

	// fall back to the greedy brace span (first "{" to last "}")
	if span, ok := braceSpan(raw); ok {
		if result, ok := tryParseObject(span); ok {
			return ensureFields(result, raw)
		}
	}

	// no parseable JSON anywhere - degrade to raw-text passthrough
	return ensureFields(IterationResult{
		ModifiedCode: raw,
		Explanation:  unparsedExplanation,
	}, raw)
}

// attempts to parse the text as a JSON object with the expected fields
func tryParseObject(text string) (IterationResult, bool) {
	text = strings.TrimSpace(text)

	// a bare "null", number, or quoted string is valid JSON but not an object
	if !strings.HasPrefix(text, "{") {
		return IterationResult{}, false
	}

	var result IterationResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return IterationResult{}, false
	}

	return result, true
}

// returns the substring from the first "{" to the last "}" inclusive
func braceSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end <= start {
		return "", false
	}

	return text[start : end+1], true
}

// removes markdown code fences and a BOM from raw model output
func stripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "\uFEFF")

	if strings.HasPrefix(cleaned, "```") {
		// drop the opening fence line including any language identifier
		if idx := strings.Index(cleaned, "\n"); idx != -1 {
			cleaned = cleaned[idx+1:]
		} else {
			cleaned = strings.TrimPrefix(cleaned, "```json")
			cleaned = strings.TrimPrefix(cleaned, "```")
		}
	}

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, "```")

	return strings.TrimSpace(cleaned)
}

// enforces the postcondition that both fields are populated: a missing
// modifiedCode is replaced by the raw text (or a placeholder when the raw
// text is empty), a missing explanation by a fixed incomplete-response note
func ensureFields(result IterationResult, raw string) IterationResult {
	if result.ModifiedCode == "" {
		if raw != "" {
			result.ModifiedCode = raw
		} else {
			result.ModifiedCode = emptyResponsePlaceholder
		}
	}

	if result.Explanation == "" {
		result.Explanation = incompleteExplanation
	}

	return result
}
