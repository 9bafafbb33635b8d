package itinerary

import (
	"strings"
)

// cleanJSONResponse strips markdown fencing and surrounding prose from a
// model response and isolates the JSON object payload. Best-effort heuristic,
// not a parser: on total failure to locate an object it returns the trimmed
// input unchanged and lets the caller's json.Unmarshal surface the error.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	// Remove markdown code block markers. The opening fence may carry a
	// language tag in any casing ("```json", "```JSON", ...).
	if strings.HasPrefix(response, "```") {
		rest := response[len("```"):]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 && isFenceTag(rest[:nl]) {
			rest = rest[nl+1:]
		}
		response = rest
	}
	if strings.HasSuffix(strings.TrimSpace(response), "```") {
		trimmed := strings.TrimSpace(response)
		response = trimmed[:len(trimmed)-len("```")]
	}

	response = strings.TrimSpace(response)

	// Extract JSON from a response that might contain explanatory text:
	// slice from the first { to the last }.
	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response // No JSON found, return as is
	}
	lastBrace := strings.LastIndex(response, "}")
	if lastBrace == -1 || lastBrace <= firstBrace {
		return response // No valid JSON structure found
	}

	return strings.TrimSpace(response[firstBrace : lastBrace+1])
}

// isFenceTag reports whether s looks like a code-fence language tag rather
// than payload content (e.g. "json" in "```json").
func isFenceTag(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return true
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
