package roadmap

import "strings"

// ExtractJSONObject returns the span from the first '{' to the last '}' in
// raw. It is a heuristic against free-text model output, not a parser: the
// span may still be invalid JSON, and callers treat any later decode error
// as "no usable reply".
func ExtractJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(raw, '}')
	if end < start {
		return "", false
	}
	return raw[start : end+1], true
}
