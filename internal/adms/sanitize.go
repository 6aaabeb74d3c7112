package adms

import "strings"

// Sanitize drops invalid UTF-8 and NUL bytes, neither of which Postgres TEXT
// or JSONB columns accept.
func Sanitize(s string) string {
	return strings.ReplaceAll(strings.ToValidUTF8(s, ""), "\x00", "")
}

// scrub applies Sanitize to every string and key of a decoded JSON value.
func scrub(v any) any {
	switch t := v.(type) {
	case string:
		return Sanitize(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[Sanitize(k)] = scrub(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = scrub(val)
		}
		return out
	default:
		return v
	}
}
