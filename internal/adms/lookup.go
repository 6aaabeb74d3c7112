package adms

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FirstPresent returns the first key whose value is non-null and renders to a
// non-empty string. "0" and 0 are present values.
func FirstPresent(body map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		v, ok := body[key]
		if !ok || v == nil {
			continue
		}
		s := strings.TrimSpace(stringify(v))
		if s == "" {
			continue
		}
		return s, true
	}
	return "", false
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}
