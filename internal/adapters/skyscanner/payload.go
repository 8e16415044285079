package skyscanner

import (
	"strconv"
	"strings"
)

// lookupAny: safe nested lookup with dot paths on maps. A numeric segment
// indexes into a JSON array.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		switch obj := cur.(type) {
		case map[string]any:
			v, ok := obj[part]
			if !ok {
				return nil
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(obj) {
				return nil
			}
			cur = obj[i]
		default:
			return nil
		}
	}
	return cur
}

// toFloat accepts JSON numbers and numeric strings ("412.50", "412,50").
// Zero and non-numeric values report ok=false.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, t != 0
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", "."))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f == 0 {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
