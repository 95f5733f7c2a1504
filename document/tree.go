package document

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Get walks tree along keys. It is the map-level counterpart of Document.Lookup
// and does not copy the result.
func Get(tree map[string]any, keys ...string) (any, bool) {
	return lookup(tree, keys)
}

// Clone returns a deep copy of v. Maps and slices are copied, scalars returned as is.
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Clone(item)
		}
		return out
	default:
		return v
	}
}

// CloneMap returns a deep copy of m.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}

// Merge returns a new tree with overlay applied on top of base.
// Mappings merge key by key; any other value in overlay replaces the one in base.
// Neither argument is modified.
func Merge(base, overlay map[string]any) map[string]any {
	out := CloneMap(base)
	if out == nil {
		out = make(map[string]any, len(overlay))
	}
	for k, v := range overlay {
		if om, ok := v.(map[string]any); ok {
			if bm, ok := out[k].(map[string]any); ok {
				out[k] = Merge(bm, om)
				continue
			}
		}
		out[k] = Clone(v)
	}
	return out
}

// normalize converts parser output to the document leaf types.
func normalize(v any) any {
	switch val := v.(type) {
	case nil, string, bool, int64, float64:
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint:
		return normalizeUint(uint64(val))
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint64:
		return normalizeUint(val)
	case float32:
		return float64(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if !strings.ContainsAny(val.String(), ".eE") {
			// Integer out of int64 range.
			return val.String()
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// normalizeUint keeps integers above math.MaxInt64 as their decimal string,
// the same result an INI or CSV file gives for such a value.
func normalizeUint(u uint64) any {
	if u > math.MaxInt64 {
		return strconv.FormatUint(u, 10)
	}
	return int64(u)
}

// normalizeRoot normalizes a parsed root. A nil root becomes an empty map.
func normalizeRoot(root map[string]any) map[string]any {
	if root == nil {
		return map[string]any{}
	}
	return normalize(root).(map[string]any)
}

// typedScalar converts an untyped scalar string (INI and CSV values) to
// a bool, int64 or float64 when it looks like one.
func typedScalar(s string) any {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "true", "on", "yes":
		return true
	case "false", "off", "no", "none":
		return false
	case "null":
		return nil
	}
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return i
	}
	if strings.ContainsAny(t, ".eE") {
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
	}
	return s
}
