package provider

import (
	"encoding/json"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ExtractNumber normalizes a numeric value from the shapes the forms have
// stored it in over time.
//
// Older dashboards saved prices as strings ("$1,200"), newer ones as numbers,
// and the pricing editor wraps amounts in objects like {"amount": 45}. This
// handles all three.
//
// Returns ok=false if no finite number can be extracted.
func ExtractNumber(val any) (float64, bool) {
	f, ok := extractNumber(val)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func extractNumber(val any) (float64, bool) {
	if val == nil {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		s := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(v))
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
		return 0, false
	case map[string]any:
		for _, key := range []string{"amount", "value", "price", "total"} {
			if inner, exists := v[key]; exists && inner != nil {
				return ExtractNumber(inner)
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// leadingInt matches the first integer in strings like "25 miles" or "~30 min".
var leadingInt = regexp.MustCompile(`\d+`)

// ExtractLeadingInt returns a number as-is, or the first integer found in a
// string.
func ExtractLeadingInt(val any) (float64, bool) {
	if s, ok := val.(string); ok {
		m := leadingInt.FindString(s)
		if m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(m)
		return float64(n), err == nil
	}
	return ExtractNumber(val)
}

func toString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

// toName accepts a candidate display name. Forms write "N/A" into fields the
// provider skipped, so that literal never counts as a name.
func toName(val any) (string, bool) {
	s, ok := val.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") {
		return "", false
	}
	return s, true
}

func toNumber(val any) (float64, bool) {
	return ExtractNumber(val)
}

func toInt(val any) (int, bool) {
	f, ok := ExtractNumber(val)
	if !ok {
		return 0, false
	}
	return int(math.Round(f)), true
}

func toBool(val any) (bool, bool) {
	switch v := val.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "y", "1":
			return true, true
		case "false", "no", "n", "0":
			return false, true
		}
	case float64:
		return v != 0, true
	case int:
		return v != 0, true
	case int64:
		return v != 0, true
	}
	return false, false
}

// toStrings accepts arrays, comma-separated strings, and checklist objects
// of the form {"wifi": true, "parking": false}.
func toStrings(val any) ([]string, bool) {
	var out []string
	switch v := val.(type) {
	case []any:
		for _, item := range v {
			if s, ok := toString(item); ok {
				out = append(out, s)
			} else if m, ok := item.(map[string]any); ok {
				if s, ok := firstString(m, "name", "label", "value", "title"); ok {
					out = append(out, s)
				}
			}
		}
	case []string:
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, part := range strings.Split(v, ",") {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
	case map[string]any:
		for key, flag := range v {
			if b, ok := flag.(bool); ok && b {
				out = append(out, key)
			}
		}
		sort.Strings(out)
	}
	return out, len(out) > 0
}

// toJoined renders "type/style" display fields: arrays become a
// comma-separated string.
func toJoined(val any) (string, bool) {
	switch val.(type) {
	case []any, []string:
		list, ok := toStrings(val)
		if !ok {
			return "", false
		}
		return strings.Join(list, ", "), true
	}
	return toString(val)
}

func toObject(val any) (map[string]any, bool) {
	m, ok := val.(map[string]any)
	return m, ok && len(m) > 0
}

func toObjects(val any) ([]map[string]any, bool) {
	var out []map[string]any
	switch v := val.(type) {
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok && len(m) > 0 {
				out = append(out, m)
			}
		}
	case map[string]any:
		// Some editors saved item lists keyed by generated ids.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if m, ok := v[k].(map[string]any); ok && len(m) > 0 {
				out = append(out, m)
			}
		}
	}
	return out, len(out) > 0
}

// toTimestamp renders stored timestamps as RFC 3339. Accepts strings, Unix
// seconds or milliseconds, and exported timestamp objects
// ({"_seconds": ...} or {"seconds": ...}).
func toTimestamp(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case map[string]any:
		for _, key := range []string{"_seconds", "seconds"} {
			if secs, ok := ExtractNumber(v[key]); ok {
				nanos, _ := ExtractNumber(v["_nanoseconds"])
				if nanos == 0 {
					nanos, _ = ExtractNumber(v["nanos"])
				}
				return time.Unix(int64(secs), int64(nanos)).UTC().Format(time.RFC3339), true
			}
		}
	default:
		n, ok := ExtractNumber(v)
		if !ok || n <= 0 {
			return "", false
		}
		if n > 1e12 {
			return time.UnixMilli(int64(n)).UTC().Format(time.RFC3339), true
		}
		return time.Unix(int64(n), 0).UTC().Format(time.RFC3339), true
	}
	return "", false
}

func firstString(m map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := toString(m[k]); ok {
			return s, true
		}
	}
	return "", false
}

// isEmpty reports whether a raw value carries nothing worth reading.
// Zero numbers and false are values, not absence.
func isEmpty(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}
