package screen

import "math"

// Criteria is the raw filter form content, one entry per input field.
type Criteria map[string]any

// StripEmptyFields drops entries whose value is an empty string, nil, or NaN
// (a numeric input left blank parses to NaN). Retained values pass through
// unchanged, and stripping an already-stripped map is a no-op.
func StripEmptyFields(criteria Criteria) Criteria {
	out := make(Criteria, len(criteria))
	for key, value := range criteria {
		if isEmptyValue(value) {
			continue
		}
		out[key] = value
	}
	return out
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	default:
		return false
	}
}
