package config

// Document is the generic configuration tree for one scenario: string-keyed
// mappings and sequences holding scalar leaves, as produced by the YAML
// loader or built in code.
type Document = map[string]any

// Combine performs a prioritized recursive merge of the partial documents
// over a fresh defaults document and returns the merged result.
//
// Merge order follows list index: later partials are merged last and win
// every conflict, and all partials win over the defaults. The inputs are
// never mutated.
func Combine(partials []Document) Document {
	merged := Defaults()
	for _, partial := range partials {
		merged = MergeMaps(merged, partial)
	}
	return merged
}

// MergeMaps merges b over a and returns a new map, leaving both inputs
// untouched.
//
// The rule is applied key by key at every nesting level: when both sides
// hold a mapping the mappings merge recursively (union of keys, b wins on
// conflicting leaves); when either side holds anything else the value from
// b replaces the value from a wholesale. Sequences are never concatenated
// or element-merged, only replaced. Keys present on one side only are
// carried through unchanged.
func MergeMaps(a, b map[string]any) map[string]any {
	merged := make(map[string]any, len(a)+len(b))
	for key, value := range a {
		merged[key] = copyValue(value)
	}
	for key, value := range b {
		if over, ok := value.(map[string]any); ok {
			if under, ok := merged[key].(map[string]any); ok {
				merged[key] = MergeMaps(under, over)
				continue
			}
		}
		merged[key] = copyValue(value)
	}
	return merged
}

// copyValue deep-copies the mapping and sequence shapes that occur in a
// configuration document. Scalars are returned as-is.
func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return copyMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = copyValue(item)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(v))
		for i, item := range v {
			out[i] = copyMap(item)
		}
		return out
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	default:
		return value
	}
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = copyValue(value)
	}
	return out
}
