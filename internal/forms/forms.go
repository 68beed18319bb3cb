// Package forms bridges raw form input and the typed campaign model. The
// rendering layer posts flat key/value pairs with dotted paths
// ("targetAudience.ageRange", "channels.email"); they are unflattened here,
// once, at the boundary, so nothing downstream string-splits keys.
package forms

// SetPath writes value into dst at the given path, creating intermediate
// maps as needed. Existing siblings at every level are preserved; a
// non-map node in the way is replaced.
func SetPath(dst map[string]any, path []string, value any) {
	if len(path) == 0 {
		return
	}
	if len(path) == 1 {
		dst[path[0]] = value
		return
	}

	child, ok := dst[path[0]].(map[string]any)
	if !ok {
		child = make(map[string]any)
		dst[path[0]] = child
	}
	SetPath(child, path[1:], value)
}

// Unflatten converts flat form pairs into a nested document. Checkbox
// values arrive as "true"/"false"/"on" and are coerced to booleans;
// everything else stays a string.
func Unflatten(flat map[string]string) map[string]any {
	out := make(map[string]any, len(flat))
	for key, raw := range flat {
		SetPath(out, splitPath(key), coerce(raw))
	}
	return out
}

func splitPath(key string) []string {
	var path []string
	start := 0
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			if i > start {
				path = append(path, key[start:i])
			}
			start = i + 1
		}
	}
	if start < len(key) {
		path = append(path, key[start:])
	}
	return path
}

func coerce(v string) any {
	switch v {
	case "true", "on":
		return true
	case "false":
		return false
	default:
		return v
	}
}
