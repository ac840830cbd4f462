// File: settings/helper.go
package settings

import "strings"

// flattenMap converts a nested map[string]any to a flat map[string]any
// with dot-notation keys. Used by the TOML codec to map nested tables
// onto the store's flat key space.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newKey := key
		if prefix != "" {
			newKey = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subKey, subValue := range flattenMap(nestedMap, newKey) {
				flat[subKey] = subValue
			}
		} else {
			flat[newKey] = value
		}
	}

	return flat
}

// setNestedValue sets a value in a nested map using a dot-notation key.
// It creates intermediate maps as needed. If a segment exists but is
// not a map, it is overwritten by a new map.
func setNestedValue(nested map[string]any, key string, value any) {
	segments := strings.Split(key, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		next, exists := current[segment]
		if !exists {
			newMap := make(map[string]any)
			current[segment] = newMap
			current = newMap
			continue
		}

		if nextMap, isMap := next.(map[string]any); isMap {
			current = nextMap
		} else {
			newMap := make(map[string]any)
			current[segment] = newMap
			current = newMap
		}
	}

	current[segments[len(segments)-1]] = value
}
