package config

import "strings"

func ResolveString(def string, values ...*string) string {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveFloat(def float64, values ...*float64) float64 {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveBool(def bool, values ...*bool) bool {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

// ResolveStringMap overlays each layer's entries onto def. Keys are never removed.
func ResolveStringMap(def map[string]string, values ...map[string]string) map[string]string {
	result := cloneStringMap(def)
	for _, layer := range values {
		if len(layer) == 0 {
			continue
		}
		if result == nil {
			result = make(map[string]string, len(layer))
		}
		for k, v := range layer {
			result[k] = v
		}
	}
	return result
}

func ResolveAndTrim(def string, values ...*string) string {
	value := ResolveString(def, values...)
	return strings.TrimSpace(value)
}
