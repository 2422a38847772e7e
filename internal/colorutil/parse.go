package colorutil

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// named mirrors the platform's stock colors expressed as HSB.
var named = map[string]Color{
	"black":     HSBA(0, 0, 0, 1),
	"darkgray":  HSBA(0, 0, 1.0/3, 1),
	"gray":      HSBA(0, 0, 0.5, 1),
	"lightgray": HSBA(0, 0, 2.0/3, 1),
	"white":     HSBA(0, 0, 1, 1),
	"red":       HSBA(0, 1, 1, 1),
	"orange":    HSBA(1.0/12, 1, 1, 1),
	"yellow":    HSBA(1.0/6, 1, 1, 1),
	"green":     HSBA(1.0/3, 1, 1, 1),
	"cyan":      HSBA(0.5, 1, 1, 1),
	"blue":      HSBA(2.0/3, 1, 1, 1),
	"magenta":   HSBA(5.0/6, 1, 1, 1),
	"purple":    HSBA(5.0/6, 1, 0.5, 1),
	"brown":     HSBA(1.0/12, 2.0/3, 0.6, 1),
	"clear":     HSBA(0, 0, 0, 0),
}

// Named looks up a stock color by case-insensitive name.
func Named(name string) (Color, bool) {
	c, ok := named[normalizeName(name)]
	return c, ok
}

// Names lists the stock color names in sorted order.
func Names() []string {
	out := make([]string, 0, len(named))
	for name := range named {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

const patternPrefix = "pattern:"

// ParseColor parses spec as one of:
//
//	name            stock color or palette entry (palette wins)
//	hsb(h,s,b)      alpha defaults to 1
//	hsba(h,s,b,a)
//	h,s,b[,a]
//	pattern:NAME    color without an HSB decomposition
//
// Finite components outside [0, 1] are accepted as is.
func ParseColor(spec string, palette map[string]Color) (Color, error) {
	raw := strings.TrimSpace(spec)
	if raw == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	lower := strings.ToLower(raw)

	if strings.HasPrefix(lower, patternPrefix) {
		name := strings.TrimSpace(raw[len(patternPrefix):])
		if name == "" {
			return Color{}, fmt.Errorf("invalid color %q: pattern name is empty", spec)
		}
		return PatternColor(name), nil
	}

	if c, ok := palette[normalizeName(lower)]; ok {
		return c, nil
	}
	if c, ok := Named(lower); ok {
		return c, nil
	}

	body := lower
	wantAlpha := -1
	switch {
	case strings.HasPrefix(body, "hsba(") && strings.HasSuffix(body, ")"):
		body = body[len("hsba(") : len(body)-1]
		wantAlpha = 1
	case strings.HasPrefix(body, "hsb(") && strings.HasSuffix(body, ")"):
		body = body[len("hsb(") : len(body)-1]
		wantAlpha = 0
	case strings.Contains(body, ","):
	default:
		return Color{}, fmt.Errorf("unknown color %q", spec)
	}

	parts := strings.Split(body, ",")
	switch {
	case wantAlpha == 1 && len(parts) != 4:
		return Color{}, fmt.Errorf("invalid color %q: hsba needs 4 components", spec)
	case wantAlpha == 0 && len(parts) != 3:
		return Color{}, fmt.Errorf("invalid color %q: hsb needs 3 components", spec)
	case len(parts) != 3 && len(parts) != 4:
		return Color{}, fmt.Errorf("invalid color %q: expected 3 or 4 components", spec)
	}

	vals := [4]float64{0, 0, 0, 1}
	labels := [4]string{"hue", "saturation", "brightness", "alpha"}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %s %q is not a number", spec, labels[i], strings.TrimSpace(part))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, fmt.Errorf("invalid color %q: %s must be finite", spec, labels[i])
		}
		vals[i] = v
	}
	return HSBA(vals[0], vals[1], vals[2], vals[3]), nil
}

// ParsePalette parses name -> spec entries. Palette entries may not refer to each other.
func ParsePalette(entries map[string]string) (map[string]Color, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make(map[string]Color, len(entries))
	for name, spec := range entries {
		key := normalizeName(name)
		if key == "" {
			return nil, fmt.Errorf("palette: empty color name")
		}
		c, err := ParseColor(spec, nil)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		out[key] = c
	}
	return out, nil
}

func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "")
	n = strings.ReplaceAll(n, "_", "")
	n = strings.ReplaceAll(n, " ", "")
	return n
}

func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
