package termcolor

import (
	"strconv"
	"strings"
)

// Scheme is the terminal's background brightness.
type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeDark
	SchemeLight
)

func (s Scheme) String() string {
	switch s {
	case SchemeDark:
		return "dark"
	case SchemeLight:
		return "light"
	default:
		return "unknown"
	}
}

// DefaultBackground names the stock color closest to the terminal background.
func (s Scheme) DefaultBackground() string {
	if s == SchemeLight {
		return "white"
	}
	return "black"
}

// DetectScheme reads COLORFGBG ("fg;bg" or "fg;default;bg") and falls back to
// TERM names containing "light". Unknown terminals are assumed dark.
func DetectScheme(env map[string]string) Scheme {
	if raw := strings.TrimSpace(env["COLORFGBG"]); raw != "" {
		parts := strings.Split(raw, ";")
		bgRaw := strings.TrimSpace(parts[len(parts)-1])
		if bgRaw == "" && len(parts) >= 2 {
			bgRaw = strings.TrimSpace(parts[len(parts)-2])
		}
		if bg, err := strconv.Atoi(bgRaw); err == nil && bg >= 0 {
			// 7 (white) and the bright range 8-15 except 8 (dark gray) read as light.
			if bg == 7 || bg > 8 {
				return SchemeLight
			}
			return SchemeDark
		}
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "light") {
		return SchemeLight
	}
	return SchemeDark
}
