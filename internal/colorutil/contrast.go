package colorutil

import (
	"fmt"
	"strings"
)

// MinContrastRatio is the ratio adjustments aim for when callers pass minRatio <= 0.
const MinContrastRatio = 7.0

// Strategy selects how the target brightness is solved.
type Strategy int

const (
	// StrategyLegacy uses BrightnessToMeetMinContrast.
	StrategyLegacy Strategy = iota
	// StrategyExact uses ExactBrightnessToMeetMinContrast.
	StrategyExact
)

func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	default:
		return "legacy"
	}
}

func ParseStrategy(v string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "legacy":
		return StrategyLegacy, nil
	case "exact":
		return StrategyExact, nil
	default:
		return StrategyLegacy, fmt.Errorf("unknown strategy: %s", v)
	}
}

var (
	black = HSBA(0, 0, 0, 1)
	white = HSBA(0, 0, 1, 1)
)

// BrightnessValue returns the brightness component of c.
func BrightnessValue(c Color) (float64, error) {
	_, _, b, _, err := c.Components()
	if err != nil {
		return 0, err
	}
	return b, nil
}

// ContrastRatio returns (high + 0.05) / (low + 0.05) for the brightness of a and b.
// The result does not depend on argument order.
func ContrastRatio(a, b Color) (float64, error) {
	b1, b2, err := brightnessPair(a, b)
	if err != nil {
		return 0, err
	}
	if b1 < b2 {
		b1, b2 = b2, b1
	}
	return (b1 + 0.05) / (b2 + 0.05), nil
}

// BrightnessToMeetMinContrast returns the brightness a should take to reach minRatio
// against b. When a is brighter the target is minRatio*(b2+0.05)-0.05, otherwise
// (b2+0.05)/minRatio+0.05. The result is not clamped.
func BrightnessToMeetMinContrast(a, b Color, minRatio float64) (float64, error) {
	b1, b2, err := brightnessPair(a, b)
	if err != nil {
		return 0, err
	}
	minRatio = defaultRatio(minRatio)
	if b1 > b2 {
		return minRatio*(b2+0.05) - 0.05, nil
	}
	return (b2+0.05)/minRatio + 0.05, nil
}

// ExactBrightnessToMeetMinContrast is BrightnessToMeetMinContrast with the darker
// branch solved exactly: (b2+0.05)/minRatio-0.05. A negative result means minRatio
// cannot be reached by darkening a.
func ExactBrightnessToMeetMinContrast(a, b Color, minRatio float64) (float64, error) {
	b1, b2, err := brightnessPair(a, b)
	if err != nil {
		return 0, err
	}
	minRatio = defaultRatio(minRatio)
	if b1 > b2 {
		return minRatio*(b2+0.05) - 0.05, nil
	}
	return (b2+0.05)/minRatio - 0.05, nil
}

// AdjustedColorForBestContrast returns a with its brightness changed so that it
// meets minRatio against b. a is returned unchanged when it already does or when
// either color has no HSB decomposition.
func AdjustedColorForBestContrast(a, b Color, minRatio float64) Color {
	return Adjust(a, b, minRatio, StrategyLegacy)
}

// Adjust is AdjustedColorForBestContrast with a selectable brightness solver.
func Adjust(a, b Color, minRatio float64, strategy Strategy) Color {
	minRatio = defaultRatio(minRatio)
	ratio, err := ContrastRatio(a, b)
	if err != nil || ratio >= minRatio {
		return a
	}
	solve := BrightnessToMeetMinContrast
	if strategy == StrategyExact {
		solve = ExactBrightnessToMeetMinContrast
	}
	target, err := solve(a, b, minRatio)
	if err != nil {
		return a
	}
	return AdjustedColor(a, target)
}

// AdjustedColor returns base with brightness replaced. Pattern colors come back as is.
func AdjustedColor(base Color, brightness float64) Color {
	h, s, _, a, err := base.Components()
	if err != nil {
		return base
	}
	return HSBA(h, s, brightness, a)
}

// AutoTextColor returns black or white, whichever contrasts more with bg.
func AutoTextColor(bg Color) (Color, error) {
	crBlack, err := ContrastRatio(black, bg)
	if err != nil {
		return Color{}, err
	}
	crWhite, _ := ContrastRatio(white, bg)
	if crBlack >= crWhite {
		return black, nil
	}
	return white, nil
}

func brightnessPair(a, b Color) (float64, float64, error) {
	b1, err := BrightnessValue(a)
	if err != nil {
		return 0, 0, err
	}
	b2, err := BrightnessValue(b)
	if err != nil {
		return 0, 0, err
	}
	return b1, b2, nil
}

func defaultRatio(minRatio float64) float64 {
	if minRatio <= 0 {
		return MinContrastRatio
	}
	return minRatio
}
