package colorutil

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Space identifies how a Color is represented internally.
type Space uint8

const (
	// SpaceHSB colors carry hue, saturation, brightness and alpha components.
	SpaceHSB Space = iota
	// SpacePattern colors are tiled patterns with no HSB decomposition.
	SpacePattern
)

func (s Space) String() string {
	switch s {
	case SpaceHSB:
		return "hsb"
	case SpacePattern:
		return "pattern"
	default:
		return fmt.Sprintf("space(%d)", uint8(s))
	}
}

// ErrColorSpace matches every ColorSpaceError via errors.Is.
var ErrColorSpace = errors.New("color cannot be decomposed into hue/saturation/brightness/alpha")

// ColorSpaceError reports that a color has no HSB decomposition.
type ColorSpaceError struct {
	Space   Space
	Pattern string
}

func (e *ColorSpaceError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("%s color %q: %v", e.Space, e.Pattern, ErrColorSpace)
	}
	return fmt.Sprintf("%s color: %v", e.Space, ErrColorSpace)
}

func (e *ColorSpaceError) Is(target error) bool {
	return target == ErrColorSpace
}

// Color is an immutable hue/saturation/brightness/alpha value. All components are
// expected in [0, 1] but are not clamped; see Clamped.
//
// The zero value is transparent black in SpaceHSB.
type Color struct {
	Hue        float64
	Saturation float64
	Brightness float64
	Alpha      float64
	Space      Space
	// Pattern names the tile of a SpacePattern color.
	Pattern string
}

// HSBA builds a decomposable color.
func HSBA(h, s, b, a float64) Color {
	return Color{Hue: h, Saturation: s, Brightness: b, Alpha: a}
}

// PatternColor builds a color that cannot be decomposed into HSB components.
func PatternColor(name string) Color {
	return Color{Space: SpacePattern, Pattern: name}
}

// Components returns the hue, saturation, brightness and alpha of c.
func (c Color) Components() (h, s, b, a float64, err error) {
	if c.Space != SpaceHSB {
		return 0, 0, 0, 0, &ColorSpaceError{Space: c.Space, Pattern: c.Pattern}
	}
	return c.Hue, c.Saturation, c.Brightness, c.Alpha, nil
}

// Clamped returns a copy of c with every component limited to [0, 1].
// Pattern colors are returned unchanged.
func (c Color) Clamped() Color {
	if c.Space != SpaceHSB {
		return c
	}
	c.Hue = clamp01(c.Hue)
	c.Saturation = clamp01(c.Saturation)
	c.Brightness = clamp01(c.Brightness)
	c.Alpha = clamp01(c.Alpha)
	return c
}

// RGB255 converts c for display. Components are clamped first so that
// out-of-range values still render.
func (c Color) RGB255() (r, g, b uint8, err error) {
	rgb, err := c.display()
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = rgb.RGB255()
	return r, g, b, nil
}

// Hex returns the #rrggbb display form of c, or "" for pattern colors.
func (c Color) Hex() string {
	rgb, err := c.display()
	if err != nil {
		return ""
	}
	return rgb.Hex()
}

func (c Color) display() (colorful.Color, error) {
	h, s, v, _, err := c.Clamped().Components()
	if err != nil {
		return colorful.Color{}, err
	}
	// colorful.Hsv expects hue in [0, 360).
	if h >= 1 {
		h = 0
	}
	return colorful.Hsv(h*360, s, v), nil
}

func (c Color) String() string {
	if c.Space == SpacePattern {
		return "pattern:" + c.Pattern
	}
	return fmt.Sprintf("hsba(%s,%s,%s,%s)",
		formatComponent(c.Hue), formatComponent(c.Saturation),
		formatComponent(c.Brightness), formatComponent(c.Alpha))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
