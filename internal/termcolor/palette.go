package termcolor

import "github.com/phyten/hsbcontrast/internal/colorutil"

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// VerdictStyle colors a PASS/FAIL cell. Light backgrounds get darker shades so
// the verdict itself stays readable.
func VerdictStyle(pass bool, scheme Scheme, profile Profile) Style {
	var rgb [3]uint8
	basic := 1
	switch {
	case pass && scheme == SchemeLight:
		rgb = [3]uint8{0, 110, 40}
	case pass:
		rgb = [3]uint8{80, 220, 100}
	case scheme == SchemeLight:
		rgb = [3]uint8{180, 20, 20}
	default:
		rgb = [3]uint8{255, 95, 95}
	}
	if pass {
		basic = 2
	}
	s := Style{Bold: true}
	switch profile {
	case ProfileTrueColor:
		s.FGTrue = &rgb
	case ProfileANSI256:
		idx := rgbToANSI256(rgb[0], rgb[1], rgb[2])
		s.FG256 = &idx
	default:
		s.FGBasic = &basic
	}
	return s
}

// SwatchStyle paints text on c, choosing black or white text for legibility.
// Pattern colors have no display value and get an empty style.
func SwatchStyle(c colorutil.Color, profile Profile) Style {
	r, g, b, err := c.RGB255()
	if err != nil {
		return Style{}
	}
	text, err := colorutil.AutoTextColor(c.Clamped())
	if err != nil {
		return Style{}
	}
	tr, tg, tb, _ := text.RGB255()

	var s Style
	switch profile {
	case ProfileTrueColor:
		bg := [3]uint8{r, g, b}
		fg := [3]uint8{tr, tg, tb}
		s.BGTrue, s.FGTrue = &bg, &fg
	case ProfileANSI256:
		bg := rgbToANSI256(r, g, b)
		fg := rgbToANSI256(tr, tg, tb)
		s.BG256, s.FG256 = &bg, &fg
	default:
		bg := rgbToBasic(r, g, b)
		fg := rgbToBasic(tr, tg, tb)
		s.BGBasic, s.FGBasic = &bg, &fg
	}
	return s
}

// rgbToBasic maps each channel to on/off and packs them as ANSI does:
// bit 0 red, bit 1 green, bit 2 blue.
func rgbToBasic(r, g, b uint8) int {
	idx := 0
	if r >= 128 {
		idx |= 1
	}
	if g >= 128 {
		idx |= 2
	}
	if b >= 128 {
		idx |= 4
	}
	return idx
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
