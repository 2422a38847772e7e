package termcolor

import (
	"testing"

	"github.com/phyten/hsbcontrast/internal/colorutil"
)

func TestHeaderStyle(t *testing.T) {
	s := HeaderStyle()
	if !s.Bold || !s.Underline {
		t.Fatalf("header style should enable bold+underline: %+v", s)
	}
}

func TestVerdictStyleRespectsScheme(t *testing.T) {
	pass := VerdictStyle(true, SchemeDark, ProfileBasic8)
	if pass.FGBasic == nil || *pass.FGBasic != 2 || !pass.Bold {
		t.Fatalf("PASS basic style mismatch: %+v", pass)
	}
	fail := VerdictStyle(false, SchemeDark, ProfileBasic8)
	if fail.FGBasic == nil || *fail.FGBasic != 1 {
		t.Fatalf("FAIL basic style mismatch: %+v", fail)
	}

	passLight := VerdictStyle(true, SchemeLight, ProfileTrueColor)
	if passLight.FGTrue == nil {
		t.Fatalf("PASS light truecolor missing fg: %+v", passLight)
	}
	passDark := VerdictStyle(true, SchemeDark, ProfileTrueColor)
	if *passLight.FGTrue == *passDark.FGTrue {
		t.Fatal("light and dark schemes should use different shades")
	}

	fail256 := VerdictStyle(false, SchemeLight, ProfileANSI256)
	if fail256.FG256 == nil || *fail256.FG256 != rgbToANSI256(180, 20, 20) {
		t.Fatalf("FAIL light 256 color mismatch: %+v", fail256)
	}
}

func TestSwatchStylePicksReadableText(t *testing.T) {
	yellow := colorutil.HSBA(1.0/6, 1, 1, 1)
	got := Apply(SwatchStyle(yellow, ProfileTrueColor), "X", true)
	want := "\x1b[38;2;0;0;0;48;2;255;255;0mX\x1b[0m"
	if got != want {
		t.Fatalf("truecolor swatch = %q, want %q", got, want)
	}

	got = Apply(SwatchStyle(yellow, ProfileBasic8), "X", true)
	want = "\x1b[30;43mX\x1b[0m"
	if got != want {
		t.Fatalf("basic swatch = %q, want %q", got, want)
	}

	black := colorutil.HSBA(0, 0, 0, 1)
	s := SwatchStyle(black, ProfileANSI256)
	if s.BG256 == nil || *s.BG256 != 16 || s.FG256 == nil || *s.FG256 != 231 {
		t.Fatalf("black swatch should use white text: %+v", s)
	}
}

func TestSwatchStyleIgnoresPatterns(t *testing.T) {
	s := SwatchStyle(colorutil.PatternColor("stripes"), ProfileTrueColor)
	if !s.IsZero() {
		t.Fatalf("pattern colors should not be painted: %+v", s)
	}
}

func TestRGBToBasic(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    int
	}{
		{0, 0, 0, 0},
		{255, 0, 0, 1},
		{0, 255, 0, 2},
		{255, 255, 0, 3},
		{0, 0, 255, 4},
		{255, 255, 255, 7},
	}
	for _, tc := range cases {
		if got := rgbToBasic(tc.r, tc.g, tc.b); got != tc.want {
			t.Fatalf("rgbToBasic(%d,%d,%d)=%d want %d", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}
