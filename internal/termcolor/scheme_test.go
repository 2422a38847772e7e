package termcolor

import "testing"

func TestDetectSchemeFromColorfgbg(t *testing.T) {
	cases := map[string]Scheme{
		"7;0":          SchemeDark,
		"15;7":         SchemeLight,
		"15;15":        SchemeLight,
		"15;8":         SchemeDark,
		"0;default;15": SchemeLight,
		"0;15;":        SchemeLight,
	}
	for raw, want := range cases {
		if got := DetectScheme(map[string]string{"COLORFGBG": raw}); got != want {
			t.Fatalf("COLORFGBG=%q: got %v want %v", raw, got, want)
		}
	}
}

func TestDetectSchemeFallsBackToTermName(t *testing.T) {
	if got := DetectScheme(map[string]string{"TERM": "xterm-light"}); got != SchemeLight {
		t.Fatalf("expected light for TERM containing light, got %v", got)
	}
	if got := DetectScheme(nil); got != SchemeDark {
		t.Fatalf("nil env should default to dark, got %v", got)
	}
}

func TestSchemeDefaultBackground(t *testing.T) {
	if got := SchemeLight.DefaultBackground(); got != "white" {
		t.Fatalf("light scheme background = %q", got)
	}
	if got := SchemeDark.DefaultBackground(); got != "black" {
		t.Fatalf("dark scheme background = %q", got)
	}
	if got := SchemeUnknown.DefaultBackground(); got != "black" {
		t.Fatalf("unknown scheme background = %q", got)
	}
}
