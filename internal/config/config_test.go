package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/phyten/hsbcontrast/internal/colorutil"
	"github.com/phyten/hsbcontrast/internal/engine"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(v bool) *bool { return &v }

func TestMergeSettingsPrecedence(t *testing.T) {
	base := DefaultSettings()

	fileCfg := Config{
		Contrast: ContrastConfig{MinRatio: floatPtr(4.5), Strategy: strPtr("exact"), Output: strPtr("json")},
		Palette:  map[string]string{"brand": "0.5,1,0.5", "ink": "black"},
	}
	envCfg := Config{Contrast: ContrastConfig{Clamp: boolPtr(true), Output: strPtr("tsv")}}
	flagCfg := Config{
		Contrast: ContrastConfig{MinRatio: floatPtr(3), Color: strPtr(" never ")},
		Palette:  map[string]string{"brand": "0.6,1,0.5"},
	}

	merged := MergeSettings(base, fileCfg, envCfg, flagCfg)

	if merged.MinRatio != 3 {
		t.Fatalf("expected MinRatio 3, got %v", merged.MinRatio)
	}
	if merged.Strategy != "exact" {
		t.Fatalf("expected Strategy exact, got %q", merged.Strategy)
	}
	if !merged.Clamp {
		t.Fatal("expected Clamp true from env layer")
	}
	if merged.Output != "tsv" {
		t.Fatalf("expected Output tsv, got %q", merged.Output)
	}
	if merged.Color != "never" {
		t.Fatalf("expected Color never, got %q", merged.Color)
	}
	want := map[string]string{"brand": "0.6,1,0.5", "ink": "black"}
	if !reflect.DeepEqual(merged.PaletteSpecs, want) {
		t.Fatalf("unexpected palette: %v", merged.PaletteSpecs)
	}
	if base.PaletteSpecs != nil {
		t.Fatal("base settings must not be mutated")
	}
}

func TestMergeSettingsFillsBlankValues(t *testing.T) {
	merged := MergeSettings(Settings{MinRatio: 7}, Config{Contrast: ContrastConfig{Output: strPtr(" ")}})
	if merged.Output != "table" || merged.Color != "auto" || merged.Strategy != "legacy" {
		t.Fatalf("blank values should fall back to defaults: %+v", merged)
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		"CONTRAST_MIN_RATIO": "4.5",
		"CONTRAST_STRATEGY":  "exact",
		"CONTRAST_CLAMP":     "yes",
		"CONTRAST_OUTPUT":    "csv",
		"CONTRAST_COLOR":     "always",
	}
	cfg, err := FromEnv(func(key string) string { return env[key] })
	if err != nil {
		t.Fatalf("FromEnv returned error: %v", err)
	}
	if cfg.Contrast.MinRatio == nil || *cfg.Contrast.MinRatio != 4.5 {
		t.Fatalf("expected MinRatio 4.5, got %+v", cfg.Contrast.MinRatio)
	}
	if cfg.Contrast.Strategy == nil || *cfg.Contrast.Strategy != "exact" {
		t.Fatalf("expected Strategy exact, got %+v", cfg.Contrast.Strategy)
	}
	if cfg.Contrast.Clamp == nil || !*cfg.Contrast.Clamp {
		t.Fatal("expected Clamp true")
	}
	if cfg.Contrast.Output == nil || *cfg.Contrast.Output != "csv" {
		t.Fatalf("expected Output csv, got %+v", cfg.Contrast.Output)
	}
	if cfg.Contrast.Color == nil || *cfg.Contrast.Color != "always" {
		t.Fatalf("expected Color always, got %+v", cfg.Contrast.Color)
	}
}

func TestFromEnvCollectsErrors(t *testing.T) {
	env := map[string]string{
		"CONTRAST_MIN_RATIO": "high",
		"CONTRAST_CLAMP":     "maybe",
	}
	_, err := FromEnv(func(key string) string { return env[key] })
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "CONTRAST_MIN_RATIO") || !strings.Contains(msg, "CONTRAST_CLAMP") {
		t.Fatalf("expected both keys in error, got %q", msg)
	}

	cfg, err := FromEnv(nil)
	if err != nil {
		t.Fatalf("nil getenv should be accepted: %v", err)
	}
	if cfg.Contrast.MinRatio != nil {
		t.Fatal("nil getenv should leave config empty")
	}
}

func TestLoadConfigFormats(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		".yaml": "min_ratio: 4.5\nstrategy: exact\npalette:\n  brand: hsb(0.55, 0.8, 0.4)\n  ink: [0, 0, 0.1]\n",
		".toml": "[contrast]\nmin-ratio = 5\nclamp = true\n[palette]\nbrand = \"0.55,0.8,0.4\"\n",
		".json": "{\n  \"contrast\": {\"min_contrast_ratio\": 6, \"output\": \"md\"},\n  \"color\": \"never\",\n  \"palette\": {\"ink\": [0, 0, 0.1, 0.5]}\n}\n",
	}

	for ext, content := range cases {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "config"+ext)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if cfg.Contrast.MinRatio == nil {
				t.Fatal("expected min_ratio to be set")
			}
			switch ext {
			case ".yaml":
				if *cfg.Contrast.MinRatio != 4.5 {
					t.Fatalf("yaml min_ratio mismatch: %v", *cfg.Contrast.MinRatio)
				}
				if cfg.Contrast.Strategy == nil || *cfg.Contrast.Strategy != "exact" {
					t.Fatalf("yaml strategy mismatch: %q", ptrString(cfg.Contrast.Strategy))
				}
				if cfg.Palette["brand"] != "hsb(0.55, 0.8, 0.4)" || cfg.Palette["ink"] != "0,0,0.1" {
					t.Fatalf("yaml palette mismatch: %v", cfg.Palette)
				}
			case ".toml":
				if *cfg.Contrast.MinRatio != 5 {
					t.Fatalf("toml min_ratio mismatch: %v", *cfg.Contrast.MinRatio)
				}
				if cfg.Contrast.Clamp == nil || !*cfg.Contrast.Clamp {
					t.Fatal("toml clamp should be true")
				}
				if cfg.Palette["brand"] != "0.55,0.8,0.4" {
					t.Fatalf("toml palette mismatch: %v", cfg.Palette)
				}
			case ".json":
				if *cfg.Contrast.MinRatio != 6 {
					t.Fatalf("json min_ratio mismatch: %v", *cfg.Contrast.MinRatio)
				}
				if cfg.Contrast.Output == nil || *cfg.Contrast.Output != "md" {
					t.Fatalf("json output mismatch: %q", ptrString(cfg.Contrast.Output))
				}
				if cfg.Contrast.Color == nil || *cfg.Contrast.Color != "never" {
					t.Fatalf("json color mismatch: %q", ptrString(cfg.Contrast.Color))
				}
				if cfg.Palette["ink"] != "0,0,0.1,0.5" {
					t.Fatalf("json palette mismatch: %v", cfg.Palette)
				}
			}
		})
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"unknown.yaml":   "unknown: value\n",
		"section.yaml":   "contrast:\n  jobs: 4\n",
		"clamp.yaml":     "clamp: sometimes\n",
		"palette.yaml":   "palette:\n  ink: [0, 0]\n",
		"ratio.json":     "{\"min_ratio\": \"high\"}",
		"extension.ini":  "min_ratio=4\n",
		"malformed.toml": "min_ratio = \n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}

	cfg, err := Load("")
	if err != nil || cfg.Contrast.MinRatio != nil {
		t.Fatalf("empty path should load nothing: %+v %v", cfg, err)
	}
}

func TestFindOrder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "project")
	if mkErr := os.MkdirAll(filepath.Join(root, "sub", "dir"), 0o755); mkErr != nil {
		t.Fatalf("mkdir: %v", mkErr)
	}
	projectConfig := filepath.Join(root, ".contrast.yaml")
	if writeErr := os.WriteFile(projectConfig, []byte("min_ratio: 4.5\n"), 0o644); writeErr != nil {
		t.Fatalf("write project config: %v", writeErr)
	}
	path, where, err := Find(filepath.Join(root, "sub", "dir"), "", "", "")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if path != projectConfig || where != "cwd-up" {
		t.Fatalf("unexpected result: path=%s where=%s", path, where)
	}

	explicitDir := t.TempDir()
	explicit := filepath.Join(explicitDir, "custom.toml")
	if writeErr := os.WriteFile(explicit, []byte("min_ratio = 3\n"), 0o644); writeErr != nil {
		t.Fatalf("write explicit: %v", writeErr)
	}
	path, where, err = Find(root, explicit, "", "")
	if err != nil {
		t.Fatalf("Find explicit failed: %v", err)
	}
	if path != explicit || where != "explicit" {
		t.Fatalf("expected explicit config, got path=%s where=%s", path, where)
	}
	if _, _, err := Find(root, explicitDir, "", ""); err == nil {
		t.Fatal("explicit directory should be rejected")
	} else if msg := err.Error(); !strings.Contains(msg, "config path") || strings.Contains(msg, "CONTRAST_CONFIG") {
		t.Fatalf("directory error should not name a specific source: %q", msg)
	}

	xdgHome := t.TempDir()
	if mkErr := os.MkdirAll(filepath.Join(xdgHome, "contrast"), 0o755); mkErr != nil {
		t.Fatalf("mkdir xdg: %v", mkErr)
	}
	xdgPath := filepath.Join(xdgHome, "contrast", "config.json")
	if writeErr := os.WriteFile(xdgPath, []byte("{}"), 0o644); writeErr != nil {
		t.Fatalf("write xdg: %v", writeErr)
	}
	path, where, err = Find(t.TempDir(), "", xdgHome, t.TempDir())
	if err != nil {
		t.Fatalf("Find xdg failed: %v", err)
	}
	if path != xdgPath || where != "xdg" {
		t.Fatalf("expected xdg config, got path=%s where=%s", path, where)
	}

	homeDir := t.TempDir()
	homePath := filepath.Join(homeDir, ".contrast.toml")
	if writeErr := os.WriteFile(homePath, []byte("min_ratio = 7\n"), 0o644); writeErr != nil {
		t.Fatalf("write home: %v", writeErr)
	}
	path, where, err = Find(t.TempDir(), "", "", homeDir)
	if err != nil {
		t.Fatalf("Find home failed: %v", err)
	}
	if path != homePath || where != "home" {
		t.Fatalf("expected home config, got path=%s where=%s", path, where)
	}
}

func TestNormalize(t *testing.T) {
	values := DefaultSettings()
	values.Strategy = "EXACT"
	values.Output = "Markdown"
	values.Color = "ALWAYS"
	values.PaletteSpecs = map[string]string{"Brand": "hsb(0.55,0.8,0.4)"}
	normalized, err := Normalize(values)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if normalized.Strategy != "exact" || normalized.Output != "md" || normalized.Color != "always" {
		t.Fatalf("unexpected normalized values: %+v", normalized)
	}
	if got := normalized.Palette["brand"]; got != colorutil.HSBA(0.55, 0.8, 0.4, 1) {
		t.Fatalf("palette not parsed: %+v", normalized.Palette)
	}

	bad := []Settings{
		{MinRatio: 7, Strategy: "closest"},
		{MinRatio: 0.5},
		{MinRatio: 7, Output: "xml"},
		{MinRatio: 7, Color: "sometimes"},
		{MinRatio: 7, PaletteSpecs: map[string]string{"x": "nope"}},
	}
	for _, b := range bad {
		if _, err := Normalize(b); err == nil {
			t.Fatalf("expected error for %+v", b)
		}
	}
}

func TestApplyToOptions(t *testing.T) {
	s := Settings{MinRatio: 4.5, Strategy: " exact ", Clamp: true, Palette: map[string]colorutil.Color{"ink": colorutil.HSBA(0, 0, 0.1, 1)}}
	opts := engine.Options{Foreground: "ink"}
	s.ApplyToOptions(&opts)
	if opts.MinRatio != 4.5 || opts.Strategy != "exact" || !opts.Clamp || opts.Palette["ink"].Brightness != 0.1 {
		t.Fatalf("settings not applied: %+v", opts)
	}
	if opts.Foreground != "ink" {
		t.Fatal("foreground must be left alone")
	}
	s.ApplyToOptions(nil)
}

func ptrString(v *string) string {
	if v == nil {
		return "<nil>"
	}
	return *v
}
