package config

import (
	"strings"

	"github.com/phyten/hsbcontrast/internal/colorutil"
	"github.com/phyten/hsbcontrast/internal/engine"
)

type ContrastConfig struct {
	MinRatio *float64 `yaml:"min_ratio" toml:"min_ratio" json:"min_ratio"`
	Strategy *string  `yaml:"strategy" toml:"strategy" json:"strategy"`
	Clamp    *bool    `yaml:"clamp" toml:"clamp" json:"clamp"`
	Output   *string  `yaml:"output" toml:"output" json:"output"`
	Color    *string  `yaml:"color" toml:"color" json:"color"`
}

type Config struct {
	Contrast ContrastConfig    `yaml:"contrast" toml:"contrast" json:"contrast"`
	Palette  map[string]string `yaml:"palette" toml:"palette" json:"palette"`
}

type Settings struct {
	MinRatio float64
	Strategy string
	Clamp    bool
	Output   string
	Color    string
	// PaletteSpecs holds the raw name -> color spec entries from every layer.
	PaletteSpecs map[string]string
	// Palette is filled by Normalize.
	Palette map[string]colorutil.Color
}

func DefaultSettings() Settings {
	return Settings{
		MinRatio: colorutil.MinContrastRatio,
		Strategy: "legacy",
		Clamp:    false,
		Output:   "table",
		Color:    "auto",
	}
}

func (s Settings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.MinRatio = s.MinRatio
	opts.Strategy = strings.TrimSpace(s.Strategy)
	opts.Clamp = s.Clamp
	opts.Palette = s.Palette
}

func cloneStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
