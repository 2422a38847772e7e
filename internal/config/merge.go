package config

import "strings"

func MergeSettings(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.MinRatio = ResolveFloat(out.MinRatio, layer.Contrast.MinRatio)
		out.Strategy = ResolveAndTrim(out.Strategy, layer.Contrast.Strategy)
		out.Clamp = ResolveBool(out.Clamp, layer.Contrast.Clamp)
		out.Output = ResolveAndTrim(out.Output, layer.Contrast.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Contrast.Color)
		out.PaletteSpecs = ResolveStringMap(out.PaletteSpecs, layer.Palette)
	}
	if strings.TrimSpace(out.Strategy) == "" {
		out.Strategy = "legacy"
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}
