package config

import (
	"fmt"

	"github.com/phyten/hsbcontrast/internal/colorutil"
	engineopts "github.com/phyten/hsbcontrast/internal/engine/opts"
	"github.com/phyten/hsbcontrast/internal/termcolor"
)

func CanonicalizeStrategy(raw string) (string, error) {
	s, err := colorutil.ParseStrategy(raw)
	if err != nil {
		return "", fmt.Errorf("invalid strategy: %s", raw)
	}
	return s.String(), nil
}

// Normalize canonicalises every setting and parses the palette.
func Normalize(values Settings) (Settings, error) {
	var err error
	values.Strategy, err = CanonicalizeStrategy(values.Strategy)
	if err != nil {
		return values, err
	}
	if err := engineopts.ValidateMinRatio(values.MinRatio); err != nil {
		return values, err
	}
	values.Output, err = engineopts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Color = mode.String()
	values.Palette, err = colorutil.ParsePalette(values.PaletteSpecs)
	if err != nil {
		return values, err
	}
	return values, nil
}
