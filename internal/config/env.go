package config

import (
	"errors"
	"strings"

	engineopts "github.com/phyten/hsbcontrast/internal/engine/opts"
)

const (
	EnvMinRatio = "CONTRAST_MIN_RATIO"
	EnvStrategy = "CONTRAST_STRATEGY"
	EnvClamp    = "CONTRAST_CLAMP"
	EnvOutput   = "CONTRAST_OUTPUT"
	EnvColor    = "CONTRAST_COLOR"
)

// FromEnv builds a Config layer from CONTRAST_* variables. Blank values are
// skipped; every malformed value is reported in the joined error.
func FromEnv(getenv func(string) string) (Config, error) {
	var cfg Config
	if getenv == nil {
		return cfg, nil
	}
	c := &cfg.Contrast
	bindings := []struct {
		key string
		set func(raw string) error
	}{
		{EnvMinRatio, func(raw string) error {
			// Range checks happen in Normalize so every input path shares one message.
			v, err := engineopts.ParseFloatInRange(raw, EnvMinRatio, 0, -1)
			if err == nil {
				c.MinRatio = &v
			}
			return err
		}},
		{EnvStrategy, func(raw string) error { c.Strategy = &raw; return nil }},
		{EnvClamp, func(raw string) error {
			v, err := engineopts.ParseBool(raw, EnvClamp)
			if err == nil {
				c.Clamp = &v
			}
			return err
		}},
		{EnvOutput, func(raw string) error { c.Output = &raw; return nil }},
		{EnvColor, func(raw string) error { c.Color = &raw; return nil }},
	}

	var errs []error
	for _, b := range bindings {
		raw := strings.TrimSpace(getenv(b.key))
		if raw == "" {
			continue
		}
		if err := b.set(raw); err != nil {
			errs = append(errs, err)
		}
	}
	return cfg, errors.Join(errs...)
}
