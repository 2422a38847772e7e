package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/phyten/hsbcontrast/internal/engine/opts"
)

// contrastFields maps every accepted spelling of a contrast key to the
// setter that stores it. Keys are compared after normalizeKey.
var contrastFields = map[string]func(*ContrastConfig, any) error{
	"min_ratio":          setMinRatio,
	"min_contrast_ratio": setMinRatio,
	"ratio":              setMinRatio,
	"strategy":           stringField(func(c *ContrastConfig) **string { return &c.Strategy }),
	"clamp":              setClamp,
	"output":             stringField(func(c *ContrastConfig) **string { return &c.Output }),
	"color":              stringField(func(c *ContrastConfig) **string { return &c.Color }),
}

// Load reads a yaml, toml or json config file. An empty path yields an
// empty Config.
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	raw, err := unmarshalByExt(filepath.Ext(path), data)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg, err := decodeDocument(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func unmarshalByExt(ext string, data []byte) (map[string]any, error) {
	var raw map[string]any
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported config extension: %q", ext)
	}
	return raw, err
}

// decodeDocument accepts contrast keys either under a "contrast" table or
// at the top level. The two forms may be mixed.
func decodeDocument(raw map[string]any) (Config, error) {
	var cfg Config
	for key, value := range raw {
		switch norm := normalizeKey(key); norm {
		case "contrast":
			section, err := asTable(value)
			if err != nil {
				return cfg, fmt.Errorf("contrast: %w", err)
			}
			for subKey, subValue := range section {
				if err := setContrastKey(&cfg.Contrast, subKey, subValue); err != nil {
					return cfg, fmt.Errorf("contrast: %w", err)
				}
			}
		case "palette":
			palette, err := decodePalette(value)
			if err != nil {
				return cfg, fmt.Errorf("palette: %w", err)
			}
			cfg.Palette = palette
		default:
			if _, ok := contrastFields[norm]; !ok {
				return cfg, fmt.Errorf("unknown config key: %s", key)
			}
			if err := setContrastKey(&cfg.Contrast, key, value); err != nil {
				return cfg, err
			}
		}
	}
	return cfg, nil
}

func setContrastKey(dst *ContrastConfig, key string, value any) error {
	set, ok := contrastFields[normalizeKey(key)]
	if !ok {
		return fmt.Errorf("unknown key: %s", key)
	}
	if err := set(dst, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func setMinRatio(dst *ContrastConfig, value any) error {
	n, err := asFloat(value)
	if err != nil {
		return err
	}
	dst.MinRatio = &n
	return nil
}

func setClamp(dst *ContrastConfig, value any) error {
	var b bool
	switch v := value.(type) {
	case bool:
		b = v
	case string:
		parsed, err := engineopts.ParseBool(v, "clamp")
		if err != nil {
			return err
		}
		b = parsed
	default:
		return fmt.Errorf("expected bool, got %T", value)
	}
	dst.Clamp = &b
	return nil
}

func stringField(field func(*ContrastConfig) **string) func(*ContrastConfig, any) error {
	return func(dst *ContrastConfig, value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		s = strings.TrimSpace(s)
		*field(dst) = &s
		return nil
	}
}

// decodePalette accepts name -> "spec" or name -> [h, s, b(, a)].
func decodePalette(value any) (map[string]string, error) {
	table, err := asTable(value)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(table))
	for name, entry := range table {
		switch v := entry.(type) {
		case string:
			out[name] = strings.TrimSpace(v)
		case []any:
			if len(v) < 3 || len(v) > 4 {
				return nil, fmt.Errorf("%s: expected 3 or 4 components, got %d", name, len(v))
			}
			parts := make([]string, len(v))
			for i, component := range v {
				n, err := asFloat(component)
				if err != nil {
					return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
				}
				parts[i] = strconv.FormatFloat(n, 'g', -1, 64)
			}
			out[name] = strings.Join(parts, ",")
		default:
			return nil, fmt.Errorf("%s: expected string or list, got %T", name, entry)
		}
	}
	return out, nil
}

func asFloat(value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return engineopts.ParseFloatInRange(v, "value", 0, -1)
	case nil:
		return 0, fmt.Errorf("value cannot be null")
	default:
		return 0, fmt.Errorf("expected number, got %T", value)
	}
}

// asTable normalizes the map shapes the three decoders produce.
func asTable(value any) (map[string]any, error) {
	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = item
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected table, got %T", value)
	}
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}
