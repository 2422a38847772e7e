package opts

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/phyten/hsbcontrast/internal/colorutil"
	"github.com/phyten/hsbcontrast/internal/engine"
)

const (
	minRatioFloor = 1.0
	minRatioCeil  = 21.0
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Defaults returns the shared baseline options for both CLI and Web inputs.
func Defaults() engine.Options {
	return engine.Options{
		Foreground: "",
		Background: "",
		MinRatio:   colorutil.MinContrastRatio,
		Strategy:   "legacy",
		Clamp:      false,
	}
}

// ApplyWebQueryToOptions copies recognised values from the query string into the
// provided options. Validation happens separately via NormalizeAndValidate.
func ApplyWebQueryToOptions(def engine.Options, q url.Values) (engine.Options, error) {
	out := def

	// Color specs may contain commas, so they are taken verbatim.
	if raw, ok := lastRawValue(q["fg"]); ok {
		out.Foreground = raw
	}
	if raw, ok := lastRawValue(q["bg"]); ok {
		out.Background = raw
	}
	if raw, ok := lastLiteralValue(q["min_ratio"]); ok {
		v, err := ParseFloatInRange(raw, "min_ratio", minRatioFloor, minRatioCeil)
		if err != nil {
			return out, err
		}
		out.MinRatio = v
	}
	if raw, ok := lastLiteralValue(q["strategy"]); ok {
		out.Strategy = raw
	}
	if raw, ok := lastLiteralValue(q["clamp"]); ok {
		v, err := ParseBool(raw, "clamp")
		if err != nil {
			return out, err
		}
		out.Clamp = v
	}

	return out, nil
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *engine.Options) error {
	o.Strategy = strings.ToLower(strings.TrimSpace(o.Strategy))
	switch o.Strategy {
	case "", "legacy":
		o.Strategy = "legacy"
	case "exact":
	default:
		return fmt.Errorf("invalid --strategy: %s", o.Strategy)
	}

	if o.MinRatio == 0 {
		o.MinRatio = colorutil.MinContrastRatio
	}
	if err := ValidateMinRatio(o.MinRatio); err != nil {
		return err
	}

	o.Foreground = strings.TrimSpace(o.Foreground)
	o.Background = strings.TrimSpace(o.Background)
	if o.Foreground == "" {
		return fmt.Errorf("foreground color is required")
	}
	return nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseFloatInRange parses a string into a finite float64 within [min, max].
// If max < min, the upper bound is ignored.
func ParseFloatInRange(raw, key string, min, max float64) (float64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid number for %s: %q", key, raw)
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("invalid number for %s: %q", key, raw)
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %g and %g", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %g", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %g and %g", key, min, max)
	}
	return n, nil
}

// ValidateMinRatio rejects ratios no pair of in-range brightnesses can produce.
func ValidateMinRatio(v float64) error {
	if math.IsNaN(v) || v < minRatioFloor || v > minRatioCeil {
		return fmt.Errorf("min_ratio must be between %g and %g", minRatioFloor, minRatioCeil)
	}
	return nil
}

// ParseMinRatio parses a min ratio using the bounds NormalizeAndValidate enforces.
func ParseMinRatio(raw, key string) (float64, error) {
	return ParseFloatInRange(raw, key, minRatioFloor, minRatioCeil)
}

// NormalizeOutput validates and lower-cases the CLI/Web output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "table":
		return "table", nil
	case "tsv", "json", "csv", "ndjson":
		return v, nil
	case "md", "markdown":
		return "md", nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated query parameters (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}

func lastRawValue(vals []string) (string, bool) {
	for i := len(vals) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(vals[i])
		if trimmed == "" {
			continue
		}
		return trimmed, true
	}
	return "", false
}
