package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/hsbcontrast/internal/engine"
)

// Field is one output column.
type Field struct {
	Key    string
	Header string
}

// FieldSelection is the ordered set of columns to render.
type FieldSelection struct {
	Fields []Field
}

var fieldHeaders = map[string]string{
	"label":    "LABEL",
	"fg":       "FG",
	"bg":       "BG",
	"adjusted": "ADJUSTED",
	"hex":      "HEX",
	"before":   "BEFORE",
	"after":    "AFTER",
	"min":      "MIN",
	"strategy": "STRATEGY",
	"changed":  "CHANGED",
	"pass":     "PASS",
	"error":    "ERROR",
}

var fieldAliases = map[string]string{
	"foreground":   "fg",
	"background":   "bg",
	"ratio_before": "before",
	"ratio_after":  "after",
	"ratio":        "after",
	"min_ratio":    "min",
	"verdict":      "pass",
}

// DefaultFieldKeys is the column set used when no --fields value is given.
var DefaultFieldKeys = []string{"label", "fg", "bg", "adjusted", "hex", "before", "after", "pass"}

// ResolveFields parses a comma separated column list. An empty list selects
// DefaultFieldKeys, plus the error column when withError is set.
func ResolveFields(raw string, withError bool) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		keys := append([]string(nil), DefaultFieldKeys...)
		if withError {
			keys = append(keys, "error")
		}
		return selectionFor(keys), nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
		}
		if canonical, ok := fieldAliases[name]; ok {
			name = canonical
		}
		if _, ok := fieldHeaders[name]; !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", strings.TrimSpace(part))
		}
		keys = append(keys, name)
	}
	return selectionFor(keys), nil
}

func selectionFor(keys []string) FieldSelection {
	sel := FieldSelection{Fields: make([]Field, 0, len(keys))}
	for _, key := range keys {
		sel.Fields = append(sel.Fields, Field{Key: key, Header: fieldHeaders[key]})
	}
	return sel
}

// Headers returns the header row for fields.
func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

// RowValues returns the raw cell values of it for fields.
func RowValues(it engine.Item, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = FieldValue(it, f.Key)
	}
	return out
}

// FieldValue formats a single column of it. Missing ratios render as "".
func FieldValue(it engine.Item, key string) string {
	switch key {
	case "label":
		return it.Label
	case "fg":
		return it.Foreground.Spec
	case "bg":
		return it.Background.Spec
	case "adjusted":
		return it.Adjusted.Spec
	case "hex":
		return it.Adjusted.Hex
	case "before":
		return formatRatio(it.RatioBefore)
	case "after":
		return formatRatio(it.RatioAfter)
	case "min":
		return strconv.FormatFloat(it.MinRatio, 'g', -1, 64)
	case "strategy":
		return it.Strategy
	case "changed":
		return strconv.FormatBool(it.Changed)
	case "pass":
		return Verdict(it)
	case "error":
		return it.Error
	default:
		return ""
	}
}

// Verdict is PASS, FAIL or ERROR.
func Verdict(it engine.Item) string {
	switch {
	case it.Error != "":
		return "ERROR"
	case it.Pass:
		return "PASS"
	default:
		return "FAIL"
	}
}

// FormatRatio prints a contrast ratio the way every output format shows it.
func FormatRatio(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

func formatRatio(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatRatio(*v)
}

func flattenCell(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\r", " ", "\n", " ", "\t", " ").Replace(s)
}
