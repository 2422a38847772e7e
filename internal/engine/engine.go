package engine

import (
	"fmt"
	"strings"

	"github.com/phyten/hsbcontrast/internal/colorutil"
)

// Pair is a labelled foreground/background combination.
type Pair struct {
	Label      string
	Foreground string
	Background string
}

// DemoPairs は demo サブコマンドと /api/demo が評価する 4 組
var DemoPairs = []Pair{
	{Label: "black on white", Foreground: "black", Background: "white"},
	{Label: "yellow on white", Foreground: "yellow", Background: "white"},
	{Label: "white on white", Foreground: "white", Background: "white"},
	{Label: "dark purple on black", Foreground: "hsb(0.8,1,0.15)", Background: "black"},
}

// Run は opts.Foreground と opts.Background を評価し、1 件の Item を持つ Result を返します。
//
// 色指定の解析に失敗した場合はエラーを返します。HSB に分解できない色
// (pattern 色) はエラーにせず Item.Error に記録します。
func Run(opts Options) (*Result, error) {
	strategy, err := colorutil.ParseStrategy(opts.Strategy)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.Foreground) == "" {
		return nil, fmt.Errorf("foreground color is required")
	}
	bgSpec := opts.Background
	if strings.TrimSpace(bgSpec) == "" {
		bgSpec = "white"
	}
	fg, err := colorutil.ParseColor(opts.Foreground, opts.Palette)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := colorutil.ParseColor(bgSpec, opts.Palette)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	it := Evaluate("", opts.Foreground, bgSpec, fg, bg, opts.MinRatio, strategy, opts.Clamp)
	return newResult([]Item{it}, opts, strategy), nil
}

// Demo evaluates DemoPairs. Palette entries in opts can shadow the stock names.
func Demo(opts Options) (*Result, error) {
	strategy, err := colorutil.ParseStrategy(opts.Strategy)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(DemoPairs))
	for _, p := range DemoPairs {
		fg, err := colorutil.ParseColor(p.Foreground, opts.Palette)
		if err != nil {
			return nil, fmt.Errorf("%s: foreground: %w", p.Label, err)
		}
		bg, err := colorutil.ParseColor(p.Background, opts.Palette)
		if err != nil {
			return nil, fmt.Errorf("%s: background: %w", p.Label, err)
		}
		items = append(items, Evaluate(p.Label, p.Foreground, p.Background, fg, bg, opts.MinRatio, strategy, opts.Clamp))
	}
	return newResult(items, opts, strategy), nil
}

// Evaluate adjusts fg against bg and reports both ratios.
func Evaluate(label, fgSpec, bgSpec string, fg, bg colorutil.Color, minRatio float64, strategy colorutil.Strategy, clamp bool) Item {
	if minRatio <= 0 {
		minRatio = colorutil.MinContrastRatio
	}
	it := Item{
		Label:      label,
		Foreground: newSwatch(fgSpec, fg),
		Background: newSwatch(bgSpec, bg),
		MinRatio:   minRatio,
		Strategy:   strategy.String(),
	}

	before, err := colorutil.ContrastRatio(fg, bg)
	if err != nil {
		it.Adjusted = newSwatch(fgSpec, fg)
		it.Error = err.Error()
		return it
	}
	it.RatioBefore = &before

	adjusted := colorutil.Adjust(fg, bg, minRatio, strategy)
	if clamp {
		adjusted = adjusted.Clamped()
	}
	it.Changed = adjusted != fg
	adjSpec := fgSpec
	if it.Changed {
		adjSpec = adjusted.String()
	}
	it.Adjusted = newSwatch(adjSpec, adjusted)

	after, err := colorutil.ContrastRatio(adjusted, bg)
	if err != nil {
		it.Error = err.Error()
		return it
	}
	it.RatioAfter = &after
	// A brightness outside [0, 1] has no displayable color, so it never passes.
	it.OutOfRange = adjusted.Brightness < 0 || adjusted.Brightness > 1
	it.Pass = after >= minRatio && !it.OutOfRange
	return it
}

func newSwatch(spec string, c colorutil.Color) Swatch {
	return Swatch{
		Spec:       strings.TrimSpace(spec),
		Space:      c.Space.String(),
		Hue:        c.Hue,
		Saturation: c.Saturation,
		Brightness: c.Brightness,
		Alpha:      c.Alpha,
		Hex:        c.Hex(),
		Pattern:    c.Pattern,
	}
}

func newResult(items []Item, opts Options, strategy colorutil.Strategy) *Result {
	minRatio := opts.MinRatio
	if minRatio <= 0 {
		minRatio = colorutil.MinContrastRatio
	}
	res := &Result{
		Items:    items,
		MinRatio: minRatio,
		Strategy: strategy.String(),
		Clamp:    opts.Clamp,
		Total:    len(items),
	}
	for _, it := range items {
		if it.Error != "" {
			res.ErrorCount++
		}
	}
	return res
}
