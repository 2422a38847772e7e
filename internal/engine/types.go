package engine

import (
	"github.com/phyten/hsbcontrast/internal/colorutil"
)

// Swatch は 1 色分の成分と表示用の情報を表す
type Swatch struct {
	Spec       string  `json:"spec"`
	Space      string  `json:"space"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
	Alpha      float64 `json:"alpha"`
	Hex        string  `json:"hex,omitempty"`
	Pattern    string  `json:"pattern,omitempty"`
}

// Item は前景色と背景色の 1 組の評価結果
type Item struct {
	Label       string   `json:"label,omitempty"`
	Foreground  Swatch   `json:"foreground"`
	Background  Swatch   `json:"background"`
	Adjusted    Swatch   `json:"adjusted"`
	RatioBefore *float64 `json:"ratio_before"`
	RatioAfter  *float64 `json:"ratio_after"`
	MinRatio    float64  `json:"min_ratio"`
	Strategy    string   `json:"strategy"`
	Changed     bool     `json:"changed"`
	Pass        bool     `json:"pass"`
	OutOfRange  bool     `json:"out_of_range,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Options は実行オプション
type Options struct {
	Foreground string
	Background string
	MinRatio   float64
	Strategy   string // legacy|exact
	Clamp      bool
	Palette    map[string]colorutil.Color `json:"-"`
}

// Result は出力
type Result struct {
	Items      []Item  `json:"items"`
	MinRatio   float64 `json:"min_ratio"`
	Strategy   string  `json:"strategy"`
	Clamp      bool    `json:"clamp"`
	Total      int     `json:"total"`
	ErrorCount int     `json:"error_count"`
}

// Color は Swatch を colorutil.Color に戻す
func (s Swatch) Color() colorutil.Color {
	if s.Space == colorutil.SpacePattern.String() {
		return colorutil.PatternColor(s.Pattern)
	}
	return colorutil.HSBA(s.Hue, s.Saturation, s.Brightness, s.Alpha)
}
