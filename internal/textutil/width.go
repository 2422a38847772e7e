// Package textutil measures and pads strings by terminal cell width so that
// colored, wide and combined characters line up in tables.
package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CSI sequences (colors) and OSC sequences (hyperlinks, titles).
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns the number of terminal cells s occupies.
func VisibleWidth(s string) int {
	width := 0
	eachGrapheme(StripANSI(s), func(_ string, w int) bool {
		width += w
		return true
	})
	return width
}

// TruncateByWidth cuts s so it fits in w cells without splitting a grapheme
// cluster. When s is cut, ellipsis is appended if it fits. Escape sequences
// are dropped from truncated output.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if w <= 0 || s == "" {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	budget := w
	if ellW := runewidth.StringWidth(ellipsis); ellW <= w {
		budget = w - ellW
	} else {
		ellipsis = ""
	}
	var b strings.Builder
	used := 0
	eachGrapheme(StripANSI(s), func(seg string, segW int) bool {
		if used+segW > budget {
			return false
		}
		b.WriteString(seg)
		used += segW
		return true
	})
	return b.String() + ellipsis
}

// PadRight pads s with spaces up to w visible cells.
func PadRight(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// PadLeft right-aligns s in w visible cells.
func PadLeft(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func eachGrapheme(s string, fn func(seg string, width int) bool) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		seg := g.Str()
		if !fn(seg, runewidth.StringWidth(seg)) {
			return
		}
	}
}
