package termcolor

import (
	"fmt"
	"strings"
)

// Style is a set of SGR attributes. For each of foreground and background the
// most precise color set wins: True, then 256, then Basic.
type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FGBasic   *int
	FG256     *int
	FGTrue    *[3]uint8
	BGBasic   *int
	BG256     *int
	BGTrue    *[3]uint8
}

// IsZero reports whether s emits no escape codes.
func (s Style) IsZero() bool {
	return len(sgrCodes(s)) == 0
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 5)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if c := colorCode(38, 30, s.FGTrue, s.FG256, s.FGBasic); c != "" {
		codes = append(codes, c)
	}
	if c := colorCode(48, 40, s.BGTrue, s.BG256, s.BGBasic); c != "" {
		codes = append(codes, c)
	}
	return codes
}

func colorCode(extended, basic int, rgb *[3]uint8, idx256, idxBasic *int) string {
	switch {
	case rgb != nil:
		return fmt.Sprintf("%d;2;%d;%d;%d", extended, rgb[0], rgb[1], rgb[2])
	case idx256 != nil:
		return fmt.Sprintf("%d;5;%d", extended, *idx256)
	case idxBasic != nil:
		return fmt.Sprintf("%d", basic+*idxBasic)
	}
	return ""
}
