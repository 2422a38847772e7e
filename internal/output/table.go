package output

import (
	"io"
	"strings"

	"github.com/phyten/hsbcontrast/internal/engine"
	"github.com/phyten/hsbcontrast/internal/termcolor"
	"github.com/phyten/hsbcontrast/internal/textutil"
)

const columnGap = "  "

// TableOptions controls the aligned terminal table.
type TableOptions struct {
	Color   bool
	Profile termcolor.Profile
	Scheme  termcolor.Scheme
	// MaxWidth truncates every cell to this many cells. Zero means unlimited.
	MaxWidth int
}

// WriteTable renders items as space-aligned columns. Alignment is computed on
// visible width, so colored and wide cells line up.
func WriteTable(w io.Writer, items []engine.Item, sel FieldSelection, opts TableOptions) error {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, Headers(sel.Fields))
	for _, it := range items {
		row := RowValues(it, sel.Fields)
		for i := range row {
			row[i] = flattenCell(row[i])
			if opts.MaxWidth > 0 {
				row[i] = textutil.TruncateByWidth(row[i], opts.MaxWidth, "…")
			}
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(sel.Fields))
	for _, row := range rows {
		for i, cell := range row {
			if cw := textutil.VisibleWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var b strings.Builder
	for r, row := range rows {
		b.Reset()
		for i, cell := range row {
			var styled string
			if r == 0 {
				styled = termcolor.Apply(termcolor.HeaderStyle(), cell, opts.Color)
			} else {
				styled = styleCell(items[r-1], sel.Fields[i].Key, cell, opts)
			}
			if i == len(row)-1 {
				b.WriteString(styled)
				continue
			}
			b.WriteString(textutil.PadRight(styled, widths[i]))
			b.WriteString(columnGap)
		}
		line := strings.TrimRight(b.String(), " ")
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func styleCell(it engine.Item, key, cell string, opts TableOptions) string {
	if !opts.Color {
		return cell
	}
	switch key {
	case "pass":
		ok := it.Pass && it.Error == ""
		return termcolor.Apply(termcolor.VerdictStyle(ok, opts.Scheme, opts.Profile), cell, true)
	case "hex":
		return termcolor.Apply(termcolor.SwatchStyle(it.Adjusted.Color(), opts.Profile), cell, true)
	case "error":
		return termcolor.Apply(termcolor.Style{Dim: true}, cell, true)
	}
	return cell
}
