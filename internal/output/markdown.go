package output

import (
	"io"
	"strings"

	"github.com/phyten/hsbcontrast/internal/engine"
)

var numericFields = map[string]bool{"before": true, "after": true, "min": true}

// WriteMarkdownTable renders items as a GitHub Flavored Markdown table.
// Ratio columns are right-aligned.
func WriteMarkdownTable(w io.Writer, items []engine.Item, sel FieldSelection) error {
	sep := make([]string, len(sel.Fields))
	for i, f := range sel.Fields {
		sep[i] = "---"
		if numericFields[f.Key] {
			sep[i] = "---:"
		}
	}
	if err := writeMarkdownRow(w, Headers(sel.Fields)); err != nil {
		return err
	}
	if err := writeMarkdownRow(w, sep); err != nil {
		return err
	}
	for _, it := range items {
		row := RowValues(it, sel.Fields)
		for i := range row {
			row[i] = escapeMarkdownCell(row[i])
		}
		if err := writeMarkdownRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string) error {
	_, err := io.WriteString(w, "| "+strings.Join(cells, " | ")+" |\n")
	return err
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return strings.ReplaceAll(s, "|", `\|`)
}
