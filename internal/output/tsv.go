package output

import (
	"io"
	"strings"

	"github.com/phyten/hsbcontrast/internal/engine"
)

// WriteTSV renders items as tab separated values. Tabs and line breaks inside
// cells are replaced with spaces so every item stays on one line.
func WriteTSV(w io.Writer, items []engine.Item, sel FieldSelection) error {
	if _, err := io.WriteString(w, strings.Join(Headers(sel.Fields), "\t")+"\n"); err != nil {
		return err
	}
	for _, it := range items {
		row := RowValues(it, sel.Fields)
		for i := range row {
			row[i] = flattenCell(row[i])
		}
		if _, err := io.WriteString(w, strings.Join(row, "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
