package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/phyten/hsbcontrast/internal/engine"
)

// Write renders res in format, which must already be normalised
// (table, tsv, json, csv, md or ndjson).
func Write(w io.Writer, format string, res *engine.Result, sel FieldSelection, table TableOptions) error {
	switch format {
	case "json":
		return WriteJSON(w, res)
	case "ndjson":
		return WriteNDJSON(w, res.Items)
	case "csv":
		return WriteCSV(w, res.Items, sel)
	case "tsv":
		return WriteTSV(w, res.Items, sel)
	case "md":
		return WriteMarkdownTable(w, res.Items, sel)
	case "table", "":
		return WriteTable(w, res.Items, sel, table)
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteNDJSON writes one compact JSON object per item.
func WriteNDJSON(w io.Writer, items []engine.Item) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i := range items {
		if err := enc.Encode(&items[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV renders items as RFC 4180 CSV with CRLF line endings. Cells keep
// their line breaks; the writer quotes them.
func WriteCSV(w io.Writer, items []engine.Item, sel FieldSelection) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	records := make([][]string, 0, len(items)+1)
	records = append(records, Headers(sel.Fields))
	for _, it := range items {
		records = append(records, RowValues(it, sel.Fields))
	}
	return cw.WriteAll(records)
}
