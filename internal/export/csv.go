// Package export renders a BOM document to its three artifact formats.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gridworks/bomkit/internal/bom"
	"github.com/gridworks/bomkit/internal/output"
)

// csvHeader is the fixed column order for the tabular export,
// irrespective of field order in the source document.
var csvHeader = []string{
	"category", "brand", "model", "description",
	"qty", "unitSpec", "unitLabel", "source", "flags",
}

// WriteCSV writes the tabular export of doc to w: the fixed header row
// followed by exactly one row per item, nothing after.
//
// Rows sort by the category's canonical rank first, then by brand.
// Unknown categories all share a sentinel rank after every known
// category; order among themselves follows input order, which is an
// intentionally different policy from the Markdown section ordering.
func WriteCSV(w io.Writer, doc *bom.Document) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, item := range sortedItems(doc.Items) {
		if err := writer.Write(itemRow(item)); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// sortedItems returns a copy of items in tabular output order.
func sortedItems(items []bom.Item) []bom.Item {
	sorted := make([]bom.Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Category.Rank(), sorted[j].Category.Rank()
		if ri != rj {
			return ri < rj
		}
		return sorted[i].Brand < sorted[j].Brand
	})

	return sorted
}

// itemRow maps an item onto the fixed column set. Missing scalars
// render as empty strings; flags flatten to one comma-joined field.
func itemRow(item bom.Item) []string {
	return []string{
		string(item.Category),
		item.Brand,
		item.Model,
		item.Description,
		item.Qty.String(),
		item.UnitSpec,
		item.UnitLabel,
		item.Source,
		strings.Join(item.Flags, ", "),
	}
}

// ExportCSV writes the tabular export to path, creating or overwriting it.
func ExportCSV(doc *bom.Document, path string) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, doc); err != nil {
		return output.NewSystemError("failed to render CSV: " + err.Error())
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return output.NewSystemErrorWithCause("failed to write file "+path, err)
	}

	return nil
}
