package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gridworks/bomkit/internal/bom"
	"github.com/gridworks/bomkit/internal/output"
)

// Rendering markers for the report. Shared with the show and validate
// commands so every surface renders check state the same way.
const (
	MarkerPass       = "✅"
	MarkerFail       = "❌"
	MarkerNotChecked = "⬜"
	MarkerWarning    = "⚠"

	// missingCell is the placeholder for absent brand/model cells.
	missingCell = "—"
)

// reportTableHeader is the per-category item table header.
var reportTableHeader = []string{"Brand", "Model", "Description", "Qty", "Spec", "Source"}

// FormatMarkdown renders the document as a Markdown report.
// The generation time is passed in rather than read from a global clock
// so the report is reproducible under test.
//
// Section order: project header, one section per non-empty category
// (canonical categories first, then unknown categories in the order
// first encountered), and always a closing Validation section.
func FormatMarkdown(doc *bom.Document, generatedAt time.Time) string {
	var builder strings.Builder

	writeProjectHeader(&builder, doc.Project, generatedAt)
	writeCategorySections(&builder, doc.Items)
	writeValidationSection(&builder, doc.Validation)

	return builder.String()
}

// writeProjectHeader writes the title and project metadata block.
func writeProjectHeader(builder *strings.Builder, project bom.Project, generatedAt time.Time) {
	customer := project.Customer
	if customer == "" {
		customer = "Unknown"
	}

	builder.WriteString("# Bill of Materials\n\n")
	fmt.Fprintf(builder, "**Customer:** %s\n", customer)
	fmt.Fprintf(builder, "**Address:** %s\n", project.Address)
	fmt.Fprintf(builder, "**System:** %s modules | %s kWdc / %s kWac\n",
		project.ModuleCount, project.SystemSizeKwdc, project.SystemSizeKwac)
	fmt.Fprintf(builder, "**Planset:** rev %s | stamped %s\n", project.PlansetRev, project.StampDate)
	fmt.Fprintf(builder, "**Utility:** %s | AHJ: %s\n", project.Utility, project.AHJ)
	fmt.Fprintf(builder, "**Generated:** %s\n", generatedAt.Format("2006-01-02 15:04"))
}

// writeCategorySections groups items by category and writes one section
// per non-empty bucket. Items with no category fall into the OTHER
// bucket; unrecognized categories keep their literal value as the key.
func writeCategorySections(builder *strings.Builder, items []bom.Item) {
	buckets := make(map[bom.Category][]bom.Item)
	var extraOrder []bom.Category

	for _, item := range items {
		key := item.Category
		if key == "" {
			key = bom.CategoryOther
		}
		if _, seen := buckets[key]; !seen && !key.Known() {
			extraOrder = append(extraOrder, key)
		}
		buckets[key] = append(buckets[key], item)
	}

	for _, category := range bom.CanonicalOrder {
		writeCategorySection(builder, category, buckets[category])
	}
	for _, category := range extraOrder {
		writeCategorySection(builder, category, buckets[category])
	}
}

// writeCategorySection writes one category heading and its item table.
// Empty buckets are skipped entirely.
func writeCategorySection(builder *strings.Builder, category bom.Category, items []bom.Item) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(builder, "\n## %s\n\n", category.Label())
	writeTableRow(builder, reportTableHeader)
	writeTableRow(builder, []string{"---", "---", "---", "---", "---", "---"})

	for _, item := range items {
		writeTableRow(builder, []string{
			orMissing(item.Brand),
			orMissing(item.Model),
			describeItem(item),
			item.Qty.String(),
			item.UnitSpec,
			item.Source,
		})
	}
}

// writeTableRow writes one pipe-delimited Markdown table row.
func writeTableRow(builder *strings.Builder, cells []string) {
	builder.WriteString("|")
	for _, cell := range cells {
		builder.WriteString(" " + cell + " |")
	}
	builder.WriteString("\n")
}

// describeItem returns the description cell, suffixed with a warning
// marker and the comma-joined flags when the item carries any.
func describeItem(item bom.Item) string {
	if len(item.Flags) == 0 {
		return item.Description
	}
	flags := MarkerWarning + " " + strings.Join(item.Flags, ", ")
	if item.Description == "" {
		return flags
	}
	return item.Description + " " + flags
}

// orMissing substitutes the placeholder dash for an absent cell value.
func orMissing(value string) string {
	if value == "" {
		return missingCell
	}
	return value
}

// writeValidationSection writes the fixed checks and then every warning
// in document order. The report always ends with this section.
func writeValidationSection(builder *strings.Builder, validation bom.Validation) {
	builder.WriteString("\n## Validation\n\n")

	for _, check := range validation.Checks() {
		fmt.Fprintf(builder, "- %s %s\n", CheckMarker(check.Result), check.Label)
	}
	for _, warning := range validation.Warnings {
		fmt.Fprintf(builder, "- %s %s\n", MarkerWarning, warning)
	}
}

// CheckMarker maps a boolean-or-absent check result to its marker.
func CheckMarker(result *bool) string {
	switch {
	case result == nil:
		return MarkerNotChecked
	case *result:
		return MarkerPass
	default:
		return MarkerFail
	}
}

// ExportMarkdown writes the Markdown report to path, creating or
// overwriting it.
func ExportMarkdown(doc *bom.Document, path string, generatedAt time.Time) error {
	content := FormatMarkdown(doc, generatedAt)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return output.NewSystemErrorWithCause("failed to write file "+path, err)
	}
	return nil
}
