// Package export renders a BOM document to its three artifact formats.
//
// The package is a pure fan-out: one loaded document produces three
// independent artifacts, each complete and self-consistent with the
// source. Nothing is mutated; repeated exports of the same document are
// byte-identical apart from the injected Markdown timestamp.
//
// # Supported Formats
//
//   - CSV: flat table for spreadsheet and inventory-system import
//   - Markdown: readable report with category sections and a
//     validation checklist, for documentation
//   - JSON: indented structured document for API ingestion
//
// # CSV Export
//
//	export.ExportCSV(doc, "acme.csv")
//
// Fixed nine-column layout (category, brand, model, description, qty,
// unitSpec, unitLabel, source, flags); one row per item, sorted by
// canonical category rank then brand. Missing fields are empty strings
// and flags flatten to one comma-joined field.
//
// # Markdown Export
//
//	markdown := export.FormatMarkdown(doc, time.Now())
//	export.ExportMarkdown(doc, "acme.md", time.Now())
//
// The report groups items into one table per category, canonical
// categories first, and always closes with the validation checklist.
// The generation timestamp is an explicit parameter so tests can pin it.
//
// # JSON Export
//
//	export.ExportJSON(doc, "acme_pretty.json")
//
// Two-space indented serialization of the whole document; reloading the
// artifact yields an equivalent document. Equivalence covers the modeled
// fields, including string-vs-number form; fields outside the document
// schema are dropped at load time and never reach the artifact.
//
// # Ordering Asymmetry
//
// Unknown categories sort by a shared sentinel rank in CSV but keep
// first-encountered order as Markdown sections. The two policies are
// independently specified and deliberately not unified.
package export
