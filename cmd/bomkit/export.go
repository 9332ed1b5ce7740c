// Package main provides the entry point for the bomkit CLI.
package main

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridworks/bomkit/internal/bom"
	"github.com/gridworks/bomkit/internal/export"
	"github.com/gridworks/bomkit/internal/output"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "export <bom-file>",
		Short: "Export a BOM to CSV, Markdown, and JSON artifacts",
		Long: `Export a BOM document to all three artifact formats.

Artifacts are named after the input file with its extension stripped:
<base>.csv, <base>.md, and <base>_pretty.json. By default they are
written next to the input file.

Examples:
  bomkit export planset.json              # Write artifacts next to the input
  bomkit export planset.json --out dist/  # Write artifacts to dist/
  bomkit export planset.yaml --json       # Structured output for pipelines`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, outFlag)
		},
	}

	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory (default: alongside the input file)")

	return cmd
}

// runExport executes the export command: load once, then fan out to the
// three artifacts in fixed order (CSV, Markdown, JSON).
func runExport(cmd *cobra.Command, args []string, outFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	if len(args) != 1 {
		err := output.NewUserError("usage: bomkit export <bom-file>")
		printer.Error(err)
		return err
	}
	inputPath := args[0]

	doc, err := bom.Load(inputPath)
	if err != nil {
		printer.Error(err)
		return err
	}

	artifacts := export.PlanArtifacts(inputPath, outFlag)
	if err := export.WriteAll(doc, artifacts, time.Now()); err != nil {
		printer.Error(err)
		return err
	}

	return reportArtifacts(printer, artifacts, len(doc.Items))
}

// reportArtifacts prints the per-artifact confirmations and the closing
// summary of intended downstream uses.
func reportArtifacts(printer *output.Printer, artifacts export.Artifacts, itemCount int) error {
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"artifacts": artifacts,
			"items":     itemCount,
		})
	}

	printer.Print("Wrote %s\n", artifacts.CSV)
	printer.Print("Wrote %s\n", artifacts.Markdown)
	printer.Print("Wrote %s\n", artifacts.JSON)
	printer.Println()
	printer.Println("Next steps:")
	printer.Print("  %s: import into the inventory system\n", filepath.Base(artifacts.CSV))
	printer.Print("  %s: paste into the project documentation\n", filepath.Base(artifacts.Markdown))
	printer.Print("  %s: sync via the fulfillment API\n", filepath.Base(artifacts.JSON))

	return nil
}
