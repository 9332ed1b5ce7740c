// Package main provides the entry point for the bomkit CLI.
package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridworks/bomkit/internal/bom"
	"github.com/gridworks/bomkit/internal/export"
	"github.com/gridworks/bomkit/internal/output"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <bom-file>",
		Short: "Display a BOM summary in the terminal",
		Long: `Display a BOM document as a terminal summary without writing artifacts.

Examples:
  bomkit show planset.json         # Human-readable summary
  bomkit show planset.json --json  # Full document as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	if len(args) != 1 {
		err := output.NewUserError("usage: bomkit show <bom-file>")
		printer.Error(err)
		return err
	}

	doc, err := bom.Load(args[0])
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(doc)
	}

	outputShowProject(printer, doc.Project)
	outputShowItems(printer, doc.Items)
	outputShowValidation(printer, doc.Validation)
	return nil
}

// outputShowProject prints the project metadata section.
func outputShowProject(printer *output.Printer, project bom.Project) {
	customer := project.Customer
	if customer == "" {
		customer = "Unknown"
	}

	printer.Section("Project")
	printer.KeyValue("Customer", customer)
	if project.Address != "" {
		printer.KeyValue("Address", project.Address)
	}
	if !project.SystemSizeKwdc.IsZero() || !project.SystemSizeKwac.IsZero() {
		printer.KeyValue("System", project.SystemSizeKwdc.String()+" kWdc / "+project.SystemSizeKwac.String()+" kWac")
	}
	if !project.ModuleCount.IsZero() {
		printer.KeyValue("Modules", project.ModuleCount.String())
	}
	if project.Utility != "" {
		printer.KeyValue("Utility", project.Utility)
	}
	if project.AHJ != "" {
		printer.KeyValue("AHJ", project.AHJ)
	}
}

// outputShowItems prints the item table in document order.
func outputShowItems(printer *output.Printer, items []bom.Item) {
	printer.Section("Items (" + strconv.Itoa(len(items)) + ")")
	if len(items) == 0 {
		printer.Println("none")
		return
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Category.Label(),
			item.Brand,
			item.Model,
			item.Qty.String(),
			strings.Join(item.Flags, ", "),
		})
	}
	printer.Table([]string{"Category", "Brand", "Model", "Qty", "Flags"}, rows)
}

// outputShowValidation prints the checklist and warnings.
func outputShowValidation(printer *output.Printer, validation bom.Validation) {
	printer.Section("Validation")
	for _, check := range validation.Checks() {
		printer.Print("%s %s\n", export.CheckMarker(check.Result), check.Label)
	}
	for _, warning := range validation.Warnings {
		printer.Print("%s %s\n", export.MarkerWarning, warning)
	}
}
