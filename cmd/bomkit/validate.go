// Package main provides the entry point for the bomkit CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridworks/bomkit/internal/bom"
	"github.com/gridworks/bomkit/internal/export"
	"github.com/gridworks/bomkit/internal/output"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	var strictFlag bool

	cmd := &cobra.Command{
		Use:   "validate <bom-file>",
		Short: "Report the BOM validation checklist",
		Long: `Report the validation checklist carried by a BOM document.

Each fixed check renders as pass, fail, or not-checked, followed by any
builder warnings. The checks are read from the document; bomkit does not
re-derive them.

Examples:
  bomkit validate planset.json           # Print the checklist
  bomkit validate planset.json --strict  # Non-zero exit if any check failed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, strictFlag)
		},
	}

	cmd.Flags().BoolVar(&strictFlag, "strict", false, "Exit non-zero when any check is explicitly false")

	return cmd
}

// runValidate executes the validate command.
func runValidate(cmd *cobra.Command, args []string, strictFlag bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	if len(args) != 1 {
		err := output.NewUserError("usage: bomkit validate <bom-file>")
		printer.Error(err)
		return err
	}

	doc, err := bom.Load(args[0])
	if err != nil {
		printer.Error(err)
		return err
	}

	failed := countFailedChecks(doc.Validation)

	if printer.IsJSON() {
		if err := writeValidateJSON(printer, doc.Validation, failed); err != nil {
			return err
		}
	} else {
		writeValidateHuman(printer, doc.Validation, failed)
	}

	if strictFlag && failed > 0 {
		return output.NewCheckFailedError(fmt.Sprintf("%d validation check(s) failed", failed))
	}
	return nil
}

// countFailedChecks counts checks that are explicitly false.
// Absent checks are not failures.
func countFailedChecks(validation bom.Validation) int {
	failed := 0
	for _, check := range validation.Checks() {
		if check.Result != nil && !*check.Result {
			failed++
		}
	}
	return failed
}

// writeValidateJSON emits the checklist as structured output.
func writeValidateJSON(printer *output.Printer, validation bom.Validation, failed int) error {
	type checkResult struct {
		Key    string `json:"key"`
		Label  string `json:"label"`
		Passed *bool  `json:"passed"`
	}

	checks := make([]checkResult, 0, 3)
	for _, check := range validation.Checks() {
		checks = append(checks, checkResult{Key: check.Key, Label: check.Label, Passed: check.Result})
	}

	return printer.WriteJSON(map[string]any{
		"checks":   checks,
		"warnings": validation.Warnings,
		"failed":   failed,
	})
}

// writeValidateHuman prints the checklist, warnings, and a summary line.
func writeValidateHuman(printer *output.Printer, validation bom.Validation, failed int) {
	for _, check := range validation.Checks() {
		printer.Print("%s %s\n", export.CheckMarker(check.Result), check.Label)
	}
	for _, warning := range validation.Warnings {
		printer.Print("%s %s\n", export.MarkerWarning, warning)
	}

	printer.Println()
	if failed > 0 {
		printer.Print("%d check(s) failed\n", failed)
		return
	}
	printer.Println("No failed checks")
}
