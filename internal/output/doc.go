// Package output provides structured output handling for the bomkit CLI.
//
// This package handles both human-readable and JSON output formats so that
// every command works equally well for an operator at a terminal and for
// automated pipelines consuming --json output.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches
// format based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Export complete"})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling
// that automatically disables when output is piped.
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, missing or bad BOM file)
//	output.ExitSystemError // 2: System error (artifact write failed)
//	output.ExitCheckFailed // 3: Failed validation check under --strict
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("BOM file not found: acme.json")
//	output.NewSystemError("failed to write artifact")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
