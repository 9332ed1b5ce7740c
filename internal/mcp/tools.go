package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gridworks/bomkit/internal/bom"
	"github.com/gridworks/bomkit/internal/export"
)

// InspectInput is the input for the inspect tool.
type InspectInput struct {
	Path string `json:"path" jsonschema:"path to the BOM file (JSON or YAML)"`
}

// CategoryCount is one per-category item tally.
type CategoryCount struct {
	Category string `json:"category" jsonschema:"raw category key"`
	Label    string `json:"label"    jsonschema:"display label for the category"`
	Count    int    `json:"count"    jsonschema:"number of items in the category"`
}

// InspectOutput is the output for the inspect tool.
type InspectOutput struct {
	Customer   string          `json:"customer,omitempty" jsonschema:"customer name from project metadata"`
	ItemCount  int             `json:"item_count"         jsonschema:"total number of BOM items"`
	Categories []CategoryCount `json:"categories"         jsonschema:"per-category item counts in report order"`
	Warnings   []string        `json:"warnings,omitempty" jsonschema:"builder warnings in document order"`
}

func handleInspect() mcp.ToolHandlerFor[InspectInput, InspectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input InspectInput) (*mcp.CallToolResult, InspectOutput, error) {
		doc, err := loadDocument(input.Path)
		if err != nil {
			return nil, InspectOutput{}, err
		}

		return nil, InspectOutput{
			Customer:   doc.Project.Customer,
			ItemCount:  len(doc.Items),
			Categories: countCategories(doc.Items),
			Warnings:   doc.Validation.Warnings,
		}, nil
	}
}

// countCategories tallies items per category bucket, canonical
// categories first, then unknown categories in encounter order.
func countCategories(items []bom.Item) []CategoryCount {
	counts := make(map[bom.Category]int)
	var extraOrder []bom.Category

	for _, item := range items {
		key := item.Category
		if key == "" {
			key = bom.CategoryOther
		}
		if _, seen := counts[key]; !seen && !key.Known() {
			extraOrder = append(extraOrder, key)
		}
		counts[key]++
	}

	result := make([]CategoryCount, 0, len(counts))
	for _, category := range bom.CanonicalOrder {
		if counts[category] > 0 {
			result = append(result, CategoryCount{
				Category: string(category),
				Label:    category.Label(),
				Count:    counts[category],
			})
		}
	}
	for _, category := range extraOrder {
		result = append(result, CategoryCount{
			Category: string(category),
			Label:    category.Label(),
			Count:    counts[category],
		})
	}
	return result
}

// ValidateInput is the input for the validate tool.
type ValidateInput struct {
	Path string `json:"path" jsonschema:"path to the BOM file (JSON or YAML)"`
}

// CheckResult is one validation check with its resolved status.
type CheckResult struct {
	Key    string `json:"key"    jsonschema:"check key from the BOM document"`
	Label  string `json:"label"  jsonschema:"human-readable check description"`
	Status string `json:"status" jsonschema:"pass, fail, or not_checked"`
}

// ValidateOutput is the output for the validate tool.
type ValidateOutput struct {
	Checks   []CheckResult `json:"checks"             jsonschema:"the three fixed checks in render order"`
	Warnings []string      `json:"warnings,omitempty" jsonschema:"builder warnings in document order"`
	Failed   int           `json:"failed"             jsonschema:"number of checks that are explicitly false"`
}

func handleValidate() mcp.ToolHandlerFor[ValidateInput, ValidateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, ValidateOutput, error) {
		doc, err := loadDocument(input.Path)
		if err != nil {
			return nil, ValidateOutput{}, err
		}

		out := ValidateOutput{Warnings: doc.Validation.Warnings}
		for _, check := range doc.Validation.Checks() {
			status := checkStatus(check.Result)
			if status == "fail" {
				out.Failed++
			}
			out.Checks = append(out.Checks, CheckResult{
				Key:    check.Key,
				Label:  check.Label,
				Status: status,
			})
		}
		return nil, out, nil
	}
}

// checkStatus maps a boolean-or-absent check result to a status string.
func checkStatus(result *bool) string {
	switch {
	case result == nil:
		return "not_checked"
	case *result:
		return "pass"
	default:
		return "fail"
	}
}

// ExportInput is the input for the export tool.
type ExportInput struct {
	Path   string `json:"path"              jsonschema:"path to the BOM file (JSON or YAML)"`
	OutDir string `json:"out_dir,omitempty" jsonschema:"destination directory (defaults to the input's directory)"`
}

// ExportOutput is the output for the export tool.
type ExportOutput struct {
	Artifacts export.Artifacts `json:"artifacts" jsonschema:"paths of the written CSV, Markdown, and JSON artifacts"`
}

func handleExport() mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		doc, err := loadDocument(input.Path)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		artifacts := export.PlanArtifacts(input.Path, input.OutDir)
		if err := export.WriteAll(doc, artifacts, time.Now()); err != nil {
			return nil, ExportOutput{}, err
		}

		return nil, ExportOutput{Artifacts: artifacts}, nil
	}
}

// loadDocument loads a BOM file, rejecting empty paths up front.
func loadDocument(path string) (*bom.Document, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	return bom.Load(path)
}
