// Package bom provides the bill-of-materials document schema, category
// tables, and loading for the bomkit export tool.
package bom

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a complete bill-of-materials record for one planset.
// Every field is optional on input; absent fields stay absent on output.
type Document struct {
	Project    Project    `json:"project,omitzero" yaml:"project,omitempty"`
	Items      []Item     `json:"items,omitempty" yaml:"items,omitempty"`
	Validation Validation `json:"validation,omitzero" yaml:"validation,omitempty"`
}

// Project holds descriptive planset metadata. All fields are display
// strings; the numeric-looking ones accept either string or number input
// and round-trip whichever form they arrived in.
type Project struct {
	Customer       string `json:"customer,omitempty" yaml:"customer,omitempty"`
	Address        string `json:"address,omitempty" yaml:"address,omitempty"`
	PlansetRev     Value  `json:"plansetRev,omitzero" yaml:"plansetRev,omitempty"`
	StampDate      string `json:"stampDate,omitempty" yaml:"stampDate,omitempty"`
	SystemSizeKwdc Value  `json:"systemSizeKwdc,omitzero" yaml:"systemSizeKwdc,omitempty"`
	SystemSizeKwac Value  `json:"systemSizeKwac,omitzero" yaml:"systemSizeKwac,omitempty"`
	ModuleCount    Value  `json:"moduleCount,omitzero" yaml:"moduleCount,omitempty"`
	Utility        string `json:"utility,omitempty" yaml:"utility,omitempty"`
	AHJ            string `json:"ahj,omitempty" yaml:"ahj,omitempty"`
}

// Item is a single BOM line item.
type Item struct {
	Category    Category `json:"category,omitempty" yaml:"category,omitempty"`
	Brand       string   `json:"brand,omitempty" yaml:"brand,omitempty"`
	Model       string   `json:"model,omitempty" yaml:"model,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Qty         Value    `json:"qty,omitzero" yaml:"qty,omitempty"`
	UnitSpec    string   `json:"unitSpec,omitempty" yaml:"unitSpec,omitempty"`
	UnitLabel   string   `json:"unitLabel,omitempty" yaml:"unitLabel,omitempty"`
	Source      string   `json:"source,omitempty" yaml:"source,omitempty"`
	Flags       []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Validation holds cross-check results produced by the BOM builder.
// Each check is boolean-or-absent: a nil pointer means the check was
// never run, which renders differently from an explicit false.
type Validation struct {
	ModuleCountMatch     *bool    `json:"moduleCountMatch,omitempty" yaml:"moduleCountMatch,omitempty"`
	BatteryCapacityMatch *bool    `json:"batteryCapacityMatch,omitempty" yaml:"batteryCapacityMatch,omitempty"`
	OCPDMatch            *bool    `json:"ocpdMatch,omitempty" yaml:"ocpdMatch,omitempty"`
	Warnings             []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Check pairs a validation check with its human-readable label.
type Check struct {
	Key    string
	Label  string
	Result *bool
}

// Checks returns the three fixed validation checks in render order.
// This is the single source of truth for check keys and labels, shared
// by the Markdown report, the validate command, and the MCP tools.
func (v Validation) Checks() []Check {
	return []Check{
		{Key: "moduleCountMatch", Label: "Module count matches string layout", Result: v.ModuleCountMatch},
		{Key: "batteryCapacityMatch", Label: "Battery capacity confirmed on PV-6", Result: v.BatteryCapacityMatch},
		{Key: "ocpdMatch", Label: "OCPD rating matches AC disconnect", Result: v.OCPDMatch},
	}
}

// FromJSON deserializes a document from JSON.
func FromJSON(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, errors.New("empty JSON data")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing BOM JSON: %w", err)
	}

	return &doc, nil
}

// FromYAML deserializes a document from YAML.
func FromYAML(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, errors.New("empty YAML data")
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing BOM YAML: %w", err)
	}

	return &doc, nil
}

// ToJSON serializes the document as indented JSON with a trailing newline.
// The output round-trips through FromJSON to an equivalent document.
func (d *Document) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing BOM to JSON: %w", err)
	}
	return append(data, '\n'), nil
}
