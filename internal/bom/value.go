package bom

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Value is a scalar that arrives as either a string or a number.
// BOM producers are inconsistent about quoting quantities and system
// sizes, so Value remembers the original form: a numeric input is
// re-emitted as a number, a quoted input as a string. For rendering it
// is always treated as a display string.
type Value struct {
	raw    string
	quoted bool
	set    bool
}

// StringValue returns a Value that marshals as a JSON string.
func StringValue(s string) Value {
	return Value{raw: s, quoted: true, set: true}
}

// NumberValue returns a Value that marshals as a bare JSON number.
// The token must be a valid JSON number literal.
func NumberValue(token string) Value {
	return Value{raw: token, set: true}
}

// String returns the display form of the value, empty when unset.
func (v Value) String() string {
	return v.raw
}

// IsZero reports whether the value is absent. Used by the omitzero
// JSON tag option to keep absent fields out of the structured export.
func (v Value) IsZero() bool {
	return !v.set
}

// MarshalJSON emits the value in its original form.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.quoted || !v.set {
		return json.Marshal(v.raw)
	}
	return []byte(v.raw), nil
}

// UnmarshalJSON accepts a string, number, or null token.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("parsing string value: %w", err)
		}
		*v = Value{raw: s, quoted: true, set: true}
		return nil
	}

	*v = Value{raw: string(data), set: true}
	return nil
}

// UnmarshalYAML accepts a string or numeric scalar node.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar value, got %s", node.Line, node.Tag)
	}
	if node.Tag == "!!null" {
		*v = Value{}
		return nil
	}
	*v = Value{
		raw:    node.Value,
		quoted: node.Tag == "!!str",
		set:    true,
	}
	return nil
}

// MarshalYAML emits the value in its original form. A value that
// arrived quoted carries an explicit string tag so it re-emits as a
// string, matching the JSON path.
func (v Value) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: v.raw}
	if v.quoted {
		node.Tag = "!!str"
		node.Style = yaml.DoubleQuotedStyle
	}
	return node, nil
}
