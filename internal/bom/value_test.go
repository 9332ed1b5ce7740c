package bom

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "integer", input: `2`, want: "2"},
		{name: "float", input: `10.8`, want: "10.8"},
		{name: "string", input: `"rev B"`, want: "rev B"},
		{name: "numeric string", input: `"27"`, want: "27"},
		{name: "empty string", input: `""`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
				t.Fatalf("Unmarshal(%q) error = %v", tt.input, err)
			}
			if v.String() != tt.want {
				t.Errorf("String() = %q, want %q", v.String(), tt.want)
			}
			if v.IsZero() {
				t.Error("IsZero() = true, want false after unmarshal")
			}
		})
	}
}

func TestValue_UnmarshalJSON_Null(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`null`), &v); err != nil {
		t.Fatalf("Unmarshal(null) error = %v", err)
	}
	if !v.IsZero() {
		t.Error("IsZero() = false, want true for null input")
	}
}

func TestValue_MarshalJSON_PreservesForm(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "number stays bare", input: `2`},
		{name: "float stays bare", input: `10.8`},
		{name: "string stays quoted", input: `"27"`},
		{name: "text string", input: `"rev B"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
				t.Fatalf("Unmarshal(%q) error = %v", tt.input, err)
			}
			got, err := json.Marshal(v)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.input {
				t.Errorf("Marshal() = %s, want %s", got, tt.input)
			}
		})
	}
}

func TestValue_OmitzeroSkipsAbsentFields(t *testing.T) {
	item := Item{Category: CategoryModule}
	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"category":"MODULE"}` {
		t.Errorf("Marshal() = %s, want only the category field", data)
	}
}

func TestValue_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       string
		wantQuoted bool
	}{
		{name: "integer", input: `qty: 27`, want: "27"},
		{name: "float", input: `qty: 10.8`, want: "10.8"},
		{name: "quoted string", input: `qty: "27"`, want: "27", wantQuoted: true},
		{name: "bare word", input: `qty: lot`, want: "lot", wantQuoted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item struct {
				Qty Value `yaml:"qty"`
			}
			if err := yaml.Unmarshal([]byte(tt.input), &item); err != nil {
				t.Fatalf("Unmarshal(%q) error = %v", tt.input, err)
			}
			if item.Qty.String() != tt.want {
				t.Errorf("String() = %q, want %q", item.Qty.String(), tt.want)
			}

			// YAML numbers must re-emit as bare JSON numbers
			data, err := json.Marshal(item.Qty)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			quoted := data[0] == '"'
			if quoted != tt.wantQuoted {
				t.Errorf("Marshal() = %s, quoted = %v, want %v", data, quoted, tt.wantQuoted)
			}
		})
	}
}

func TestValue_MarshalYAML_PreservesForm(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "number stays bare", value: NumberValue("27"), want: "qty: 27\n"},
		{name: "float stays bare", value: NumberValue("10.8"), want: "qty: 10.8\n"},
		{name: "numeric string stays quoted", value: StringValue("27"), want: "qty: \"27\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := struct {
				Qty Value `yaml:"qty"`
			}{Qty: tt.value}

			got, err := yaml.Marshal(doc)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_YAMLRoundTripPreservesForm(t *testing.T) {
	input := "qty: \"27\"\ncount: 27\n"
	var doc struct {
		Qty   Value `yaml:"qty"`
		Count Value `yaml:"count"`
	}
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	got, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != input {
		t.Errorf("round trip = %q, want %q", got, input)
	}
}

func TestValue_UnmarshalYAML_RejectsNonScalar(t *testing.T) {
	var item struct {
		Qty Value `yaml:"qty"`
	}
	err := yaml.Unmarshal([]byte("qty:\n  - 1\n  - 2\n"), &item)
	if err == nil {
		t.Error("Unmarshal() expected error for sequence value")
	}
}

func TestValue_Constructors(t *testing.T) {
	s := StringValue("27")
	if s.String() != "27" || s.IsZero() {
		t.Errorf("StringValue(27) = %q, IsZero = %v", s.String(), s.IsZero())
	}
	sData, _ := json.Marshal(s)
	if string(sData) != `"27"` {
		t.Errorf("StringValue marshals to %s, want quoted", sData)
	}

	n := NumberValue("27")
	nData, _ := json.Marshal(n)
	if string(nData) != `27` {
		t.Errorf("NumberValue marshals to %s, want bare number", nData)
	}
}
