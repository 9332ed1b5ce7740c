package bom

import "testing"

func TestCategory_Rank(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     int
	}{
		{name: "module ranks first", category: CategoryModule, want: 0},
		{name: "battery second", category: CategoryBattery, want: 1},
		{name: "monitoring last known", category: CategoryMonitoring, want: 7},
		{name: "unknown gets sentinel", category: Category("WIDGET"), want: len(CanonicalOrder)},
		{name: "other gets sentinel", category: CategoryOther, want: len(CanonicalOrder)},
		{name: "empty gets sentinel", category: Category(""), want: len(CanonicalOrder)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.category.Rank(); got != tt.want {
				t.Errorf("Rank() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCategory_UnknownRanksAfterAllKnown(t *testing.T) {
	unknown := Category("WIDGET")
	for _, known := range CanonicalOrder {
		if unknown.Rank() <= known.Rank() {
			t.Errorf("unknown rank %d should exceed %s rank %d", unknown.Rank(), known, known.Rank())
		}
	}
}

func TestCategory_Label(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     string
	}{
		{name: "module", category: CategoryModule, want: "Modules"},
		{name: "battery", category: CategoryBattery, want: "Storage & Inverter"},
		{name: "other bucket", category: CategoryOther, want: "Other"},
		{name: "unknown falls back to raw", category: Category("WIDGET"), want: "WIDGET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.category.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategory_Known(t *testing.T) {
	if !CategoryRacking.Known() {
		t.Error("Known() = false for RACKING, want true")
	}
	if CategoryOther.Known() {
		t.Error("Known() = true for OTHER, want false")
	}
	if Category("WIDGET").Known() {
		t.Error("Known() = true for WIDGET, want false")
	}
}

func TestCanonicalOrder_AllLabeled(t *testing.T) {
	// Every canonical category must have a display label so report
	// headings never silently fall back to raw keys.
	for _, category := range CanonicalOrder {
		if category.Label() == string(category) {
			t.Errorf("category %s has no display label", category)
		}
	}
}
