package bom

// Category classifies a BOM line item. Known categories have a fixed
// output priority and a display label; anything else is carried through
// as-is and sorts after all known categories.
type Category string

// Known categories.
const (
	CategoryModule        Category = "MODULE"
	CategoryBattery       Category = "BATTERY"
	CategoryInverter      Category = "INVERTER"
	CategoryEVCharger     Category = "EV_CHARGER"
	CategoryRapidShutdown Category = "RAPID_SHUTDOWN"
	CategoryRacking       Category = "RACKING"
	CategoryElectricalBOS Category = "ELECTRICAL_BOS"
	CategoryMonitoring    Category = "MONITORING"

	// CategoryOther is the synthetic bucket for items with no category.
	CategoryOther Category = "OTHER"
)

// CanonicalOrder is the fixed priority sequence of known categories used
// to order CSV rows and Markdown sections.
var CanonicalOrder = []Category{
	CategoryModule,
	CategoryBattery,
	CategoryInverter,
	CategoryEVCharger,
	CategoryRapidShutdown,
	CategoryRacking,
	CategoryElectricalBOS,
	CategoryMonitoring,
}

// labels maps categories to report headings. Kept alongside
// CanonicalOrder so order and labels cannot drift apart.
var labels = map[Category]string{
	CategoryModule:        "Modules",
	CategoryBattery:       "Storage & Inverter",
	CategoryInverter:      "Inverters",
	CategoryEVCharger:     "EV Charging",
	CategoryRapidShutdown: "Rapid Shutdown",
	CategoryRacking:       "Racking & Attachments",
	CategoryElectricalBOS: "Electrical BOS",
	CategoryMonitoring:    "Monitoring & Comms",
	CategoryOther:         "Other",
}

// ranks is derived from CanonicalOrder at init time.
var ranks = func() map[Category]int {
	m := make(map[Category]int, len(CanonicalOrder))
	for i, c := range CanonicalOrder {
		m[c] = i
	}
	return m
}()

// Rank returns the category's position in the canonical ordering.
// Categories outside the canonical list all share a sentinel rank that
// sorts after every known category.
func (c Category) Rank() int {
	if r, ok := ranks[c]; ok {
		return r
	}
	return len(CanonicalOrder)
}

// Known reports whether the category is in the canonical list.
func (c Category) Known() bool {
	_, ok := ranks[c]
	return ok
}

// Label returns the display heading for the category, falling back to
// the raw category string when unmapped.
func (c Category) Label() string {
	if label, ok := labels[c]; ok {
		return label
	}
	return string(c)
}
