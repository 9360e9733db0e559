package patfmt

// Info is the static descriptive metadata for one pattern family: example
// patterns plus a glossary of the symbols the family recognizes.  It feeds
// help and documentation surfaces; nothing on the formatting hot path reads
// it.
type Info struct {
	// Examples is a non-empty, ordered list of representative patterns.
	Examples []string
	// Symbols maps each defining symbol to its description.
	Symbols map[string]string
}

// patternInfo is the per-family registry.  Pure static data, no I/O.
var patternInfo = map[FormatType]Info{
	TypeNumber: {
		Examples: []string{"#,##0", "#,##0.00", "0.000", "#0.#"},
		Symbols: map[string]string{
			"#": "digit placeholder, insignificant zeros suppressed",
			"0": "digit placeholder, forces a digit even when insignificant",
			",": "grouping separator",
			".": "decimal separator",
		},
	},
	TypeCurrency: {
		Examples: []string{"¤#,##0.00", "$#,##0", "#,##0.00 €"},
		Symbols: map[string]string{
			"¤": "currency placeholder, replaced by the resolved symbol",
			"$": "literal dollar sign (replaced when a currency is supplied)",
			"€": "literal euro sign (replaced when a currency is supplied)",
			"£": "literal pound sign (replaced when a currency is supplied)",
			"¥": "literal yen sign (replaced when a currency is supplied)",
		},
	},
	TypePercentage: {
		Examples: []string{"0%", "#0.##%", "0.00%"},
		Symbols: map[string]string{
			"%": "percent sign; scales the value by 100",
			"#": "digit placeholder, insignificant zeros suppressed",
			"0": "digit placeholder, forces a digit even when insignificant",
		},
	},
	TypeDate: {
		Examples: []string{"yyyy-MM-dd", "dd/MM/yyyy", "MMM d, yyyy"},
		Symbols: map[string]string{
			"yyyy": "four-digit year",
			"yy":   "two-digit year",
			"MMMM": "full month name",
			"MMM":  "abbreviated month name",
			"MM":   "two-digit month",
			"dd":   "two-digit day of month",
		},
	},
	TypeTime: {
		Examples: []string{"HH:mm:ss", "HH:mm", "h:mm"},
		Symbols: map[string]string{
			"HH": "two-digit hour, 24-hour clock",
			"h":  "hour, 12-hour clock",
			"mm": "two-digit minute",
			"ss": "two-digit second",
		},
	},
	TypeDateTime: {
		Examples: []string{"yyyy-MM-dd HH:mm:ss", "dd/MM/yyyy HH:mm"},
		Symbols: map[string]string{
			"yyyy": "four-digit year",
			"MM":   "two-digit month",
			"dd":   "two-digit day of month",
			"HH":   "two-digit hour, 24-hour clock",
			"mm":   "two-digit minute",
			"ss":   "two-digit second",
		},
	},
	TypeText: {
		Examples: []string{"%{value}", "Total: {amount}", "{}"},
		Symbols: map[string]string{
			"{": "opens a placeholder",
			"}": "closes a placeholder",
			"%": "optional placeholder sigil before '{'",
		},
	},
}

// PatternInfo returns the per-family registry of examples and symbol
// glossaries.  The returned map is a fresh copy of the outer map; the Info
// values are shared static data and must be treated as read-only.
func PatternInfo() map[FormatType]Info {
	out := make(map[FormatType]Info, len(patternInfo))
	for k, v := range patternInfo {
		out[k] = v
	}
	return out
}
