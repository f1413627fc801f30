package template

// Template ids recognized by Lookup.
const (
	Minimalist   = "minimalist"
	Elegant      = "elegant"
	Family       = "family"
	Professional = "professional"
)

var registry = map[string]Config{
	Minimalist: {
		ID:          Minimalist,
		TitleFont:   Font{Family: "Helvetica", Style: "B"},
		HeadingFont: Font{Family: "Helvetica", Style: "B"},
		BodyFont:    Font{Family: "Helvetica"},
		TitleSize:   22,
		HeadingSize: 13,
		BodySize:    10,
		SmallSize:   8,
		Primary:     RGB{40, 40, 40},
		Secondary:   RGB{245, 245, 245},
		Accent:      RGB{120, 120, 120},
		Margin:      22,
		Decorations: FlagPageNumbers,
	},
	Elegant: {
		ID:          Elegant,
		TitleFont:   Font{Family: "Times", Style: "BI"},
		HeadingFont: Font{Family: "Times", Style: "B"},
		BodyFont:    Font{Family: "Times"},
		TitleSize:   24,
		HeadingSize: 14,
		BodySize:    10.5,
		SmallSize:   8.5,
		Primary:     RGB{35, 30, 50},
		Secondary:   RGB{248, 246, 240},
		Accent:      RGB{140, 110, 60},
		Margin:      25,
		Decorations: FlagOrnateBorder | FlagPageNumbers,
	},
	Family: {
		ID:          Family,
		TitleFont:   Font{Family: "Times", Style: "I"},
		HeadingFont: Font{Family: "Times", Style: "BI"},
		BodyFont:    Font{Family: "Times"},
		TitleSize:   23,
		HeadingSize: 13.5,
		BodySize:    11,
		SmallSize:   9,
		Primary:     RGB{60, 42, 30},
		Secondary:   RGB{251, 244, 230},
		Accent:      RGB{170, 90, 50},
		Margin:      20,
		Decorations: FlagCardBackground | FlagFamilyGlyph | FlagPageNumbers,
	},
	Professional: {
		ID:          Professional,
		TitleFont:   Font{Family: "Helvetica", Style: "B"},
		HeadingFont: Font{Family: "Helvetica", Style: "B"},
		BodyFont:    Font{Family: "Helvetica"},
		TitleSize:   20,
		HeadingSize: 12,
		BodySize:    9.5,
		SmallSize:   8,
		Primary:     RGB{25, 25, 25},
		Secondary:   RGB{235, 238, 240},
		Accent:      RGB{0, 90, 140},
		Margin:      18,
		Decorations: FlagCardBackground | FlagChefTable | FlagPageNumbers | FlagSectionTab,
	},
}

// Lookup resolves a template id to its Config. Unknown ids fall back to the
// default; ok reports whether the id was recognized so the caller can record
// a warning.
func Lookup(id string) (cfg Config, ok bool) {
	cfg, ok = registry[id]
	if !ok {
		return Default(), false
	}
	return cfg, true
}

// Default returns the fallback configuration used for unrecognized ids.
func Default() Config {
	return registry[Minimalist]
}

// IDs lists the registered template ids in stable order.
func IDs() []string {
	return []string{Minimalist, Elegant, Family, Professional}
}
