package template

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantID string
		wantOK bool
	}{
		{name: "minimalist", id: "minimalist", wantID: Minimalist, wantOK: true},
		{name: "elegant", id: "elegant", wantID: Elegant, wantOK: true},
		{name: "family", id: "family", wantID: Family, wantOK: true},
		{name: "professional", id: "professional", wantID: Professional, wantOK: true},
		{name: "unknown falls back", id: "vaporwave", wantID: Minimalist, wantOK: false},
		{name: "empty falls back", id: "", wantID: Minimalist, wantOK: false},
		{name: "case sensitive", id: "Elegant", wantID: Minimalist, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, ok := Lookup(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if cfg.ID != tt.wantID {
				t.Fatalf("Lookup(%q).ID = %q, want %q", tt.id, cfg.ID, tt.wantID)
			}
		})
	}
}

func TestDecorationFlags(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		has     []Flag
		hasNot  []Flag
	}{
		{
			name:   "minimalist carries no chrome",
			id:     Minimalist,
			has:    []Flag{FlagPageNumbers},
			hasNot: []Flag{FlagCardBackground, FlagOrnateBorder, FlagFamilyGlyph, FlagChefTable},
		},
		{
			name:   "elegant borders",
			id:     Elegant,
			has:    []Flag{FlagOrnateBorder},
			hasNot: []Flag{FlagCardBackground, FlagFamilyGlyph, FlagChefTable},
		},
		{
			name:   "family card and glyph",
			id:     Family,
			has:    []Flag{FlagCardBackground, FlagFamilyGlyph},
			hasNot: []Flag{FlagOrnateBorder, FlagChefTable},
		},
		{
			name:   "professional table chrome",
			id:     Professional,
			has:    []Flag{FlagCardBackground, FlagChefTable, FlagSectionTab},
			hasNot: []Flag{FlagOrnateBorder, FlagFamilyGlyph},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, ok := Lookup(tt.id)
			if !ok {
				t.Fatalf("Lookup(%q) not ok", tt.id)
			}
			for _, f := range tt.has {
				if !cfg.Decorations.Has(f) {
					t.Errorf("%s missing flag %b", tt.id, f)
				}
			}
			for _, f := range tt.hasNot {
				if cfg.Decorations.Has(f) {
					t.Errorf("%s unexpectedly has flag %b", tt.id, f)
				}
			}
		})
	}
}

func TestDefaultMatchesRegistry(t *testing.T) {
	def := Default()
	if def.ID != Minimalist {
		t.Fatalf("Default().ID = %q, want %q", def.ID, Minimalist)
	}
	if def.BodySize <= 0 || def.Margin <= 0 {
		t.Fatalf("Default() has zero geometry: %+v", def)
	}
}
