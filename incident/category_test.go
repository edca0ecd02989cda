package incident

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{"structure fire", "Fire in Building", CategoryFire},
		{"brush fire", "Brush Fire", CategoryFire},
		{"car fire", "Car Fire", CategoryFire},
		{"aid response", "Aid Response", CategoryAid},
		{"medic unit", "Medic Response, 6-Person Rule", CategoryAid},
		{"extrication", "Rescue Extrication", CategoryRescue},
		{"water rescue", "Water Rescue", CategoryRescue},
		{"alarm bell", "Alarm Bell Ringing", CategoryAlarm},
		{"co detector", "Activated CO Detector", CategoryAlarm},
		// "fire" wins over the alarm keywords because the fire category is
		// matched first in the fixed order.
		{"auto fire alarm", "Auto Fire Alarm", CategoryFire},
		{"gas leak", "Natural Gas Leak", CategoryHazmat},
		{"fuel spill", "Fuel Spill", CategoryHazmat},
		{"case insensitive", "BRUSH FIRE", CategoryFire},
		{"unmatched", "Assist Police Department", CategoryOther},
		{"empty", "", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.input); got != tt.expected {
				t.Errorf("Categorize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// The categorizer is pure: repeated calls with the same input must agree
// regardless of what was classified before.
func TestCategorizeIdempotent(t *testing.T) {
	inputs := []string{"Brush Fire", "Aid Response", "", "Wires Down", "Hazmat Spill"}
	first := make([]Category, len(inputs))
	for i, in := range inputs {
		first[i] = Categorize(in)
	}
	for i := len(inputs) - 1; i >= 0; i-- {
		if got := Categorize(inputs[i]); got != first[i] {
			t.Errorf("Categorize(%q) changed between calls: %q then %q", inputs[i], first[i], got)
		}
	}
}

func TestCategorizeEveryKeywordResolves(t *testing.T) {
	for _, key := range Categories() {
		if key == CategoryOther {
			continue
		}
		for _, kw := range categories[key].Keywords {
			got := Categorize(kw)
			// Keywords are matched in fixed category order, so a keyword
			// shared between categories resolves to the earlier one; it
			// must never fall through to "other".
			if got == CategoryOther {
				t.Errorf("keyword %q of category %q resolved to other", kw, key)
			}
		}
	}
}

func TestCategoryStyleFallback(t *testing.T) {
	if CategoryStyle("nonsense").Label != "Other" {
		t.Errorf("unknown category should get the other style")
	}
	if CategoryStyle(CategoryFire).Label != "Fire" {
		t.Errorf("fire category style missing")
	}
}

func TestComputeStats(t *testing.T) {
	incidents := []Incident{
		{Type: "Brush Fire"},
		{Type: "Car Fire"},
		{Type: "Aid Response"},
		{Type: "Wires Down"},
	}
	stats := ComputeStats(incidents)
	if stats.Total != 4 {
		t.Fatalf("total = %d, want 4", stats.Total)
	}
	if stats.ByCategory[CategoryFire] != 2 {
		t.Errorf("fire count = %d, want 2", stats.ByCategory[CategoryFire])
	}
	if stats.ByCategory[CategoryAid] != 1 {
		t.Errorf("aid count = %d, want 1", stats.ByCategory[CategoryAid])
	}
	if stats.ByCategory[CategoryOther] != 1 {
		t.Errorf("other count = %d, want 1", stats.ByCategory[CategoryOther])
	}
	if n, ok := stats.ByCategory[CategoryHazmat]; !ok || n != 0 {
		t.Errorf("hazmat should be present with count 0, got %d (present=%v)", n, ok)
	}
}
