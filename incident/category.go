package incident

import "strings"

// Category is one of the fixed semantic buckets incidents are styled by.
type Category string

const (
	CategoryFire   Category = "fire"
	CategoryAid    Category = "aid"
	CategoryRescue Category = "rescue"
	CategoryAlarm  Category = "alarm"
	CategoryHazmat Category = "hazmat"
	CategoryOther  Category = "other"
)

// CategoryInfo carries the display metadata and classification keywords
// for one category.
type CategoryInfo struct {
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	BgColor  string   `json:"bgColor"`
	Keywords []string `json:"-"`
}

// categoryOrder fixes the iteration order for keyword matching. "other" is
// last and carries no keywords; it is the default, never a match.
var categoryOrder = []Category{
	CategoryFire,
	CategoryAid,
	CategoryRescue,
	CategoryAlarm,
	CategoryHazmat,
	CategoryOther,
}

var categories = map[Category]CategoryInfo{
	CategoryFire: {
		Label:   "Fire",
		Color:   "#ef4444",
		BgColor: "rgba(239,68,68,0.15)",
		Keywords: []string{
			"fire", "arson", "brush", "dumpster", "rubbish", "burn",
			"vehicle fire", "structure fire", "wildland", "chimney", "car fire",
		},
	},
	CategoryAid: {
		Label:    "Medical Aid",
		Color:    "#3b82f6",
		BgColor:  "rgba(59,130,246,0.15)",
		Keywords: []string{"aid response", "medic", "cardiac", "aid"},
	},
	CategoryRescue: {
		Label:   "Rescue",
		Color:   "#f59e0b",
		BgColor: "rgba(245,158,11,0.15)",
		Keywords: []string{
			"rescue", "extrication", "water rescue", "cliff",
			"confined space", "trench",
		},
	},
	CategoryAlarm: {
		Label:   "Alarm",
		Color:   "#a855f7",
		BgColor: "rgba(168,85,247,0.15)",
		Keywords: []string{
			"alarm", "detector", "co alarm", "activated co", "smoke",
			"false alarm", "auto fire alarm",
		},
	},
	CategoryHazmat: {
		Label:   "Hazmat",
		Color:   "#10b981",
		BgColor: "rgba(16,185,129,0.15)",
		Keywords: []string{
			"hazmat", "spill", "gas leak", "natural gas", "propane",
			"chemical", "biohazard", "fuel",
		},
	},
	CategoryOther: {
		Label:   "Other",
		Color:   "#64748b",
		BgColor: "rgba(100,116,139,0.15)",
	},
}

// Categorize maps a free-text incident type to exactly one category via
// case-insensitive substring match against each category's keyword list, in
// fixed order. Unmatched and empty input both resolve to CategoryOther.
func Categorize(typ string) Category {
	if typ == "" {
		return CategoryOther
	}
	lower := strings.ToLower(typ)
	for _, key := range categoryOrder {
		if key == CategoryOther {
			continue
		}
		for _, kw := range categories[key].Keywords {
			if strings.Contains(lower, kw) {
				return key
			}
		}
	}
	return CategoryOther
}

// CategoryStyle returns the display metadata for a category key, falling
// back to the "other" style for unknown keys.
func CategoryStyle(c Category) CategoryInfo {
	if info, ok := categories[c]; ok {
		return info
	}
	return categories[CategoryOther]
}

// Categories returns the category keys in their fixed display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Stats counts incidents per category.
type Stats struct {
	Total      int              `json:"total"`
	ByCategory map[Category]int `json:"byCategory"`
}

// ComputeStats tallies a working set by category. Every category key is
// present in the result, zero or not.
func ComputeStats(incidents []Incident) Stats {
	s := Stats{Total: len(incidents), ByCategory: make(map[Category]int, len(categoryOrder))}
	for _, key := range categoryOrder {
		s.ByCategory[key] = 0
	}
	for _, inc := range incidents {
		s.ByCategory[Categorize(inc.Type)]++
	}
	return s
}
