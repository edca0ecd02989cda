package dispatch

// Entry is the parsed apparatus state for one incident row of the
// Real-Time 911 page.
type Entry struct {
	Datetime string   `json:"datetime"`
	Level    string   `json:"level,omitempty"`
	Units    []string `json:"units"`
	Location string   `json:"location"`
	Type     string   `json:"type"`
	Active   bool     `json:"active"`
}

// Map keys apparatus entries by incident number. One entry per incident
// number per parse; a newer snapshot always replaces the whole map.
type Map map[string]Entry
