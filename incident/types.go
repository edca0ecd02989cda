package incident

import "time"

// Incident is one reported emergency event from the Socrata feed.
// Every Incident in a working set has finite coordinates; records that fail
// coordinate validation are dropped at the feed boundary and never reach
// this type.
type Incident struct {
	// ID is the incident number when present, else a synthetic key derived
	// from the raw coordinate and timestamp fields. Stable across polls for
	// an unchanged record.
	ID             string    `json:"id"`
	IncidentNumber string    `json:"incidentNumber,omitempty"`
	Type           string    `json:"type"`
	Address        string    `json:"address"`
	Datetime       time.Time `json:"datetime"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
}
