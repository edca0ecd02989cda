// Package activity decides whether an incident is still active by joining
// the incident feed with the dispatch-table snapshot.
package activity

import (
	"time"

	"github.com/seattlefirewatch/firewatch/dispatch"
	"github.com/seattlefirewatch/firewatch/incident"
)

// DefaultWindow is the recency fallback applied when the dispatch table has
// no entry for an incident.
const DefaultWindow = 90 * time.Minute

// IsActive reports whether an incident still has units considered on scene.
// The dispatch table is authoritative when it carries the incident number,
// even when it says inactive for a very recent incident. Without an entry
// the decision falls back to recency: active iff the incident is strictly
// younger than window. Never fails.
func IsActive(inc incident.Incident, m dispatch.Map, window time.Duration, now time.Time) bool {
	if entry, ok := m[inc.IncidentNumber]; ok && inc.IncidentNumber != "" {
		return entry.Active
	}
	if inc.Datetime.IsZero() {
		return false
	}
	return now.Sub(inc.Datetime) < window
}

// CountActive tallies the active incidents in a working set.
func CountActive(incidents []incident.Incident, m dispatch.Map, window time.Duration, now time.Time) int {
	n := 0
	for _, inc := range incidents {
		if IsActive(inc, m, window, now) {
			n++
		}
	}
	return n
}

// FilterActive returns the active subset of a working set, preserving order.
func FilterActive(incidents []incident.Incident, m dispatch.Map, window time.Duration, now time.Time) []incident.Incident {
	out := make([]incident.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if IsActive(inc, m, window, now) {
			out = append(out, inc)
		}
	}
	return out
}
