package firewatch

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/seattlefirewatch/firewatch/activity"
	"github.com/seattlefirewatch/firewatch/dispatch"
	"github.com/seattlefirewatch/firewatch/incident"
	"github.com/seattlefirewatch/firewatch/station"
)

// incidentView is one incident as served to the map: the feed record plus
// everything the reconciliation core derives from it.
type incidentView struct {
	incident.Incident
	Category  incident.Category  `json:"category"`
	Active    bool               `json:"active"`
	Apparatus *dispatch.Entry    `json:"apparatus,omitempty"`
	Stations  []station.Station  `json:"stations,omitempty"`
	TypeCode  *incident.TypeCode `json:"typeCode,omitempty"`
}

// Routes builds the HTTP mux for the service.
func (a *App) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", a.handleHealth)
	mux.HandleFunc("/api/incidents", a.handleIncidents)
	mux.HandleFunc("/api/apparatus", a.handleApparatus)
	mux.HandleFunc("/api/stats", a.handleStats)
	mux.HandleFunc("/api/stations", a.handleStations)
	mux.HandleFunc("/api/refresh", a.handleRefresh)
	mux.HandleFunc("/api/weather", a.handleWeather)
	mux.HandleFunc("/api/geocode", a.handleGeocode)
	mux.HandleFunc("/api/building", a.handleBuilding)
	mux.HandleFunc("/api/route", a.handleRoute)
	mux.HandleFunc("/api/history", a.handleHistory)
	mux.HandleFunc("/sfd-realtime", a.handleDispatchProxy)
	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) incidentViews(now time.Time) []incidentView {
	incidents := a.Incidents.Incidents()
	apparatus := a.Apparatus.Apparatus()
	window := a.activeWindow()

	views := make([]incidentView, 0, len(incidents))
	for _, inc := range incidents {
		v := incidentView{
			Incident: inc,
			Category: incident.Categorize(inc.Type),
			Active:   activity.IsActive(inc, apparatus, window, now),
			TypeCode: incident.LookupTypeCode(inc.Type),
		}
		if entry, ok := apparatus[inc.IncidentNumber]; ok && inc.IncidentNumber != "" {
			v.Apparatus = &entry
			v.Stations = station.ForUnits(entry.Units)
		}
		views = append(views, v)
	}
	return views
}

// handleIncidents serves the merged working set. Optional filters:
// ?category=fire and ?active=true.
func (a *App) handleIncidents(w http.ResponseWriter, r *http.Request) {
	views := a.incidentViews(time.Now())

	if cat := r.URL.Query().Get("category"); cat != "" {
		filtered := make([]incidentView, 0, len(views))
		for _, v := range views {
			if v.Category == incident.Category(cat) {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}
	if r.URL.Query().Get("active") == "true" {
		filtered := make([]incidentView, 0, len(views))
		for _, v := range views {
			if v.Active {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	writeJSON(w, map[string]any{
		"incidents":   views,
		"count":       len(views),
		"loading":     a.Incidents.Loading(),
		"refreshing":  a.Incidents.Refreshing(),
		"error":       a.Incidents.Err(),
		"lastUpdated": timeOrNil(a.Incidents.LastUpdated()),
	})
}

func (a *App) handleApparatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"apparatus":   a.Apparatus.Apparatus(),
		"status":      a.Apparatus.Status(),
		"lastFetched": timeOrNil(a.Apparatus.LastFetched()),
	})
}

func (a *App) handleStats(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	incidents := a.Incidents.Incidents()
	apparatus := a.Apparatus.Apparatus()
	stats := incident.ComputeStats(incidents)

	writeJSON(w, map[string]any{
		"total":          stats.Total,
		"byCategory":     stats.ByCategory,
		"active":         activity.CountActive(incidents, apparatus, a.activeWindow(), now),
		"dispatchStatus": a.Apparatus.Status(),
	})
}

func (a *App) handleStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, station.All())
}

// handleRefresh forces an immediate poll of both feeds. The manual polls
// run alongside any scheduled ones; last writer wins.
func (a *App) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	a.Incidents.Refresh()
	a.Apparatus.Refresh()
	w.WriteHeader(http.StatusAccepted)
}

func (a *App) handleWeather(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, a.Weather.Current(r.Context()))
}

func (a *App) handleGeocode(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := coordParams(r, "lat", "lon")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	writeJSON(w, a.Geocoder.Reverse(r.Context(), lat, lon))
}

func (a *App) handleBuilding(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := coordParams(r, "lat", "lon")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	writeJSON(w, a.Buildings.Lookup(r.Context(), lat, lon))
}

func (a *App) handleRoute(w http.ResponseWriter, r *http.Request) {
	fromLat, fromLon, ok1 := coordParams(r, "fromLat", "fromLon")
	toLat, toLon, ok2 := coordParams(r, "toLat", "toLon")
	if !ok1 || !ok2 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	writeJSON(w, a.Router.Drive(r.Context(), fromLat, fromLon, toLat, toLon))
}

func (a *App) handleHistory(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	writeJSON(w, a.History.At(r.Context(), address, r.URL.Query().Get("exclude")))
}

func coordParams(r *http.Request, latKey, lonKey string) (float64, float64, bool) {
	lat, err1 := strconv.ParseFloat(r.URL.Query().Get(latKey), 64)
	lon, err2 := strconv.ParseFloat(r.URL.Query().Get(lonKey), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

func timeOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
