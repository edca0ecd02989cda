package firewatch

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status              string     `json:"status"`
	IncidentCount       int        `json:"incident_count"`
	IncidentError       string     `json:"incident_error,omitempty"`
	IncidentLastUpdated *time.Time `json:"incident_last_updated,omitempty"`
	DispatchStatus      string     `json:"dispatch_status"`
	DispatchLastFetched *time.Time `json:"dispatch_last_fetched,omitempty"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:         "ok",
		IncidentCount:  len(a.Incidents.Incidents()),
		IncidentError:  a.Incidents.Err(),
		DispatchStatus: string(a.Apparatus.Status()),
	}
	if t := a.Incidents.LastUpdated(); !t.IsZero() {
		resp.IncidentLastUpdated = &t
	}
	if t := a.Apparatus.LastFetched(); !t.IsZero() {
		resp.DispatchLastFetched = &t
	}
	writeJSON(w, resp)
}
