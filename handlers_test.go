package firewatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/seattlefirewatch/firewatch/config"
)

const testIncidentBody = `[
  {"address":"2931 S Mt Baker Blvd","type":"Fire in Building","datetime":"2026-08-28T13:15:02","latitude":"47.575640","longitude":"-122.294691","incident_number":"F260025137"},
  {"address":"1050 NE 50th St","type":"Aid Response","datetime":"2026-08-28T12:50:44","latitude":"47.665167","longitude":"-122.316659","incident_number":"F260025130"}
]`

const testDispatchBody = `<table>
<tr id="row_1"><td class="active">8/28/2026 1:15:02 PM</td><td>F260025137</td><td>1</td><td>E30 L12</td><td>2931 S Mt Baker Blvd</td><td>Fire in Building</td></tr>
<tr id="row_2"><td class="closed">8/28/2026 12:50:44 PM</td><td>F260025130</td><td></td><td>E17</td><td>1050 NE 50th St</td><td>Aid Response</td></tr>
</table>`

// newTestApp builds an app whose feeds point at local fixtures, runs one
// polling round and returns the app ready for handler tests.
func newTestApp(t *testing.T) *App {
	t.Helper()

	incidentSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testIncidentBody))
	}))
	t.Cleanup(incidentSrv.Close)

	dispatchSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testDispatchBody))
	}))
	t.Cleanup(dispatchSrv.Close)

	cfg := config.AppConfig{
		Server:    config.ServerConfig{Port: 0},
		Incidents: config.IncidentFeedConfig{URL: incidentSrv.URL, Limit: 500, RefreshIntervalS: 3600},
		Dispatch:  config.DispatchFeedConfig{URL: dispatchSrv.URL, RefreshIntervalS: 3600, UserAgent: "test"},
		Activity:  config.ActivityConfig{ActiveWindowMin: 90},
	}

	app := NewApp(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	app.StartPolling(ctx)
	t.Cleanup(func() {
		cancel()
		app.StopPolling()
	})

	deadline := time.After(5 * time.Second)
	for len(app.Incidents.Incidents()) == 0 || len(app.Apparatus.Apparatus()) == 0 {
		select {
		case <-deadline:
			t.Fatal("feeds did not settle")
		case <-time.After(10 * time.Millisecond):
		}
	}
	return app
}

func TestHandleIncidents(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/incidents")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var body struct {
		Incidents []struct {
			ID        string `json:"id"`
			Category  string `json:"category"`
			Active    bool   `json:"active"`
			Apparatus *struct {
				Units []string `json:"units"`
			} `json:"apparatus"`
			Stations []struct {
				Number int `json:"number"`
			} `json:"stations"`
			TypeCode *struct {
				Code string `json:"code"`
			} `json:"typeCode"`
		} `json:"incidents"`
		Count   int    `json:"count"`
		Loading bool   `json:"loading"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}

	if body.Count != 2 || len(body.Incidents) != 2 {
		t.Fatalf("count = %d, incidents = %d", body.Count, len(body.Incidents))
	}
	if body.Loading || body.Error != "" {
		t.Errorf("loading=%v error=%q", body.Loading, body.Error)
	}

	fire := body.Incidents[0]
	if fire.ID != "F260025137" || fire.Category != "fire" || !fire.Active {
		t.Errorf("fire incident = %+v", fire)
	}
	if fire.Apparatus == nil || len(fire.Apparatus.Units) != 2 {
		t.Errorf("apparatus join missing: %+v", fire.Apparatus)
	}
	// E30 is station 30 and L12 station 28.
	if len(fire.Stations) != 2 || fire.Stations[0].Number != 30 || fire.Stations[1].Number != 28 {
		t.Errorf("stations = %+v", fire.Stations)
	}
	if fire.TypeCode == nil || fire.TypeCode.Code != "FIB" {
		t.Errorf("typeCode = %+v", fire.TypeCode)
	}

	// The table marks the aid call closed, which overrides its recency.
	aid := body.Incidents[1]
	if aid.ID != "F260025130" || aid.Active {
		t.Errorf("aid incident = %+v", aid)
	}
}

func TestHandleIncidentsFilters(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.Routes())
	defer srv.Close()

	for _, tt := range []struct {
		query string
		want  int
	}{
		{"?category=fire", 1},
		{"?category=hazmat", 0},
		{"?active=true", 1},
		{"?category=aid&active=true", 0},
	} {
		resp, err := http.Get(srv.URL + "/api/incidents" + tt.query)
		if err != nil {
			t.Fatal(err)
		}
		var body struct {
			Count int `json:"count"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		_ = resp.Body.Close()
		if body.Count != tt.want {
			t.Errorf("%s: count = %d, want %d", tt.query, body.Count, tt.want)
		}
	}
}

func TestHandleStats(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()

	var body struct {
		Total          int            `json:"total"`
		ByCategory     map[string]int `json:"byCategory"`
		Active         int            `json:"active"`
		DispatchStatus string         `json:"dispatchStatus"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Total != 2 || body.Active != 1 {
		t.Errorf("total=%d active=%d", body.Total, body.Active)
	}
	if body.ByCategory["fire"] != 1 || body.ByCategory["aid"] != 1 {
		t.Errorf("byCategory = %v", body.ByCategory)
	}
	if body.DispatchStatus != "ok" {
		t.Errorf("dispatchStatus = %q", body.DispatchStatus)
	}
}

func TestHandleStations(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/stations")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()

	var stations []struct {
		Number int `json:"number"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&stations); err != nil {
		t.Fatal(err)
	}
	if len(stations) != 34 {
		t.Errorf("roster size = %d, want 34", len(stations))
	}
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.IncidentCount != 2 || body.DispatchStatus != "ok" {
		t.Errorf("health = %+v", body)
	}
	if body.IncidentLastUpdated == nil || body.DispatchLastFetched == nil {
		t.Errorf("timestamps missing: %+v", body)
	}
}

func TestHandleRefreshRequiresPost(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/refresh")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want 405", resp.StatusCode)
	}

	resp, err = http.Post(srv.URL+"/api/refresh", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("POST status = %d, want 202", resp.StatusCode)
	}
}

func TestCoordParamValidation(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.Routes())
	defer srv.Close()

	for _, path := range []string{
		"/api/geocode",
		"/api/geocode?lat=abc&lon=-122.3",
		"/api/building?lat=47.6",
		"/api/route?fromLat=47.6&fromLon=-122.3",
		"/api/history",
	} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, resp.StatusCode)
		}
	}
}
