package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const openMeteoBody = `{
  "current": {
    "temperature_2m": 63.4,
    "apparent_temperature": 61.8,
    "relative_humidity_2m": 72,
    "wind_speed_10m": 8.6,
    "wind_direction_10m": 220,
    "weather_code": 2,
    "precipitation": 0
  }
}`

func TestWeatherClientCurrent(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(openMeteoBody))
	}))
	defer srv.Close()

	clock := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)
	c := NewWeatherClient(srv.URL, 47.6062, -122.3321)
	c.now = func() time.Time { return clock }

	got := c.Current(context.Background())
	if got == nil {
		t.Fatal("Current returned nil")
	}
	if got.TempF != 63 || got.FeelsLikeF != 62 {
		t.Errorf("rounded temps = %d/%d", got.TempF, got.FeelsLikeF)
	}
	if got.WindSpeedMPH != 9 {
		t.Errorf("wind = %d", got.WindSpeedMPH)
	}
	if got.Description != "Partly cloudy" {
		t.Errorf("description = %q", got.Description)
	}

	// Within the TTL the cached value is served.
	clock = clock.Add(10 * time.Minute)
	c.Current(context.Background())
	if hits.Load() != 1 {
		t.Errorf("fresh cache refetched, %d upstream hits", hits.Load())
	}

	// Past the TTL it refetches.
	clock = clock.Add(10 * time.Minute)
	c.Current(context.Background())
	if hits.Load() != 2 {
		t.Errorf("stale cache not refetched, %d upstream hits", hits.Load())
	}
}

// Cold-snap readings round half away from zero, not toward positive.
func TestWeatherClientRoundsNegativeTemps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":-3.4,"apparent_temperature":-8.5,"relative_humidity_2m":80,"wind_speed_10m":12.5,"wind_direction_10m":10,"weather_code":73,"precipitation":0.1}}`))
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL, 47.6062, -122.3321)
	got := c.Current(context.Background())
	if got == nil {
		t.Fatal("Current returned nil")
	}
	if got.TempF != -3 {
		t.Errorf("tempF = %d, want -3", got.TempF)
	}
	if got.FeelsLikeF != -9 {
		t.Errorf("feelsLikeF = %d, want -9", got.FeelsLikeF)
	}
	if got.WindSpeedMPH != 13 {
		t.Errorf("wind = %d, want 13", got.WindSpeedMPH)
	}
}

func TestWeatherClientStaleBeatsNone(t *testing.T) {
	var failing atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(openMeteoBody))
	}))
	defer srv.Close()

	clock := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)
	c := NewWeatherClient(srv.URL, 47.6062, -122.3321)
	c.now = func() time.Time { return clock }

	first := c.Current(context.Background())
	if first == nil {
		t.Fatal("seed fetch failed")
	}

	failing.Store(true)
	clock = clock.Add(time.Hour)
	got := c.Current(context.Background())
	if got == nil {
		t.Errorf("failed refetch should return the stale value")
	}
}

func TestWeatherClientNeverFetched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL, 47.6062, -122.3321)
	if got := c.Current(context.Background()); got != nil {
		t.Errorf("Current with no successful fetch = %+v, want nil", got)
	}
}

func TestWeatherCodeDescription(t *testing.T) {
	if weatherCodeDescription(95) != "Thunderstorm" {
		t.Errorf("code 95 = %q", weatherCodeDescription(95))
	}
	if weatherCodeDescription(42) != "Unknown" {
		t.Errorf("unmapped code should be Unknown")
	}
}
