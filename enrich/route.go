package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Route is a driving route between two coordinates.
type Route struct {
	// Positions are [lat, lon] pairs, ready for a Leaflet polyline.
	Positions [][2]float64 `json:"positions"`
	DistanceM float64      `json:"distanceM"`
	DurationS float64      `json:"durationS"`
}

// Router fetches driving routes from OSRM.
type Router struct {
	baseURL string
	client  *http.Client
	cache   *cache[*Route]
}

func NewRouter(baseURL string) *Router {
	return &Router{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   newCache[*Route](),
	}
}

// Drive returns the driving route from origin to destination, or nil.
// Cached by both endpoints rounded to 4 decimals; failed lookups are not
// cached and retried on the next request.
func (r *Router) Drive(ctx context.Context, fromLat, fromLon, toLat, toLon float64) *Route {
	key := fmt.Sprintf("%.4f,%.4f;%.4f,%.4f", fromLon, fromLat, toLon, toLat)
	return r.cache.getOrFetch(key, func() (*Route, bool) {
		rt := r.fetch(ctx, fromLat, fromLon, toLat, toLon)
		return rt, rt != nil
	})
}

func (r *Router) fetch(ctx context.Context, fromLat, fromLon, toLat, toLon float64) *Route {
	// OSRM takes lon,lat order
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		r.baseURL, fromLon, fromLat, toLon, toLat)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var data struct {
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil
	}
	if len(data.Routes) == 0 {
		return nil
	}

	route := data.Routes[0]
	positions := make([][2]float64, 0, len(route.Geometry.Coordinates))
	for _, c := range route.Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		// GeoJSON is [lon, lat]; flip for map display
		positions = append(positions, [2]float64{c[1], c[0]})
	}

	return &Route{
		Positions: positions,
		DistanceM: route.Distance,
		DurationS: route.Duration,
	}
}

// Clear drops the route cache.
func (r *Router) Clear() { r.cache.clear() }
