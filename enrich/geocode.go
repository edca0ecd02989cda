package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Geocode is a reverse-geocoding result for one coordinate.
type Geocode struct {
	Neighbourhood string `json:"neighbourhood,omitempty"`
	Road          string `json:"road,omitempty"`
	Postcode      string `json:"postcode,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	OSMClass      string `json:"osmClass,omitempty"`
	OSMType       string `json:"osmType,omitempty"`
	PlaceName     string `json:"placeName,omitempty"`
	CityDistrict  string `json:"cityDistrict,omitempty"`
}

// Geocoder resolves coordinates to addresses via Nominatim.
type Geocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	cache     *cache[*Geocode]
}

func NewGeocoder(baseURL string) *Geocoder {
	return &Geocoder{
		baseURL:   baseURL,
		userAgent: "SeattleFireWatch/1.0",
		client:    &http.Client{Timeout: 10 * time.Second},
		cache:     newCache[*Geocode](),
	}
}

// Reverse looks up the address context for a coordinate, cached by the
// coordinate rounded to 4 decimals. Returns nil on any failure; failures
// are not cached, so the coordinate is retried on the next request.
func (g *Geocoder) Reverse(ctx context.Context, lat, lon float64) *Geocode {
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)
	return g.cache.getOrFetch(key, func() (*Geocode, bool) {
		gc := g.fetch(ctx, lat, lon)
		return gc, gc != nil
	})
}

func (g *Geocoder) fetch(ctx context.Context, lat, lon float64) *Geocode {
	url := fmt.Sprintf("%s/reverse?lat=%f&lon=%f&format=json&zoom=18&addressdetails=1", g.baseURL, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var data struct {
		DisplayName string `json:"display_name"`
		Class       string `json:"class"`
		Type        string `json:"type"`
		Name        string `json:"name"`
		Address     struct {
			Neighbourhood string `json:"neighbourhood"`
			Suburb        string `json:"suburb"`
			CityDistrict  string `json:"city_district"`
			Quarter       string `json:"quarter"`
			Road          string `json:"road"`
			Postcode      string `json:"postcode"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil
	}

	neighbourhood := data.Address.Neighbourhood
	if neighbourhood == "" {
		neighbourhood = data.Address.Suburb
	}
	if neighbourhood == "" {
		neighbourhood = data.Address.CityDistrict
	}
	cityDistrict := data.Address.CityDistrict
	if cityDistrict == "" {
		cityDistrict = data.Address.Quarter
	}

	return &Geocode{
		Neighbourhood: neighbourhood,
		Road:          data.Address.Road,
		Postcode:      data.Address.Postcode,
		DisplayName:   data.DisplayName,
		OSMClass:      data.Class,
		OSMType:       data.Type,
		PlaceName:     data.Name,
		CityDistrict:  cityDistrict,
	}
}

// Clear drops the geocode cache.
func (g *Geocoder) Clear() { g.cache.clear() }
