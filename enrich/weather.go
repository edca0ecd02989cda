package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"
)

// Weather is the current conditions at the configured map center.
type Weather struct {
	TempF         int     `json:"tempF"`
	FeelsLikeF    int     `json:"feelsLikeF"`
	Humidity      float64 `json:"humidity"`
	WindSpeedMPH  int     `json:"windSpeedMph"`
	WindDirection float64 `json:"windDirection"`
	Precipitation float64 `json:"precipitation"`
	Code          int     `json:"code"`
	Description   string  `json:"description"`
}

// Open-Meteo updates current conditions every 15 minutes.
const weatherTTL = 15 * time.Minute

// WeatherClient fetches current conditions from Open-Meteo for a fixed
// location.
type WeatherClient struct {
	baseURL  string
	lat, lon float64
	client   *http.Client
	now      func() time.Time

	mu        sync.Mutex
	current   *Weather
	fetchedAt time.Time
}

func NewWeatherClient(baseURL string, lat, lon float64) *WeatherClient {
	return &WeatherClient{
		baseURL: baseURL,
		lat:     lat,
		lon:     lon,
		client:  &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
}

// Current returns the cached conditions, refetching when older than 15
// minutes. Returns nil when no fetch has ever succeeded.
func (w *WeatherClient) Current(ctx context.Context) *Weather {
	w.mu.Lock()
	if w.current != nil && w.now().Sub(w.fetchedAt) < weatherTTL {
		cur := w.current
		w.mu.Unlock()
		return cur
	}
	w.mu.Unlock()

	fresh := w.fetch(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if fresh != nil {
		w.current = fresh
		w.fetchedAt = w.now()
	}
	// Stale data beats none when the refetch failed.
	return w.current
}

func (w *WeatherClient) fetch(ctx context.Context) *Weather {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%f&longitude=%f&current=temperature_2m,apparent_temperature,relative_humidity_2m,wind_speed_10m,wind_direction_10m,weather_code,precipitation&temperature_unit=fahrenheit&wind_speed_unit=mph&precipitation_unit=inch",
		w.baseURL, w.lat, w.lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var data struct {
		Current struct {
			Temperature   float64 `json:"temperature_2m"`
			ApparentTemp  float64 `json:"apparent_temperature"`
			Humidity      float64 `json:"relative_humidity_2m"`
			WindSpeed     float64 `json:"wind_speed_10m"`
			WindDirection float64 `json:"wind_direction_10m"`
			WeatherCode   int     `json:"weather_code"`
			Precipitation float64 `json:"precipitation"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil
	}
	c := data.Current

	return &Weather{
		TempF:         int(math.Round(c.Temperature)),
		FeelsLikeF:    int(math.Round(c.ApparentTemp)),
		Humidity:      c.Humidity,
		WindSpeedMPH:  int(math.Round(c.WindSpeed)),
		WindDirection: c.WindDirection,
		Precipitation: c.Precipitation,
		Code:          c.WeatherCode,
		Description:   weatherCodeDescription(c.WeatherCode),
	}
}

// WMO weather interpretation codes
var weatherCodes = map[int]string{
	0: "Clear sky", 1: "Mainly clear", 2: "Partly cloudy", 3: "Overcast",
	45: "Foggy", 48: "Icy fog",
	51: "Light drizzle", 53: "Drizzle", 55: "Heavy drizzle",
	61: "Light rain", 63: "Rain", 65: "Heavy rain",
	71: "Light snow", 73: "Snow", 75: "Heavy snow",
	80: "Light showers", 81: "Showers", 82: "Heavy showers",
	95: "Thunderstorm", 99: "Thunderstorm w/ hail",
}

func weatherCodeDescription(code int) string {
	if desc, ok := weatherCodes[code]; ok {
		return desc
	}
	return "Unknown"
}
