package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// IncidentFeedConfig points at the Socrata fire-incident dataset
type IncidentFeedConfig struct {
	URL              string `yaml:"url" validate:"omitempty,url"`
	Limit            int    `yaml:"limit" validate:"gte=0"`
	RefreshIntervalS int    `yaml:"refreshIntervalS" validate:"gte=0"`
}

// DispatchFeedConfig points at the Real-Time 911 dispatch page
type DispatchFeedConfig struct {
	URL              string `yaml:"url" validate:"omitempty,url"`
	RefreshIntervalS int    `yaml:"refreshIntervalS" validate:"gte=0"`
	UserAgent        string `yaml:"userAgent"`
}

// ActivityConfig tunes active-incident reconciliation
type ActivityConfig struct {
	// ActiveWindowMin is the recency fallback window in minutes, used when
	// the dispatch table has no entry for an incident.
	ActiveWindowMin int `yaml:"activeWindowMin" validate:"gte=0"`
}

// EnrichmentConfig holds base URLs for the best-effort context lookups.
// All of these are keyless public APIs; failures are never surfaced.
type EnrichmentConfig struct {
	NominatimURL string  `yaml:"nominatimURL" validate:"omitempty,url"`
	OverpassURL  string  `yaml:"overpassURL" validate:"omitempty,url"`
	OSRMURL      string  `yaml:"osrmURL" validate:"omitempty,url"`
	OpenMeteoURL string  `yaml:"openMeteoURL" validate:"omitempty,url"`
	WeatherLat   float64 `yaml:"weatherLat"`
	WeatherLon   float64 `yaml:"weatherLon"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server     ServerConfig       `yaml:"server" validate:"required"`
	Incidents  IncidentFeedConfig `yaml:"incidents"`
	Dispatch   DispatchFeedConfig `yaml:"dispatch"`
	Activity   ActivityConfig     `yaml:"activity"`
	Enrichment EnrichmentConfig   `yaml:"enrichment"`
}
