package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Upstream endpoints and cadences the service defaults to when no config
// file overrides them. The refresh intervals match the upstream sources'
// own update cadences.
const (
	DefaultIncidentURL = "https://data.seattle.gov/resource/kzjm-xkqj.json"
	DefaultDispatchURL = "https://web.seattle.gov/sfd/realtime911/getRecsForDatePub.asp?action=Today&incDate=&rad1=des"

	defaultPort             = 8080
	defaultIncidentLimit    = 500
	defaultIncidentInterval = 300
	defaultDispatchInterval = 60
	defaultActiveWindowMin  = 90
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. When path
// is empty the default candidates are tried; a missing file is not an error
// since every setting has a workable default.
func LoadAppConfig(path string) error {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return err
		}
	} else {
		for _, p := range []string{"config.yml", "./config/config.yml"} {
			if data, err = os.ReadFile(p); err == nil {
				break
			}
		}
	}

	var cfg AppConfig
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
	}
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Incidents.URL == "" {
		cfg.Incidents.URL = DefaultIncidentURL
	}
	if cfg.Incidents.Limit == 0 {
		cfg.Incidents.Limit = defaultIncidentLimit
	}
	if cfg.Incidents.RefreshIntervalS == 0 {
		cfg.Incidents.RefreshIntervalS = defaultIncidentInterval
	}
	if cfg.Dispatch.URL == "" {
		cfg.Dispatch.URL = DefaultDispatchURL
	}
	if cfg.Dispatch.RefreshIntervalS == 0 {
		cfg.Dispatch.RefreshIntervalS = defaultDispatchInterval
	}
	if cfg.Dispatch.UserAgent == "" {
		cfg.Dispatch.UserAgent = "Mozilla/5.0 (compatible; seattle-fire-map)"
	}
	if cfg.Activity.ActiveWindowMin == 0 {
		cfg.Activity.ActiveWindowMin = defaultActiveWindowMin
	}
	if cfg.Enrichment.NominatimURL == "" {
		cfg.Enrichment.NominatimURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Enrichment.OverpassURL == "" {
		cfg.Enrichment.OverpassURL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Enrichment.OSRMURL == "" {
		cfg.Enrichment.OSRMURL = "https://router.project-osrm.org"
	}
	if cfg.Enrichment.OpenMeteoURL == "" {
		cfg.Enrichment.OpenMeteoURL = "https://api.open-meteo.com"
	}
	if cfg.Enrichment.WeatherLat == 0 {
		cfg.Enrichment.WeatherLat = 47.6062
	}
	if cfg.Enrichment.WeatherLon == 0 {
		cfg.Enrichment.WeatherLon = -122.3321
	}
}
