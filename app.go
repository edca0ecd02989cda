// Package firewatch wires the feed clients, reconciliation and enrichment
// lookups into the HTTP service behind the live incident map.
package firewatch

import (
	"context"
	"time"

	"github.com/seattlefirewatch/firewatch/config"
	"github.com/seattlefirewatch/firewatch/enrich"
	"github.com/seattlefirewatch/firewatch/feed"
)

// App owns every long-lived component for one process. Construct it once
// at startup; component lifetimes are tied to the app's context.
type App struct {
	Cfg config.AppConfig

	Incidents *feed.IncidentClient
	Apparatus *feed.ApparatusClient

	Geocoder  *enrich.Geocoder
	Buildings *enrich.BuildingLookup
	Router    *enrich.Router
	Weather   *enrich.WeatherClient
	History   *enrich.History

	pollers []*feed.Poller
}

func NewApp(cfg config.AppConfig) *App {
	return &App{
		Cfg:       cfg,
		Incidents: feed.NewIncidentClient(cfg.Incidents),
		Apparatus: feed.NewApparatusClient(cfg.Dispatch),
		Geocoder:  enrich.NewGeocoder(cfg.Enrichment.NominatimURL),
		Buildings: enrich.NewBuildingLookup(cfg.Enrichment.OverpassURL),
		Router:    enrich.NewRouter(cfg.Enrichment.OSRMURL),
		Weather:   enrich.NewWeatherClient(cfg.Enrichment.OpenMeteoURL, cfg.Enrichment.WeatherLat, cfg.Enrichment.WeatherLon),
		History:   enrich.NewHistory(cfg.Incidents.URL),
	}
}

// StartPolling launches both feed loops. They run until ctx is cancelled.
func (a *App) StartPolling(ctx context.Context) {
	a.pollers = append(a.pollers,
		a.Incidents.Run(ctx),
		a.Apparatus.Run(ctx),
	)
}

// StopPolling waits for in-flight polls to settle.
func (a *App) StopPolling() {
	for _, p := range a.pollers {
		p.Stop()
	}
	a.pollers = nil
}

// activeWindow is the recency fallback for the reconciler.
func (a *App) activeWindow() time.Duration {
	return time.Duration(a.Cfg.Activity.ActiveWindowMin) * time.Minute
}
