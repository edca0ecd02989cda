package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/seattlefirewatch/firewatch/config"
	"github.com/seattlefirewatch/firewatch/incident"
)

// socrataTimeLayout is the SODA floating_timestamp format: local time,
// second precision, no timezone suffix.
const socrataTimeLayout = "2006-01-02T15:04:05"

// socrataRecord mirrors the raw feed fields. Coordinates arrive as strings
// and are validated and coerced before a record becomes an Incident.
type socrataRecord struct {
	Address        string `json:"address"`
	Type           string `json:"type"`
	Datetime       string `json:"datetime"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	IncidentNumber string `json:"incident_number"`
}

// IncidentClient polls the Socrata fire-incident dataset for the rolling
// last-24-hours window.
type IncidentClient struct {
	cfg    config.IncidentFeedConfig
	client *http.Client
	now    func() time.Time

	mu          sync.Mutex
	incidents   []incident.Incident
	loading     bool
	refreshing  bool
	errMsg      string
	lastUpdated time.Time
}

func NewIncidentClient(cfg config.IncidentFeedConfig) *IncidentClient {
	return &IncidentClient{
		cfg:     cfg,
		client:  &http.Client{Timeout: 30 * time.Second},
		now:     time.Now,
		loading: true,
	}
}

// Run polls on the configured cadence until ctx is cancelled.
func (c *IncidentClient) Run(ctx context.Context) *Poller {
	p := NewPoller(time.Duration(c.cfg.RefreshIntervalS)*time.Second, func(ctx context.Context) {
		c.poll(ctx)
	})
	p.Start(ctx)
	return p
}

// Refresh triggers an immediate poll without waiting for the schedule. It
// runs opportunistically; whichever poll finishes last wins the snapshot.
func (c *IncidentClient) Refresh() {
	go c.poll(context.Background())
}

// buildQuery assembles the SODA query for the most recent 24-hour window,
// newest first, capped at the configured limit. Only the filter value is
// percent-encoded: some Socrata deployments mishandle encoded $ signs in
// parameter names.
func (c *IncidentClient) buildQuery(now time.Time) string {
	since := now.UTC().Add(-24 * time.Hour).Format(socrataTimeLayout)
	return "$limit=" + strconv.Itoa(c.cfg.Limit) +
		"&$order=" + url.QueryEscape("datetime DESC") +
		"&$where=" + url.QueryEscape("datetime >= '"+since+"'")
}

func (c *IncidentClient) poll(ctx context.Context) {
	c.mu.Lock()
	if !c.loading {
		c.refreshing = true
	}
	c.mu.Unlock()

	incidents, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.refreshing = false
	if err != nil {
		// Keep the previous list; only the error surface changes.
		c.errMsg = err.Error()
		log.Printf("incident feed: %v", err)
		return
	}
	c.errMsg = ""
	c.incidents = incidents
	c.lastUpdated = c.now()
}

func (c *IncidentClient) fetch(ctx context.Context) ([]incident.Incident, error) {
	reqURL := c.cfg.URL + "?" + c.buildQuery(c.now())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch incidents: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error: %d", resp.StatusCode)
	}

	var records []socrataRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode incidents: %w", err)
	}

	return validateRecords(records), nil
}

// validateRecords keeps only records with finite coordinates, coerces them
// to numbers, assigns stable ids and drops id duplicates. The feed is
// ordered newest first, so the first record for an id wins.
func validateRecords(records []socrataRecord) []incident.Incident {
	out := make([]incident.Incident, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		lat, latErr := strconv.ParseFloat(rec.Latitude, 64)
		lon, lonErr := strconv.ParseFloat(rec.Longitude, 64)
		if rec.Latitude == "" || rec.Longitude == "" || latErr != nil || lonErr != nil {
			continue
		}
		if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
			continue
		}

		id := rec.IncidentNumber
		if id == "" {
			// Deterministic composite of the raw fields so an unchanged
			// record keeps its id across polls.
			id = rec.Latitude + "-" + rec.Longitude + "-" + rec.Datetime
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		dt := parseSocrataTime(rec.Datetime)

		out = append(out, incident.Incident{
			ID:             id,
			IncidentNumber: rec.IncidentNumber,
			Type:           rec.Type,
			Address:        rec.Address,
			Datetime:       dt,
			Latitude:       lat,
			Longitude:      lon,
		})
	}
	return out
}

// FetchOnce performs a single fetch without touching the client's snapshot
// state. Used by the one-shot CLI listing.
func (c *IncidentClient) FetchOnce(ctx context.Context) ([]incident.Incident, error) {
	return c.fetch(ctx)
}

// parseSocrataTime accepts floating timestamps with or without fractional
// seconds. A zero time means the field was absent or unparsable.
func parseSocrataTime(s string) time.Time {
	for _, layout := range []string{socrataTimeLayout, "2006-01-02T15:04:05.000"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Incidents returns a copy of the current working set.
func (c *IncidentClient) Incidents() []incident.Incident {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]incident.Incident, len(c.incidents))
	copy(out, c.incidents)
	return out
}

// Loading is true only before the very first poll has completed, success
// or failure.
func (c *IncidentClient) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Refreshing is true while a subsequent poll is in flight.
func (c *IncidentClient) Refreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshing
}

// Err returns the last fetch error message, or "" after a successful poll.
func (c *IncidentClient) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// LastUpdated returns the time of the last successful poll.
func (c *IncidentClient) LastUpdated() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUpdated
}
