package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HistoryEntry is one prior incident at the same address.
type HistoryEntry struct {
	ID             string `json:"id"`
	IncidentNumber string `json:"incidentNumber,omitempty"`
	Type           string `json:"type"`
	Datetime       string `json:"datetime"`
}

// History fetches the last 30 days of incidents at an address from the
// same Socrata dataset the incident feed uses.
type History struct {
	feedURL string
	client  *http.Client
	now     func() time.Time
	cache   *cache[[]HistoryEntry]
}

func NewHistory(feedURL string) *History {
	return &History{
		feedURL: feedURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
		cache:   newCache[[]HistoryEntry](),
	}
}

// At returns prior incidents at an address, excluding excludeID (the
// incident being viewed). Cached by the normalized address; nil on failure.
func (h *History) At(ctx context.Context, address, excludeID string) []HistoryEntry {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}
	key := strings.ToLower(address)
	entries := h.cache.getOrFetch(key, func() ([]HistoryEntry, bool) {
		recs := h.fetch(ctx, address)
		return recs, recs != nil
	})
	if excludeID == "" {
		return entries
	}
	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != excludeID {
			out = append(out, e)
		}
	}
	return out
}

func (h *History) fetch(ctx context.Context, address string) []HistoryEntry {
	thirtyDays := h.now().UTC().Add(-30 * 24 * time.Hour).Format("2006-01-02T15:04:05")
	escaped := strings.ReplaceAll(address, "'", "''")
	where := "upper(address)=upper('" + escaped + "') AND datetime >= '" + thirtyDays + "'"
	query := "$limit=20&$order=" + url.QueryEscape("datetime DESC") + "&$where=" + url.QueryEscape(where)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.feedURL+"?"+query, nil)
	if err != nil {
		return nil
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var records []struct {
		IncidentNumber string `json:"incident_number"`
		Type           string `json:"type"`
		Datetime       string `json:"datetime"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		id := rec.IncidentNumber
		if id == "" {
			id = rec.Datetime
		}
		entries = append(entries, HistoryEntry{
			ID:             id,
			IncidentNumber: rec.IncidentNumber,
			Type:           rec.Type,
			Datetime:       rec.Datetime,
		})
	}
	return entries
}

// Clear drops the history cache.
func (h *History) Clear() { h.cache.clear() }
