package feed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/seattlefirewatch/firewatch/config"
	"github.com/seattlefirewatch/firewatch/dispatch"
)

// Status is the apparatus feed state.
type Status string

const (
	StatusIdle    Status = "idle"    // before the first poll
	StatusLoading Status = "loading" // fetch in flight
	StatusOK      Status = "ok"      // last parse yielded entries
	StatusError   Status = "error"   // fetch failed or parse yielded none
)

// ApparatusClient polls the Real-Time 911 page and maintains the current
// apparatus map. Failures keep the previous map: stale data beats no data,
// only the status reflects the problem.
type ApparatusClient struct {
	cfg    config.DispatchFeedConfig
	client *http.Client
	now    func() time.Time

	mu          sync.Mutex
	apparatus   dispatch.Map
	status      Status
	lastFetched time.Time
}

func NewApparatusClient(cfg config.DispatchFeedConfig) *ApparatusClient {
	return &ApparatusClient{
		cfg:       cfg,
		client:    &http.Client{Timeout: 30 * time.Second},
		now:       time.Now,
		apparatus: dispatch.Map{},
		status:    StatusIdle,
	}
}

// Run polls on the configured cadence (the upstream page refreshes every
// 60 seconds) until ctx is cancelled.
func (c *ApparatusClient) Run(ctx context.Context) *Poller {
	p := NewPoller(time.Duration(c.cfg.RefreshIntervalS)*time.Second, func(ctx context.Context) {
		c.poll(ctx)
	})
	p.Start(ctx)
	return p
}

// Refresh triggers an immediate poll alongside the natural schedule.
func (c *ApparatusClient) Refresh() {
	go c.poll(context.Background())
}

func (c *ApparatusClient) poll(ctx context.Context) {
	c.mu.Lock()
	c.status = StatusLoading
	c.mu.Unlock()

	parsed, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = StatusError
		log.Printf("dispatch feed: %v", err)
		return
	}
	if len(parsed) == 0 {
		// Cannot distinguish a genuinely quiet page from a broken one;
		// err toward a retry-friendly error status.
		c.status = StatusError
		return
	}
	c.apparatus = parsed
	c.lastFetched = c.now()
	c.status = StatusOK
}

func (c *ApparatusClient) fetch(ctx context.Context) (dispatch.Map, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dispatch page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from dispatch page", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dispatch page: %w", err)
	}
	return dispatch.Parse(string(body)), nil
}

// Apparatus returns the current apparatus map snapshot.
func (c *ApparatusClient) Apparatus() dispatch.Map {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(dispatch.Map, len(c.apparatus))
	for k, v := range c.apparatus {
		out[k] = v
	}
	return out
}

// Status returns the current feed state.
func (c *ApparatusClient) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// LastFetched returns the time of the last successful parse.
func (c *ApparatusClient) LastFetched() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastFetched
}
