package firewatch

import (
	"encoding/json"
	"io"
	"net/http"
	"time"
)

var proxyClient = &http.Client{Timeout: 30 * time.Second}

// handleDispatchProxy forwards the Real-Time 911 page for the browser
// frontend, which cannot fetch it cross-origin. The body passes through
// unmodified; the upstream status is returned verbatim on error and the
// response is never cached.
func (a *App) handleDispatchProxy(w http.ResponseWriter, r *http.Request) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, a.Cfg.Dispatch.URL, nil)
	if err != nil {
		proxyError(w, err)
		return
	}
	req.Header.Set("User-Agent", a.Cfg.Dispatch.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	upstream, err := proxyClient.Do(req)
	if err != nil {
		proxyError(w, err)
		return
	}
	defer func() { _ = upstream.Body.Close() }()

	if upstream.StatusCode != http.StatusOK {
		w.WriteHeader(upstream.StatusCode)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.Copy(w, upstream.Body)
}

func proxyError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
