package enrich

import "testing"

func TestCacheGetOrFetch(t *testing.T) {
	c := newCache[string]()
	calls := 0
	fetch := func() (string, bool) {
		calls++
		return "value", true
	}

	if got := c.getOrFetch("k", fetch); got != "value" {
		t.Fatalf("first call = %q", got)
	}
	if got := c.getOrFetch("k", fetch); got != "value" {
		t.Fatalf("second call = %q", got)
	}
	if calls != 1 {
		t.Errorf("fetch ran %d times, want 1", calls)
	}
}

// A failed fetch is not stored: the key is retried until a fetch succeeds,
// after which the stored value is served.
func TestCacheRetriesFailedFetch(t *testing.T) {
	c := newCache[*Geocode]()
	calls := 0
	fetch := func() (*Geocode, bool) {
		calls++
		if calls < 3 {
			return nil, false
		}
		return &Geocode{Road: "5th Ave"}, true
	}

	if got := c.getOrFetch("k", fetch); got != nil {
		t.Fatalf("failed fetch should pass nil through, got %+v", got)
	}
	if got := c.getOrFetch("k", fetch); got != nil {
		t.Fatalf("second failure should pass nil through, got %+v", got)
	}
	if got := c.getOrFetch("k", fetch); got == nil || got.Road != "5th Ave" {
		t.Fatalf("third call should succeed, got %+v", got)
	}
	c.getOrFetch("k", fetch)
	if calls != 3 {
		t.Errorf("fetch ran %d times, want 3 (two failures, one success, then cached)", calls)
	}
}

func TestCacheClear(t *testing.T) {
	c := newCache[int]()
	calls := 0
	fetch := func() (int, bool) {
		calls++
		return calls, true
	}

	c.getOrFetch("k", fetch)
	c.clear()
	if got := c.getOrFetch("k", fetch); got != 2 {
		t.Errorf("post-clear fetch = %d, want a fresh value", got)
	}
}
