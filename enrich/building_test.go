package enrich

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestClassifyTags(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want *Classification
	}{
		{
			name: "known amenity",
			tags: map[string]string{"amenity": "hospital"},
			want: &Classification{Category: "amenity", Key: "hospital", Label: "Hospital"},
		},
		{
			name: "unknown amenity titleized",
			tags: map[string]string{"amenity": "animal_shelter"},
			want: &Classification{Category: "amenity", Key: "animal_shelter", Label: "Animal Shelter"},
		},
		{
			name: "amenity wins over shop",
			tags: map[string]string{"amenity": "pharmacy", "shop": "convenience"},
			want: &Classification{Category: "amenity", Key: "pharmacy", Label: "Pharmacy"},
		},
		{
			name: "unknown office gets generic label",
			tags: map[string]string{"office": "telecommunication"},
			want: &Classification{Category: "office", Key: "telecommunication", Label: "Office"},
		},
		{
			name: "building type",
			tags: map[string]string{"building": "apartments"},
			want: &Classification{Category: "building", Key: "apartments", Label: "Apartment Building"},
		},
		{
			name: "generic building=yes ignored",
			tags: map[string]string{"building": "yes"},
			want: nil,
		},
		{
			name: "nil tags",
			tags: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTags(tt.tags)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("classifyTags = %+v, want nil", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Errorf("classifyTags = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseBuilding(t *testing.T) {
	elements := []overpassElement{
		{Type: "way", Tags: map[string]string{
			"building": "apartments", "building:levels": "6", "height": "19.4",
			"name": "Baker Flats", "start_date": "1989",
		}},
		{Type: "node", Tags: map[string]string{
			"shop": "convenience", "name": "Corner Mart", "phone": "+1 206 555 0100",
		}},
	}

	got := parseBuilding(elements)
	if got == nil {
		t.Fatal("parseBuilding returned nil")
	}
	if got.Name != "Baker Flats" {
		t.Errorf("way name should win, got %q", got.Name)
	}
	if got.Levels != 6 || got.HeightM != 19 {
		t.Errorf("levels/height = %d/%d", got.Levels, got.HeightM)
	}
	if got.StartDate != "1989" {
		t.Errorf("startDate = %q", got.StartDate)
	}
	// The node's shop classification is more specific than the building type
	// and overrides it.
	if got.Classification == nil || got.Classification.Key != "convenience" {
		t.Errorf("classification = %+v", got.Classification)
	}
	if got.Phone != "+1 206 555 0100" {
		t.Errorf("node phone should fill the gap, got %q", got.Phone)
	}
}

func TestParseBuildingNothingUseful(t *testing.T) {
	elements := []overpassElement{
		{Type: "way", Tags: map[string]string{"building": "yes"}},
	}
	if got := parseBuilding(elements); got != nil {
		t.Errorf("nameless generic building = %+v, want nil", got)
	}
	if got := parseBuilding(nil); got != nil {
		t.Errorf("no elements = %+v, want nil", got)
	}
}

func TestBuildingLookup(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "way[building](around:60,") {
			t.Errorf("query body = %s", body)
		}
		_, _ = w.Write([]byte(`{"elements":[{"type":"way","tags":{"building":"school","name":"Franklin High School"}}]}`))
	}))
	defer srv.Close()

	b := NewBuildingLookup(srv.URL)
	got := b.Lookup(context.Background(), 47.5756, -122.2947)
	if got == nil || got.Name != "Franklin High School" {
		t.Fatalf("Lookup = %+v", got)
	}

	b.Lookup(context.Background(), 47.5756, -122.2947)
	if hits.Load() != 1 {
		t.Errorf("repeat lookup hit upstream %d times, want 1", hits.Load())
	}
}
