package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Building describes the structure or business nearest an incident
// coordinate, assembled from OSM building/amenity/shop/office tags.
type Building struct {
	Name           string          `json:"name,omitempty"`
	Classification *Classification `json:"classification,omitempty"`
	Levels         int             `json:"levels,omitempty"`
	HeightM        int             `json:"heightM,omitempty"`
	StartDate      string          `json:"startDate,omitempty"`
	Operator       string          `json:"operator,omitempty"`
	Wheelchair     string          `json:"wheelchair,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Website        string          `json:"website,omitempty"`
	OpeningHours   string          `json:"openingHours,omitempty"`
}

// Classification is a human-readable reading of one OSM tag.
type Classification struct {
	Category string `json:"category"` // amenity | shop | office | building
	Key      string `json:"key"`
	Label    string `json:"label"`
}

var amenityLabels = map[string]string{
	"hospital": "Hospital", "clinic": "Medical Clinic", "doctors": "Doctor's Office",
	"pharmacy": "Pharmacy", "dentist": "Dental Office", "nursing_home": "Nursing Home",
	"social_facility": "Social Services Facility", "school": "School",
	"university": "University", "college": "College", "kindergarten": "Kindergarten",
	"childcare": "Childcare Facility", "library": "Public Library",
	"fire_station": "Fire Station", "police": "Police Station", "post_office": "Post Office",
	"courthouse": "Courthouse", "townhall": "City/Town Hall",
	"community_centre": "Community Center", "place_of_worship": "Place of Worship",
	"restaurant": "Restaurant", "fast_food": "Fast Food", "cafe": "Café",
	"bar": "Bar", "pub": "Pub", "nightclub": "Nightclub", "fuel": "Gas Station",
	"parking": "Parking Facility", "bank": "Bank", "theatre": "Theatre",
	"cinema": "Cinema", "museum": "Museum", "marketplace": "Marketplace",
	"ferry_terminal": "Ferry Terminal", "bus_station": "Bus Station",
	"shelter": "Emergency Shelter", "prison": "Correctional Facility",
}

var shopLabels = map[string]string{
	"supermarket": "Supermarket", "convenience": "Convenience Store",
	"mall": "Shopping Mall", "department_store": "Department Store",
	"hardware": "Hardware Store", "car_repair": "Auto Repair Shop",
	"electronics": "Electronics Store", "clothes": "Clothing Store",
	"hairdresser": "Hair Salon", "laundry": "Laundry", "bakery": "Bakery",
	"alcohol": "Liquor Store",
}

var officeLabels = map[string]string{
	"company": "Office Building", "government": "Government Office",
	"financial": "Financial Office", "insurance": "Insurance Office",
	"lawyer": "Law Office", "real_estate": "Real Estate Office",
	"it": "Tech Office", "ngo": "Non-Profit Office",
}

var buildingTypeLabels = map[string]string{
	"residential": "Residential Building", "apartments": "Apartment Building",
	"house": "Single-Family House", "detached": "Single-Family House",
	"terrace": "Townhouse", "dormitory": "Dormitory",
	"commercial": "Commercial Building", "office": "Office Building",
	"industrial": "Industrial Building", "warehouse": "Warehouse",
	"retail": "Retail Building", "hotel": "Hotel", "hospital": "Hospital",
	"school": "School", "university": "University", "church": "Church",
	"civic": "Civic Building", "government": "Government Building",
	"public": "Public Building", "fire_station": "Fire Station",
	"garage": "Parking Garage", "shed": "Shed", "houseboat": "Houseboat",
	"static_caravan": "Mobile Home",
}

// BuildingLookup queries Overpass for structures around a coordinate.
type BuildingLookup struct {
	url    string
	client *http.Client
	cache  *cache[*Building]
}

func NewBuildingLookup(url string) *BuildingLookup {
	return &BuildingLookup{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
		cache:  newCache[*Building](),
	}
}

// Lookup returns building context for a coordinate, or nil. Cached by the
// coordinate rounded to 4 decimals; a nil result is not cached and the
// coordinate is retried on the next request.
func (b *BuildingLookup) Lookup(ctx context.Context, lat, lon float64) *Building {
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)
	return b.cache.getOrFetch(key, func() (*Building, bool) {
		bld := b.fetch(ctx, lat, lon)
		return bld, bld != nil
	})
}

type overpassElement struct {
	Type string            `json:"type"`
	Tags map[string]string `json:"tags"`
}

func (b *BuildingLookup) fetch(ctx context.Context, lat, lon float64) *Building {
	query := fmt.Sprintf(
		"[out:json][timeout:10];(way[building](around:60,%f,%f);relation[building](around:60,%f,%f);node[amenity](around:50,%f,%f);node[shop](around:50,%f,%f);node[office](around:50,%f,%f););out tags center 8;",
		lat, lon, lat, lon, lat, lon, lat, lon, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, strings.NewReader(query))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var data struct {
		Elements []overpassElement `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil
	}
	return parseBuilding(data.Elements)
}

func classifyTags(tags map[string]string) *Classification {
	if tags == nil {
		return nil
	}
	if v := tags["amenity"]; v != "" {
		label := amenityLabels[v]
		if label == "" {
			label = titleizeTag(v)
		}
		return &Classification{Category: "amenity", Key: v, Label: label}
	}
	if v := tags["shop"]; v != "" {
		label := shopLabels[v]
		if label == "" {
			label = titleizeTag(v)
		}
		return &Classification{Category: "shop", Key: v, Label: label}
	}
	if v := tags["office"]; v != "" {
		label := officeLabels[v]
		if label == "" {
			label = "Office"
		}
		return &Classification{Category: "office", Key: v, Label: label}
	}
	// "yes" is the generic building tag, not worth showing
	if v := tags["building"]; v != "" && v != "yes" {
		if label := buildingTypeLabels[v]; label != "" {
			return &Classification{Category: "building", Key: v, Label: label}
		}
	}
	return nil
}

func titleizeTag(tag string) string {
	words := strings.Split(strings.ReplaceAll(tag, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// parseBuilding merges Overpass elements into one result. Ways and
// relations contribute physical attributes first; nodes can override the
// classification with something more specific than a bare building type.
func parseBuilding(elements []overpassElement) *Building {
	if len(elements) == 0 {
		return nil
	}
	out := &Building{}

	for _, el := range elements {
		if el.Type != "way" && el.Type != "relation" {
			continue
		}
		t := el.Tags
		if out.Levels == 0 {
			if n, err := strconv.Atoi(t["building:levels"]); err == nil {
				out.Levels = n
			}
		}
		if out.HeightM == 0 {
			if h, err := strconv.ParseFloat(t["height"], 64); err == nil {
				out.HeightM = int(h + 0.5)
			}
		}
		if out.StartDate == "" {
			out.StartDate = t["start_date"]
		}
		if out.Operator == "" {
			out.Operator = t["operator"]
		}
		if out.Wheelchair == "" {
			out.Wheelchair = t["wheelchair"]
		}
		if out.Phone == "" {
			out.Phone = t["phone"]
		}
		if out.Website == "" {
			out.Website = t["website"]
		}
		if out.OpeningHours == "" {
			out.OpeningHours = t["opening_hours"]
		}
		if out.Name == "" {
			out.Name = t["name"]
		}
		if out.Classification == nil {
			out.Classification = classifyTags(t)
		}
	}

	for _, el := range elements {
		if el.Type != "node" {
			continue
		}
		t := el.Tags
		if out.Name == "" {
			out.Name = t["name"]
		}
		if out.Phone == "" {
			out.Phone = t["phone"]
		}
		if out.Website == "" {
			out.Website = t["website"]
		}
		if out.OpeningHours == "" {
			out.OpeningHours = t["opening_hours"]
		}
		if cls := classifyTags(t); cls != nil {
			if cls.Category != "building" {
				out.Classification = cls
			} else if out.Classification == nil {
				out.Classification = cls
			}
		}
	}

	if out.Name == "" && out.Classification == nil && out.Levels == 0 {
		return nil
	}
	return out
}

// Clear drops the building cache.
func (b *BuildingLookup) Clear() { b.cache.clear() }
