// Package dispatch parses the SFD Real-Time 911 page into apparatus
// entries keyed by incident number.
//
// Page structure (confirmed from live source):
//
//	<tr id="row_N" ...>
//	  <td class="active|closed">Date/Time</td>   [0]
//	  <td class="active|closed">Incident #</td>  [1]  e.g. F260025137
//	  <td class="active|closed">Level</td>       [2]  e.g. 1, H1, or empty
//	  <td class="active|closed">Units</td>       [3]  e.g. "E30 L12"
//	  <td class="active|closed">Location</td>    [4]
//	  <td class="active|closed">Type</td>        [5]
//	</tr>
//
// Active = class "active", anything else is treated as closed. Legend and
// header rows have no row_N id and are skipped.
package dispatch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// incidentPrefix is the fire-incident number prefix; rows whose incident
// number does not start with it are discarded.
const incidentPrefix = "F"

// Parse extracts the apparatus map from raw page HTML. It never fails:
// malformed rows are skipped and an unparsable or empty document yields an
// empty map, which the apparatus client treats as a feed error.
func Parse(html string) Map {
	m := Map{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return m
	}

	doc.Find(`tr[id^="row_"]`).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}

		active := strings.TrimSpace(cells.Eq(0).AttrOr("class", "")) == "active"

		datetime := strings.TrimSpace(cells.Eq(0).Text())
		incidentNum := strings.TrimSpace(cells.Eq(1).Text())
		level := strings.TrimSpace(cells.Eq(2).Text())
		unitsRaw := strings.TrimSpace(cells.Eq(3).Text())
		location := strings.TrimSpace(cells.Eq(4).Text())
		typ := strings.TrimSpace(cells.Eq(5).Text())

		if incidentNum == "" || !strings.HasPrefix(incidentNum, incidentPrefix) {
			return
		}

		// Last row wins when the page repeats an incident number.
		m[incidentNum] = Entry{
			Datetime: datetime,
			Level:    level,
			Units:    strings.Fields(unitsRaw),
			Location: location,
			Type:     typ,
			Active:   active,
		}
	})

	return m
}
