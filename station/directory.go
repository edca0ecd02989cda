package station

import (
	"regexp"
	"strconv"
	"strings"
)

// unitToStation is the reverse roster index, e.g. "E17" -> 17, "L9" -> 17.
// Built once at startup.
var unitToStation = func() map[string]int {
	m := make(map[string]int)
	for _, s := range stations {
		for _, unit := range s.Apparatus {
			m[strings.ToUpper(unit)] = s.Number
		}
	}
	return m
}()

var byNumber = func() map[int]Station {
	m := make(map[int]Station, len(stations))
	for _, s := range stations {
		m[s.Number] = s
	}
	return m
}()

var unitSuffixRe = regexp.MustCompile(`^[A-Z]+(\d+)$`)

// ForUnit resolves an apparatus unit code to its station number. Exact
// roster match first; otherwise the numeric suffix is checked against
// existing station numbers (covers relief units like "E99" stationed under
// a shared number). Returns false when neither applies.
func ForUnit(unitCode string) (int, bool) {
	if unitCode == "" {
		return 0, false
	}
	upper := strings.ToUpper(strings.TrimSpace(unitCode))

	if num, ok := unitToStation[upper]; ok {
		return num, true
	}

	if m := unitSuffixRe.FindStringSubmatch(upper); m != nil {
		num, err := strconv.Atoi(m[1])
		if err == nil {
			if _, ok := byNumber[num]; ok {
				return num, true
			}
		}
	}

	return 0, false
}

// ByNumber returns the station with the given number, or false.
func ByNumber(num int) (Station, bool) {
	s, ok := byNumber[num]
	return s, ok
}

// ForUnits maps a dispatched unit list to the distinct responding stations,
// preserving first-seen order.
func ForUnits(units []string) []Station {
	seen := make(map[int]bool)
	var out []Station
	for _, u := range units {
		num, ok := ForUnit(u)
		if !ok || seen[num] {
			continue
		}
		seen[num] = true
		out = append(out, byNumber[num])
	}
	return out
}
