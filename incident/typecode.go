package incident

import "strings"

// TypeCode is one entry of the official SFD incident type-code table.
type TypeCode struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Response string `json:"response"`
}

// typeCodes is the closed official table, in its published order. Order
// matters: partial matching returns the first hit.
var typeCodes = []TypeCode{
	{"AID", "Aid Response", "medical", "1 Aid Unit"},
	{"AIDF", "Aid Response (Freeway)", "medical", "1 Aid Unit, 1 Engine"},
	{"AIDSRV", "Aid Response — Service Call", "medical", "1 Aid Unit"},
	{"AIDYEL", "Aid Response", "medical", "1 Aid Unit"},
	{"AMA", "Auto Medical Alarm", "alarm", "1 Aid Unit, 1 Engine"},
	{"AFA", "Auto Fire Alarm", "alarm", "2 Engines, 1 Ladder, 1 Chief"},
	{"AFA4", "Auto Fire Alarm — Major", "alarm", "2 Engines, 1 Ladder, 1 Chief"},
	{"AFAF", "Auto Fire Alarm — False", "alarm", "1 Engine"},
	{"AFAH", "Auto Fire Alarm — Hazmat", "hazmat", "2 Engines, 1 Ladder, 1 Hazmat"},
	{"AFAR", "Auto Fire Alarm — Residential", "alarm", "1 Engine, 1 Ladder"},
	{"AFARF", "Auto Fire Alarm — Residential False", "alarm", "1 Engine"},
	{"ALBELL", "Alarm Bell Ringing", "alarm", "1 Engine"},
	{"CO", "Activated CO Detector", "alarm", "1 Engine, 1 Medic"},
	{"FALSE", "False Alarm", "alarm", "1 Engine"},
	{"MED", "Medic Response", "medical", "1 Medic Unit"},
	{"MED1", "Single Medic Response", "medical", "1 Medic Unit"},
	{"MED6", "Medic Response — 6-Person Rule", "medical", "1 Medic, 1 Engine"},
	{"MED7", "Medic Response — 7-Person Rule", "medical", "1 Medic, 1 Engine"},
	{"MED14", "Medic Response — 14-Member Rule", "medical", "1 Medic, 2 Engines"},
	{"MEDF", "Medic Response (Freeway)", "medical", "1 Medic, 1 Engine"},
	{"MVA", "Motor Vehicle Accident", "rescue", "1 Engine, 1 Aid Unit"},
	{"MVAF", "Motor Vehicle Accident (Freeway)", "rescue", "1 Engine, 1 Aid, 1 Medic"},
	{"FIB", "Fire In Building", "fire", "4 Engines, 2 Ladders, 2 Chiefs"},
	{"FIBHB", "Fire In Houseboat", "fire", "3 Engines, 1 Ladder, 1 Chief"},
	{"FIBRES", "Fire In Single Family Residence", "fire", "3 Engines, 1 Ladder, 1 Medic, 1 Chief"},
	{"CAR", "Car Fire", "fire", "1 Engine"},
	{"CARX", "Car Fire With Exposure", "fire", "2 Engines, 1 Ladder"},
	{"BRSH", "Brush Fire", "fire", "2 Engines"},
	{"BRSHX", "Brush Fire With Exposure", "fire", "3 Engines, 1 Ladder"},
	{"CHIM", "Chimney Fire", "fire", "1 Engine, 1 Ladder"},
	{"DUMP", "Dumpster Fire", "fire", "1 Engine"},
	{"DUMPX", "Dumpster Fire With Exposure", "fire", "2 Engines"},
	{"GARAG", "Garage/Shed Fire (Detached)", "fire", "2 Engines, 1 Ladder"},
	{"FOS", "Food On Stove", "fire", "1 Engine"},
	{"FOSO", "Food On Stove — Occupied", "fire", "1 Engine, 1 Aid"},
	{"RUBISH", "Rubbish Fire", "fire", "1 Engine"},
	{"BARK", "Beauty Bark Fire", "fire", "1 Engine"},
	{"ILBURN", "Illegal Burn", "fire", "1 Engine"},
	{"TANKER", "Tanker Fire", "fire", "3 Engines, 1 Ladder, 1 Hazmat"},
	{"SHED", "Shed Fire (Detached)", "fire", "1 Engine, 1 Ladder"},
	{"VAULT", "Vault Fire", "fire", "1 Engine"},
	{"PIERF", "Pier Fire", "fire", "2 Engines, 1 Marine"},
	{"MARIN", "Boat Fire In Marina", "fire", "2 Engines, 1 Marine"},
	{"HAZ", "Hazardous Material Spill/Leak", "hazmat", "1 Engine, 1 Hazmat Team"},
	{"HAZ80", "Hazardous Material — Unknown", "hazmat", "1 Engine, 1 Hazmat"},
	{"HAZADV", "Hazmat — Advised", "hazmat", "1 Engine"},
	{"HAZD", "Hazmat — Decontamination", "hazmat", "1 Engine, 1 Hazmat, 1 Medic"},
	{"HAZF", "Hazmat With Fire", "hazmat", "2 Engines, 1 Ladder, 1 Hazmat, 1 Chief"},
	{"HAZMCI", "Hazmat — Multi-Casualty", "hazmat", "2 Engines, 1 Hazmat, 2 Medics"},
	{"HAZRAD", "Hazmat — Radiation", "hazmat", "1 Engine, 1 Hazmat"},
	{"HAZWHT", "Hazmat — Reduced Response", "hazmat", "1 Engine"},
	{"FUELSP", "Fuel Spill", "hazmat", "1 Engine, 1 Hazmat"},
	{"NGL", "Natural Gas Leak", "hazmat", "1 Engine, 1 Ladder"},
	{"ELEC", "Electrical Problem", "hazmat", "1 Engine"},
	{"SPILL", "Spill/Leak — Non-Hazmat", "hazmat", "1 Engine"},
	{"TRANSF", "Transformer Fire/Problem", "hazmat", "1 Engine"},
	{"WIRES", "Wires Down", "other", "1 Engine"},
	{"ODOR", "Odor Investigation", "other", "1 Engine"},
	{"FURN", "Furnace Overheat", "other", "1 Engine"},
	{"RESCAR", "Rescue — Vehicle Extrication", "rescue", "1 Engine, 1 Ladder, 1 Medic"},
	{"RESCS", "Rescue — Confined Space", "rescue", "2 Engines, 1 Ladder, 1 Technical Rescue"},
	{"RESELV", "Rescue — Elevator", "rescue", "1 Engine, 1 Ladder"},
	{"RESFW", "Rescue — Fresh Water", "rescue", "1 Engine, 1 Marine"},
	{"RESFWM", "Rescue — Fresh Water Major", "rescue", "2 Engines, 2 Marine"},
	{"RESHVY", "Rescue — Heavy", "rescue", "2 Engines, 1 Ladder, 1 Technical Rescue"},
	{"RESICE", "Rescue — Ice", "rescue", "1 Engine, 1 Marine"},
	{"RESLOC", "Rescue — Lock-In/Out", "rescue", "1 Engine"},
	{"RESMAJ", "Rescue — Heavy Major", "rescue", "3 Engines, 1 Ladder, 1 Technical Rescue, 1 Chief"},
	{"RESROP", "Rescue — Rope", "rescue", "1 Engine, 1 Ladder, 1 Technical Rescue"},
	{"RESSW", "Rescue — Salt Water", "rescue", "1 Engine, 1 Marine"},
	{"RESSWM", "Rescue — Salt Water Major", "rescue", "2 Engines, 2 Marine"},
	{"RESTR", "Rescue — Trench", "rescue", "2 Engines, 1 Technical Rescue"},
	{"MCI", "Multiple Casualty Incident", "medical", "4 Engines, 2 Ladders, 4 Medics, 2 Chiefs"},
	{"AIRCR", "Aircraft Crash", "rescue", "4 Engines, 2 Ladders, 2 Medics, 1 Chief"},
	{"EXPMAJ", "Explosion — Major", "fire", "4 Engines, 2 Ladders, 2 Medics, 1 Chief"},
	{"EXPMIN", "Explosion — Minor", "fire", "2 Engines, 1 Ladder"},
	{"AWWA", "Assault With Weapons", "medical", "1 Aid Unit"},
	{"AWW7", "Assault With Weapons (7-Person)", "medical", "1 Aid, 1 Engine"},
	{"AWW14", "Assault With Weapons (14-Person)", "medical", "1 Aid, 2 Engines"},
	{"ASPD", "Assist Police Department", "other", "1 Engine or Aid"},
	{"TRAINF", "Train Derailment With Fire/Hazmat", "fire", "4 Engines, 2 Ladders, 1 Hazmat, 1 Chief"},
	{"TUNF", "Tunnel Fire", "fire", "4 Engines, 2 Ladders, 1 Chief"},
	{"TUNAID", "Tunnel Aid", "medical", "1 Aid, 1 Engine"},
	{"TUNMED", "Tunnel Medic", "medical", "1 Medic, 1 Engine"},
	{"TUNRES", "Tunnel Rescue", "rescue", "2 Engines, 1 Technical Rescue"},
	{"WATMI", "Water Job — Minor", "other", "1 Engine"},
	{"WATMJ", "Water Job — Major", "other", "2 Engines"},
	{"INVEIS", "Investigate — In Service", "other", "1 Engine"},
	{"INVEOS", "Investigate — Out of Service", "other", "1 Engine"},
	{"1RED", "Red Response — 1 Unit", "fire", "1 Unit"},
	{"3RED", "Red Response — 1 Engine, 1 Ladder, 1 Chief", "fire", "1 Engine, 1 Ladder, 1 Chief"},
	{"4RED", "Red Response — 2 Engines, 1 Ladder, 1 Chief", "fire", "2 Engines, 1 Ladder, 1 Chief"},
	{"COMED", "Possible Patient", "medical", "1 Aid Unit"},
	{"HELPFF", "Help The Firefighter — Mayday", "fire", "Full Alarm Response"},
}

// labelToIndex maps lowercased labels to the first table entry carrying
// that label, built once at init.
var labelToIndex = func() map[string]int {
	m := make(map[string]int, len(typeCodes))
	for i, tc := range typeCodes {
		key := strings.ToLower(tc.Label)
		if _, ok := m[key]; !ok {
			m[key] = i
		}
	}
	return m
}()

// LookupTypeCode resolves a free-text incident type to an official type-code
// record. Tries an exact case-insensitive label match first, then substring
// matches in either direction over the table in fixed order. Returns nil
// when nothing matches.
func LookupTypeCode(typ string) *TypeCode {
	if typ == "" {
		return nil
	}
	lower := strings.ToLower(strings.TrimSpace(typ))
	if lower == "" {
		return nil
	}

	if i, ok := labelToIndex[lower]; ok {
		tc := typeCodes[i]
		return &tc
	}
	for i := range typeCodes {
		label := strings.ToLower(typeCodes[i].Label)
		if strings.Contains(lower, label) || strings.Contains(label, lower) {
			tc := typeCodes[i]
			return &tc
		}
	}
	return nil
}

// unitTypeLabels maps an apparatus code prefix to its description.
var unitTypeLabels = map[string]string{
	"E":   "Engine",
	"L":   "Ladder",
	"M":   "Medic",
	"A":   "Aid",
	"B":   "Battalion Chief",
	"R":   "Rescue",
	"HM":  "Hazmat",
	"FB":  "Fireboat",
	"RB":  "Rescue Boat",
	"MAR": "Marine",
	"HO":  "Health One",
	"MCI": "Mass Casualty",
	"AIR": "Air Unit",
}

// UnitTypeLabel describes an apparatus unit by its letter prefix, e.g.
// "E30" is an Engine. Unknown prefixes come back as-is.
func UnitTypeLabel(unitCode string) string {
	prefix := strings.ToUpper(strings.TrimRight(unitCode, "0123456789"))
	if label, ok := unitTypeLabels[prefix]; ok {
		return label
	}
	return prefix
}
