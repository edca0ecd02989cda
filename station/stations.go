// Package station holds the static SFD station roster and the unit-code
// lookup built from it.
//
// Coordinates sourced from Seattle City GIS (WKID 4326); apparatus
// assignments from seattle.gov/fire. Never mutated at runtime.
package station

// Station is one fixed fire station with its normally-assigned apparatus.
type Station struct {
	Number    int      `json:"number"`
	Address   string   `json:"address"`
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	Apparatus []string `json:"apparatus"`
}

var stations = []Station{
	{2, "2320 4th Ave", 47.616074, -122.344493, []string{"E2", "L4", "A2", "A4", "HO1"}},
	{3, "1735 W Thurman St", 47.658139, -122.377915, []string{"FB1", "FB3", "RB3"}},
	{5, "925 Alaskan Way", 47.603643, -122.338829, []string{"E5", "FB2", "FB5", "RB5"}},
	{6, "405 MLK Jr Way S", 47.599053, -122.297872, []string{"E6", "M6"}},
	{8, "110 Lee St", 47.631175, -122.354985, []string{"E8"}},
	{9, "3829 Linden Ave N", 47.653625, -122.348885, []string{"E9"}},
	{10, "400 S Washington St", 47.601016, -122.328731, []string{"E10", "L1", "A5", "A10", "HM1"}},
	{11, "1514 SW Holden St", 47.533934, -122.354695, []string{"E11"}},
	{13, "3601 Beacon Ave S", 47.571742, -122.308646, []string{"E13", "B5"}},
	{14, "3224 4th Ave S", 47.574617, -122.328559, []string{"E14", "R1", "A14"}},
	{16, "6846 Oswego Pl NE", 47.679077, -122.323249, []string{"E16"}},
	{17, "1050 NE 50th St", 47.665167, -122.316659, []string{"E17", "L9", "M17", "B6"}},
	{18, "1521 NW Market St", 47.668390, -122.377331, []string{"E18", "L8", "M18", "B4"}},
	{20, "2800 15th Ave W", 47.644931, -122.375789, []string{"E20"}},
	{21, "7304 Greenwood Ave N", 47.682028, -122.354944, []string{"E21", "MCI1"}},
	{22, "901 E Roanoke St", 47.642981, -122.320850, []string{"E22"}},
	{24, "401 N 130th St", 47.723053, -122.353826, []string{"E24"}},
	{25, "1300 E Pine St", 47.615568, -122.315096, []string{"E25", "L10", "A25", "B2"}},
	{26, "800 S Cloverdale St", 47.526718, -122.322376, []string{"E26", "M26", "AIR1"}},
	{27, "1000 S Myrtle St", 47.539660, -122.319907, []string{"E27"}},
	{28, "5968 Rainier Ave S", 47.548476, -122.276503, []string{"E28", "L12", "M28"}},
	{29, "2139 Ferry Ave SW", 47.584393, -122.388750, []string{"E29"}},
	{30, "2931 S Mt Baker Blvd", 47.575640, -122.294691, []string{"E30", "M30"}},
	{31, "10503 Interlake Ave N (interim)", 47.705234, -122.340887, []string{"E31"}},
	{32, "4700 38th Ave SW", 47.560820, -122.379644, []string{"E32", "L11", "M32", "B7"}},
	{33, "9645 Renton Ave S", 47.515927, -122.268662, []string{"E33"}},
	{34, "633 32nd Ave E", 47.626000, -122.291334, []string{"E34"}},
	{35, "8729 15th Ave NW", 47.693288, -122.377173, []string{"E35"}},
	{36, "3600 23rd Ave SW", 47.571034, -122.361734, []string{"E36"}},
	{37, "7700 35th Ave SW", 47.533552, -122.376324, []string{"E37"}},
	{38, "4004 NE 55th St", 47.668750, -122.284399, []string{"E38"}},
	{39, "2806 NE 127th St", 47.721257, -122.297347, []string{"E39"}},
	{40, "9401 35th Ave NE", 47.696768, -122.290937, []string{"E40"}},
	{41, "2416 34th Ave W", 47.640152, -122.400618, []string{"E41"}},
}

// All returns the roster in station-number order.
func All() []Station {
	out := make([]Station, len(stations))
	copy(out, stations)
	return out
}
