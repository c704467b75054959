package geo

import (
	"fmt"
	"strings"
)

// stateFIPS maps two-digit state FIPS codes to state names as they appear in
// OEWS state files.
var stateFIPS = map[string]string{
	"01": "Alabama",
	"02": "Alaska",
	"04": "Arizona",
	"05": "Arkansas",
	"06": "California",
	"08": "Colorado",
	"09": "Connecticut",
	"10": "Delaware",
	"11": "District of Columbia",
	"12": "Florida",
	"13": "Georgia",
	"15": "Hawaii",
	"16": "Idaho",
	"17": "Illinois",
	"18": "Indiana",
	"19": "Iowa",
	"20": "Kansas",
	"21": "Kentucky",
	"22": "Louisiana",
	"23": "Maine",
	"24": "Maryland",
	"25": "Massachusetts",
	"26": "Michigan",
	"27": "Minnesota",
	"28": "Mississippi",
	"29": "Missouri",
	"30": "Montana",
	"31": "Nebraska",
	"32": "Nevada",
	"33": "New Hampshire",
	"34": "New Jersey",
	"35": "New Mexico",
	"36": "New York",
	"37": "North Carolina",
	"38": "North Dakota",
	"39": "Ohio",
	"40": "Oklahoma",
	"41": "Oregon",
	"42": "Pennsylvania",
	"44": "Rhode Island",
	"45": "South Carolina",
	"46": "South Dakota",
	"47": "Tennessee",
	"48": "Texas",
	"49": "Utah",
	"50": "Vermont",
	"51": "Virginia",
	"53": "Washington",
	"54": "West Virginia",
	"55": "Wisconsin",
	"56": "Wyoming",
	"72": "Puerto Rico",
}

var fipsByName = func() map[string]string {
	m := make(map[string]string, len(stateFIPS))
	for code, name := range stateFIPS {
		m[strings.ToLower(name)] = code
	}
	return m
}()

// NormalizeFIPS zero-pads a state FIPS code to two digits ("1" → "01").
func NormalizeFIPS(code string) string {
	code = strings.TrimSpace(code)
	if len(code) == 1 {
		return "0" + code
	}
	return code
}

// FormatFIPS formats a numeric state FIPS code.
func FormatFIPS(code int) string {
	return fmt.Sprintf("%02d", code)
}

// StateName returns the state name for a FIPS code.
func StateName(fips string) (string, bool) {
	name, ok := stateFIPS[NormalizeFIPS(fips)]
	return name, ok
}

// StateFIPS returns the FIPS code for a state name, case-insensitively.
func StateFIPS(name string) (string, bool) {
	code, ok := fipsByName[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}
