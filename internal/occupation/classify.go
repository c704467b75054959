package occupation

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Field is the short job-field label assigned to an occupation code. Labels are
// substrings of the matching BLS major-group titles.
type Field string

type fieldBound struct {
	upper int
	field Field
}

// BLS SOC major-group boundaries, checked in order. Codes at or past the last
// bound fall into Transportation.
var fieldBounds = []fieldBound{
	{130000, "Management"},
	{150000, "Business"},
	{170000, "Computer"},
	{190000, "Architecture"},
	{210000, "Life"},
	{230000, "Community"},
	{250000, "Legal"},
	{270000, "Education"},
	{290000, "Arts"},
	{310000, "Healthcare Practitioners"},
	{330000, "Healthcare Support"},
	{350000, "Protective"},
	{370000, "Food"},
	{390000, "Building"},
	{410000, "Personal"},
	{430000, "Sales"},
	{450000, "Office"},
	{470000, "Farming"},
	{490000, "Construction"},
	{510000, "Installation"},
	{530000, "Production"},
}

const lastField Field = "Transportation"

// Classify maps a six-digit SOC code (e.g. 291141) to its job field.
func Classify(code int) (Field, error) {
	if code < 0 {
		return "", eris.Wrapf(ErrInvalidInput, "classify: negative occupation code %d", code)
	}
	for _, b := range fieldBounds {
		if code < b.upper {
			return b.field, nil
		}
	}
	return lastField, nil
}

// Fields returns every label in boundary order.
func Fields() []Field {
	out := make([]Field, 0, len(fieldBounds)+1)
	for _, b := range fieldBounds {
		out = append(out, b.field)
	}
	return append(out, lastField)
}

// MatchesField reports whether a field title selects the given label. Matching is
// a plain substring test: "Life" selects "Life, Physical, and Social Science".
func MatchesField(title string, label string) bool {
	return strings.Contains(title, label)
}

// majorGroupTitles maps two-digit SOC prefixes to major-group titles.
// See https://www.bls.gov/soc/major_groups.htm
var majorGroupTitles = map[string]string{
	"11": "Management",
	"13": "Business and Financial Operations",
	"15": "Computer and Mathematical",
	"17": "Architecture and Engineering",
	"19": "Life, Physical, and Social Science",
	"21": "Community and Social Services",
	"23": "Legal",
	"25": "Education, Training, and Library",
	"27": "Arts, Design, Entertainment, Sports, and Media",
	"29": "Healthcare Practitioners and Technical",
	"31": "Healthcare Support",
	"33": "Protective Service Occupations",
	"35": "Food Preparation and Serving Related",
	"37": "Building and Grounds Cleaning and Maintenance",
	"39": "Personal Care and Service",
	"41": "Sales and Related",
	"43": "Office and Administrative Support",
	"45": "Farming, Fishing, and Forestry",
	"47": "Construction and Extraction",
	"49": "Installation, Maintenance, and Repair",
	"51": "Production",
	"53": "Transportation and Material Moving",
	"55": "Military Specific",
}

// MajorGroupTitle returns the title for a two-digit SOC prefix.
func MajorGroupTitle(prefix string) (string, bool) {
	t, ok := majorGroupTitles[prefix]
	return t, ok
}

// MajorGroupPrefix returns the two-digit SOC prefix of a six-digit code.
func MajorGroupPrefix(code int) string {
	return fmt.Sprintf("%02d", code/10000)
}
