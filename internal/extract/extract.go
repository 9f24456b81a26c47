// Package extract scans free-form messages for locations and date/time
// expressions. Matches are advisory: classification never depends on them,
// but a detected city upgrades a generic location or booking reply into a
// city-specific one.
package extract

import (
	"regexp"
	"strings"
)

// cityAliases maps informal spellings to canonical city names. Canonical
// names must match the catalog outlet directory.
var cityAliases = map[string]string{
	"chennai":         "Chennai",
	"madras":          "Chennai",
	"bangalore":       "Bangalore",
	"bengaluru":       "Bangalore",
	"coimbatore":      "Coimbatore",
	"cbe":             "Coimbatore",
	"madurai":         "Madurai",
	"salem":           "Salem",
	"trichy":          "Trichy",
	"tiruchirappalli": "Trichy",
	"tirupati":        "Tirupati",
	"tirupur":         "Tirupur",
	"erode":           "Erode",
	"kanchipuram":     "Kanchipuram",
	"puducherry":      "Puducherry",
	"pondicherry":     "Puducherry",
	"karaikal":        "Karaikal",
	"gandhinagar":     "Gandhinagar",
	"surat":           "Surat",
	"ahmedabad":       "Ahmedabad",
	"mumbai":          "Mumbai",
	"pune":            "Pune",
	"delhi":           "Delhi",
	"hyderabad":       "Hyderabad",
	"kolkata":         "Kolkata",
	"kochi":           "Kochi",
	"jaipur":          "Jaipur",
	"lucknow":         "Lucknow",
	"dubai":           "Dubai",
	"uae":             "Dubai",
}

// states recognized for franchise routing; checked after cities so a
// message naming both yields the more specific city.
var states = []string{
	"Tamil Nadu", "Kerala", "Karnataka", "Andhra Pradesh", "Telangana",
	"Gujarat", "Maharashtra", "Rajasthan", "Delhi", "West Bengal",
	"Punjab", "Haryana", "Uttar Pradesh", "Puducherry", "UAE",
}

// Location returns the canonical city or state mentioned in text, or
// ("", false) when none is found. Longer aliases are checked first so
// "tiruchirappalli" is not shadowed by a shorter substring.
func Location(text string) (string, bool) {
	lowered := strings.ToLower(text)

	best := ""
	bestLen := 0
	for alias, canonical := range cityAliases {
		if len(alias) > bestLen && strings.Contains(lowered, alias) {
			best = canonical
			bestLen = len(alias)
		}
	}
	if best != "" {
		return best, true
	}

	for _, state := range states {
		if strings.Contains(lowered, strings.ToLower(state)) {
			return state, true
		}
	}
	return "", false
}

var (
	weekdayRe  = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	relativeRe = regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|day after tomorrow|this weekend|next week)\b`)
	clockRe    = regexp.MustCompile(`(?i)\b((1[0-2]|0?[1-9])([:.][0-5][0-9])?\s?(am|pm))\b`)
)

// DateTime describes a detected scheduling expression.
type DateTime struct {
	Day  string // weekday or relative-day phrase, lower-cased
	Time string // clock time as written, e.g. "6pm", "10:30 am"
}

// DateTimeMention finds a day and/or clock-time expression in text. Returns
// false when neither is present.
func DateTimeMention(text string) (DateTime, bool) {
	var dt DateTime
	if m := weekdayRe.FindString(text); m != "" {
		dt.Day = strings.ToLower(m)
	} else if m := relativeRe.FindString(text); m != "" {
		dt.Day = strings.ToLower(m)
	}
	if m := clockRe.FindString(text); m != "" {
		dt.Time = strings.ToLower(strings.TrimSpace(m))
	}
	return dt, dt.Day != "" || dt.Time != ""
}
