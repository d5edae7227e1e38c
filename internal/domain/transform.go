package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	// massKgRe matches a number immediately followed by the "kg" unit token,
	// e.g. "~16,800 kg (37,000 lb)" -> "16,800". Thousands separators are
	// allowed and stripped before conversion.
	massKgRe = regexp.MustCompile(`([\d,]+(?:\.\d+)?)\s*kg`)

	// numberRe matches any number-like token, used as a fallback when no
	// kg-suffixed value is present. A bare number is assumed to be kilograms.
	numberRe = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)
)

// launchDateFormats are tried in order against a citation-stripped date string.
// The wiki table mostly uses the first form ("January 3, 2024 03:44").
var launchDateFormats = []string{
	"January 2, 2006 15:04",
	"January 2, 2006",
	"2006-01-02",
	"01/02/2006",
	"2 January 2006 15:04",
	"2 January 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// massSentinels are placeholder values treated as missing payload mass.
var massSentinels = map[string]bool{
	"":        true,
	"unknown": true,
	"nan":     true,
	"n/a":     true,
	"tbd":     true,
	"—":       true,
	"-":       true,
}

// ExtractPayloadMass pulls a payload mass in kilograms out of free text such
// as "~16,800 kg (37,000 lb)". A number followed by "kg" wins; otherwise the
// first number-like token anywhere in the string is used. Missing, sentinel,
// or numberless input yields 0. The heuristic is deliberately lossy: a bare
// number is taken as kilograms even if it was actually pounds.
func ExtractPayloadMass(value string) float64 {
	value = strings.TrimSpace(value)
	if massSentinels[strings.ToLower(value)] {
		return 0
	}

	if m := massKgRe.FindStringSubmatch(value); len(m) == 2 {
		return parseMassNumber(m[1])
	}
	if m := numberRe.FindString(value); m != "" {
		return parseMassNumber(m)
	}
	return 0
}

func parseMassNumber(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseLaunchDate parses a scraped date string, tolerating a trailing
// bracketed citation marker such as "[24]". Everything from the first bracket
// onward is discarded, then the candidate formats are tried in order. Strings
// matching none of them get one more chance through a generic layout-detecting
// parser, so drifted source formats degrade gracefully instead of becoming
// missing dates. Unparsable input returns ok=false rather than an error.
func ParseLaunchDate(value string) (time.Time, bool) {
	if i := strings.Index(value, "["); i >= 0 {
		value = value[:i]
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range launchDateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseAny(value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// LaunchYear derives the year column value from a parsed date.
// Returns "" when the date failed to parse, keeping the column optional.
func LaunchYear(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return strconv.Itoa(t.Year())
}

// FormatLaunchDate renders a parsed date in the cleaned CSV's date format.
func FormatLaunchDate(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// LaunchSiteCode abbreviates a launch site name to the first letter of each
// word, e.g. "Cape Canaveral SLC-40" -> "CCS".
func LaunchSiteCode(site string) string {
	var b strings.Builder
	for _, word := range strings.Fields(site) {
		b.WriteRune([]rune(word)[0])
	}
	return b.String()
}

// NormalizeHeader strips a trailing bracketed citation marker from a scraped
// column header, e.g. "Version, booster[b]" -> "Version, booster".
func NormalizeHeader(name string) string {
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// SuccessFlag encodes a launch outcome as 1 for an exact "Success", else 0.
func SuccessFlag(outcome string) int {
	if strings.TrimSpace(outcome) == "Success" {
		return 1
	}
	return 0
}

// CoerceInt normalizes a numeric text field, returning "" for values that are
// not plain integers (footnotes, dashes, merged cells from the scrape).
func CoerceInt(value string) string {
	value = strings.TrimSpace(value)
	if _, err := strconv.Atoi(value); err != nil {
		return ""
	}
	return value
}
