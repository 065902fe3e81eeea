package command

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDatePattern = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	dmyDatePattern = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)

	// "BE" as a standalone uppercase token marks a Buddhist Era year, as
	// does the Thai abbreviation.
	beMarker = regexp.MustCompile(`\bBE\b`)
)

// buddhistEraOffset converts a Buddhist Era year to Gregorian.
const buddhistEraOffset = 543

// parsedDate is an extracted calendar date plus the raw substring it came
// from, so the amount scan and detail extraction can mask it.
type parsedDate struct {
	day   string
	month string
	year  string
	raw   string
}

// extractDate finds a DD/MM/YYYY, DD-MM-YYYY or YYYY-MM-DD token in the
// input. Years beyond 2100 or an explicit BE marker are treated as Buddhist
// Era and shifted to Gregorian.
func extractDate(input string) (parsedDate, bool) {
	var day, month, year int
	var raw string

	if m := isoDatePattern.FindStringSubmatch(input); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
		raw = m[0]
	} else if m := dmyDatePattern.FindStringSubmatch(input); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
		raw = m[0]
	} else {
		return parsedDate{}, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return parsedDate{}, false
	}

	if year > 2100 || beMarker.MatchString(input) || strings.Contains(input, "พ.ศ.") {
		year -= buddhistEraOffset
	}

	return parsedDate{
		day:   strconv.Itoa(day),
		month: monthAbbrev(time.Month(month)),
		year:  strconv.Itoa(year),
		raw:   raw,
	}, true
}

// currentDate snapshots a time.Time into the entry's date fields.
func currentDate(now time.Time) parsedDate {
	return parsedDate{
		day:   strconv.Itoa(now.Day()),
		month: monthAbbrev(now.Month()),
		year:  strconv.Itoa(now.Year()),
	}
}

// monthAbbrev returns the 3-letter English month abbreviation.
func monthAbbrev(m time.Month) string {
	return m.String()[:3]
}
