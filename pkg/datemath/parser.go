package datemath

import (
	"strconv"
	"strings"
	"time"
)

// ExtractDate scans free text for a due date relative to baseTime.
//
// Relative phrases are checked first, in table order; the first phrase
// present in the text wins and resolves to baseTime plus its day offset.
// Otherwise numeric D/M/Y and "D month Y" patterns are tried in order.
// Calendar-invalid matches (month 13, day 31 in February) are skipped
// silently and scanning continues with the next pattern. No date found
// returns ok=false, never an error.
func ExtractDate(text string, baseTime time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	for _, rule := range relativeRules {
		if strings.Contains(lower, rule.Phrase) {
			return baseTime.AddDate(0, 0, rule.Days), true
		}
	}

	if m := numericDatePattern.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := expandYear(m[3])
		if t, ok := makeDate(year, month, day); ok {
			return t, true
		}
	}

	if m := monthNamePattern.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := monthAbbrevs[m[2]]
		year := expandYear(m[3])
		if t, ok := makeDate(year, month, day); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// ExtractDuration scans free text for an estimated duration and returns it
// in minutes. Unit rules are tried in table order; the first match wins.
func ExtractDuration(text string) (int, bool) {
	lower := strings.ToLower(text)

	for _, rule := range durationRules {
		if m := rule.Pattern.FindStringSubmatch(lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return n * rule.Minutes, true
		}
	}

	return 0, false
}

// expandYear interprets a 2-digit year as 2000+YY.
func expandYear(s string) int {
	y, _ := strconv.Atoi(s)
	if len(s) == 2 {
		return 2000 + y
	}
	return y
}

// makeDate validates the calendar date before constructing it;
// time.Date would silently normalize month 13 to January.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	// Day zero of the next month is the last day of this month.
	lastDay := time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
