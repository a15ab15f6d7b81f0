package datemath

import "regexp"

// relativeRule maps a literal phrase to an offset in days from the
// reference time. Rules are scanned in table order; the first phrase
// found anywhere in the text wins, so the order is load-bearing.
type relativeRule struct {
	Phrase string
	Days   int
}

var relativeRules = []relativeRule{
	{"today", 0},
	{"tomorrow", 1},
	{"next week", 7},
	{"next month", 30},
	{"in a week", 7},
	{"in a month", 30},
}

// durationRule converts the first captured number to minutes. Scanned in
// table order; first matching rule wins.
type durationRule struct {
	Pattern *regexp.Regexp
	Minutes int
}

var durationRules = []durationRule{
	{regexp.MustCompile(`(\d+)\s*hours?`), 60},
	{regexp.MustCompile(`(\d+)\s*mins?`), 1},
	{regexp.MustCompile(`(\d+)\s*minutes?`), 1},
	{regexp.MustCompile(`(\d+)\s*days?`), 1440},
	{regexp.MustCompile(`(\d+)\s*weeks?`), 10080},
}

var (
	// numericDatePattern matches D/M/Y or D-M-Y with a 2- or 4-digit year.
	numericDatePattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)

	// monthNamePattern matches "D <month-abbrev> Y", e.g. "15 jan 2026".
	monthNamePattern = regexp.MustCompile(`(\d{1,2})\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{2,4})`)
)

var monthAbbrevs = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}
