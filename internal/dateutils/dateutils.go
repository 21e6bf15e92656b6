// Package dateutils provides date parsing for Turkish financial instruments.
// Cheques and promissory notes print dates either numerically (15.03.2025,
// also with "/" or "-" separators and two-digit years) or in long form with
// a Turkish month name (7 MART 2025). Both are normalized to ISO 8601.
package dateutils

import (
	"regexp"
	"strings"
)

// DateLayoutISO is the canonical output layout for all extracted dates.
const DateLayoutISO = "2006-01-02"

var (
	// Characters that never occur in a printed date are blanked before
	// matching so that OCR noise around the date does not break the scan.
	dateNoise   = regexp.MustCompile(`(?i)[^0-9A-ZÇĞİÖŞÜ\s./-]`)
	numericDate = regexp.MustCompile(`\d{1,2}[./-]\d{1,2}[./-]\d{2,4}`)
	longDate    = regexp.MustCompile(`(?i)(\d{1,2})\s+(OCAK|ŞUBAT|SUBAT|MART|NİSAN|NISAN|MAYIS|HAZİRAN|HAZIRAN|TEMMUZ|AĞUSTOS|AGUSTOS|EYLÜL|EYLUL|EKİM|EKIM|KASIM|ARALIK)\s+(\d{2,4})`)
	dateSep     = regexp.MustCompile(`[./-]`)
)

// turkishMonths maps a Turkish month name to its two-digit month number.
// ASCII-folded spellings are included because OCR engines routinely drop
// the diacritics (ŞUBAT comes back as SUBAT).
var turkishMonths = map[string]string{
	"OCAK":    "01",
	"ŞUBAT":   "02",
	"SUBAT":   "02",
	"MART":    "03",
	"NİSAN":   "04",
	"NISAN":   "04",
	"MAYIS":   "05",
	"HAZİRAN": "06",
	"HAZIRAN": "06",
	"TEMMUZ":  "07",
	"AĞUSTOS": "08",
	"AGUSTOS": "08",
	"EYLÜL":   "09",
	"EYLUL":   "09",
	"EKİM":    "10",
	"EKIM":    "10",
	"KASIM":   "11",
	"ARALIK":  "12",
}

// ParseDateCandidate extracts the first date found in the input and returns
// it as an ISO 8601 string (YYYY-MM-DD). Numeric day-month-year forms take
// priority over long-form Turkish dates. Two-digit years are expanded by
// prefixing "20". Returns "" when no date pattern matches; a candidate that
// fails both forms is simply not a date, never an error.
func ParseDateCandidate(input string) string {
	cleaned := strings.TrimSpace(dateNoise.ReplaceAllString(input, " "))

	if numeric := numericDate.FindString(cleaned); numeric != "" {
		parts := dateSep.Split(numeric, -1)
		day, month, year := parts[0], parts[1], parts[2]
		return expandYear(year) + "-" + padTwo(month) + "-" + padTwo(day)
	}

	if parts := longDate.FindStringSubmatch(cleaned); parts != nil {
		day := padTwo(parts[1])
		month, ok := turkishMonths[strings.ToUpper(parts[2])]
		if !ok {
			month = "01"
		}
		return expandYear(parts[3]) + "-" + month + "-" + day
	}

	return ""
}

func expandYear(year string) string {
	if len(year) == 2 {
		return "20" + year
	}
	return year
}

func padTwo(value string) string {
	if len(value) == 1 {
		return "0" + value
	}
	return value
}
