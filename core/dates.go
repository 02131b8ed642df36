package core

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FallbackDate is returned whenever a value has no recognizable date form.
// Returning a sentinel instead of an error keeps every caller free of date
// error handling; a bad cell simply becomes a visibly wrong birth date.
const FallbackDate = "2000-01-01"

// spreadsheetEpochOffset is the day count between the legacy spreadsheet
// epoch (1899-12-30) and 1970-01-01.
const spreadsheetEpochOffset = 25569

var (
	dayFirstRe  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	yearFirstRe = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})`)

	// free-text formats tried last, in order
	looseLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"January 2, 2006",
		"Jan 2, 2006",
		"2 January 2006",
		"02 Jan 2006",
		"Mon Jan 2 2006",
	}
)

// NormalizeDate coerces a heterogeneous date representation (spreadsheet
// serial number, day-first string, year-first string, loose free text) into
// an ISO YYYY-MM-DD string. It never fails; see FallbackDate.
//
// Recognition order matters: an ambiguous "01-02-2020" is always read
// day-first, never month-first.
func NormalizeDate(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return FallbackDate
	case float64:
		return serialToDate(v)
	case int:
		return serialToDate(float64(v))
	case int64:
		return serialToDate(float64(v))
	}

	s := strings.TrimSpace(fmt.Sprint(value))
	if s == "" {
		return FallbackDate
	}

	// cells usually arrive as text; a plain number is still a serial date
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return serialToDate(n)
	}

	if m := dayFirstRe.FindStringSubmatch(s); m != nil {
		return isoDate(m[3], m[2], m[1])
	}
	if m := yearFirstRe.FindStringSubmatch(s); m != nil {
		return isoDate(m[1], m[2], m[3])
	}

	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return FallbackDate
}

func serialToDate(serial float64) string {
	secs := math.Round((serial - spreadsheetEpochOffset) * 86400)
	return time.Unix(int64(secs), 0).UTC().Format("2006-01-02")
}

func isoDate(year, month, day string) string {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s-%02d-%02d", year, m, d)
}
