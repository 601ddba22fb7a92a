package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Present is the sentinel end date for ongoing jobs and timeframes.
const Present = "Present"

var (
	yearMonthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	timeframeRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])( to (\d{4}-(0[1-9]|1[0-2])|Present))?$`)
)

// YearMonth is a date token in canonical YYYY-MM form, or the Present
// sentinel where a field allows it. Canonical tokens compare correctly
// as plain strings.
type YearMonth string

// Valid reports whether ym is a canonical YYYY-MM token.
func (ym YearMonth) Valid() bool {
	return yearMonthRe.MatchString(string(ym))
}

// IsPresent reports whether ym is the Present sentinel.
func (ym YearMonth) IsPresent() bool {
	return string(ym) == Present
}

// Year returns the year component, or 0 for invalid tokens.
func (ym YearMonth) Year() int {
	if !ym.Valid() {
		return 0
	}
	y, _ := strconv.Atoi(string(ym)[:4])
	return y
}

// Time returns the first instant of the month in UTC.
func (ym YearMonth) Time() time.Time {
	t, _ := time.Parse("2006-01", string(ym))
	return t
}

// Before reports whether ym is strictly earlier than other. Present is
// later than any concrete month.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.IsPresent() {
		return false
	}
	if other.IsPresent() {
		return true
	}
	return string(ym) < string(other)
}

// After reports whether ym is strictly later than other.
func (ym YearMonth) After(other YearMonth) bool {
	return other.Before(ym)
}

// CurrentYearMonth returns the YearMonth containing now.
func CurrentYearMonth(now time.Time) YearMonth {
	return YearMonth(now.Format("2006-01"))
}

// Timeframe is either a single month ("2021-05") or a range
// ("2020-01 to 2021-05", "2020-01 to Present").
type Timeframe string

// Valid reports whether tf matches one of the canonical timeframe forms.
func (tf Timeframe) Valid() bool {
	return timeframeRe.MatchString(string(tf))
}

// Bounds returns the start and end months of the timeframe. A single
// month is its own start and end. The end may be Present.
func (tf Timeframe) Bounds() (start, end YearMonth) {
	s := string(tf)
	if i := strings.Index(s, " to "); i >= 0 {
		return YearMonth(s[:i]), YearMonth(s[i+4:])
	}
	return YearMonth(s), YearMonth(s)
}

// YearsBefore returns how many years before now the timeframe starts.
func (tf Timeframe) YearsBefore(now time.Time) float64 {
	start, _ := tf.Bounds()
	if !start.Valid() {
		return 0
	}
	return now.Sub(start.Time()).Hours() / 24 / 365.25
}

func (tf Timeframe) String() string { return string(tf) }

// SingleMonth builds a single-month timeframe.
func SingleMonth(ym YearMonth) Timeframe {
	return Timeframe(ym)
}

// Range builds a range timeframe. End may be Present.
func Range(start, end YearMonth) Timeframe {
	return Timeframe(fmt.Sprintf("%s to %s", start, end))
}
