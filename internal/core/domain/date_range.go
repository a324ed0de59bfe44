package domain

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used by transaction dates.
const DateLayout = "2006-01-02"

// DateRange is an inclusive [From, To] range of ISO dates.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Bounded reports whether both ends are set.
func (r DateRange) Bounded() bool { return r.From != "" && r.To != "" }

// Contains reports whether date falls in the range. Unbounded ranges
// contain everything.
func (r DateRange) Contains(date string) bool {
	if !r.Bounded() {
		return true
	}
	return date >= r.From && date <= r.To
}

// QuickRange names a preset date range on the transactions view.
type QuickRange string

const (
	RangeToday          QuickRange = "today"
	RangeYesterday      QuickRange = "yesterday"
	RangeLastWeek       QuickRange = "last_week"
	RangeLastMonth      QuickRange = "last_month"
	RangeLast365        QuickRange = "last_365"
	RangeLastFiscalYear QuickRange = "last_fiscal_year"
)

// fiscalYearStart is the first month of the local fiscal year.
const fiscalYearStart = time.April

// Range computes the preset relative to today.
func (q QuickRange) Range(today time.Time) (DateRange, error) {
	d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	switch q {
	case RangeToday:
		return dayRange(d, d), nil
	case RangeYesterday:
		y := d.AddDate(0, 0, -1)
		return dayRange(y, y), nil
	case RangeLastWeek:
		return trailingDays(d, 7), nil
	case RangeLastMonth:
		return trailingDays(d, 30), nil
	case RangeLast365:
		return trailingDays(d, 365), nil
	case RangeLastFiscalYear:
		return LastFiscalYear(d), nil
	default:
		return DateRange{}, newValidationError(fmt.Sprintf("unknown range %q", string(q)))
	}
}

// LastFiscalYear returns April 1 - March 31 of the most recently completed
// fiscal year.
func LastFiscalYear(today time.Time) DateRange {
	startYear := today.Year() - 1
	if today.Month() < fiscalYearStart {
		startYear--
	}
	loc := today.Location()
	from := time.Date(startYear, fiscalYearStart, 1, 0, 0, 0, 0, loc)
	to := time.Date(startYear+1, time.March, 31, 0, 0, 0, 0, loc)
	return dayRange(from, to)
}

// trailingDays covers n calendar days ending today.
func trailingDays(today time.Time, n int) DateRange {
	return dayRange(today.AddDate(0, 0, -(n-1)), today)
}

func dayRange(from, to time.Time) DateRange {
	return DateRange{From: from.Format(DateLayout), To: to.Format(DateLayout)}
}
