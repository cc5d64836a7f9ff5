package date

import (
	"fmt"
	"time"
)

// Filter selects the dates belonging to a period: a whole year, a month of a
// year, or a single day. The zero Filter matches every date.
type Filter struct {
	year  int
	month time.Month
	day   int
}

// All returns a filter matching every date.
func All() Filter { return Filter{} }

// ByYear returns a filter matching every date of a year.
func ByYear(year int) Filter { return Filter{year: year} }

// ByMonth returns a filter matching every date of a month.
func ByMonth(year int, month time.Month) Filter { return Filter{year: year, month: month} }

// ByDay returns a filter matching a single day.
func ByDay(d Date) Filter { return Filter{year: d.y, month: d.m, day: d.d} }

// Match reports whether d belongs to the filter's period.
func (f Filter) Match(d Date) bool {
	if f.year != 0 && d.y != f.year {
		return false
	}
	if f.month != 0 && d.m != f.month {
		return false
	}
	if f.day != 0 && d.d != f.day {
		return false
	}
	return true
}

// String describes the period in a human readable way.
func (f Filter) String() string {
	switch {
	case f.year == 0:
		return "all time"
	case f.month == 0:
		return fmt.Sprintf("%d", f.year)
	case f.day == 0:
		return fmt.Sprintf("%s %d", f.month, f.year)
	default:
		return New(f.year, f.month, f.day).String()
	}
}
