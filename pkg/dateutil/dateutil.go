package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// ISODate is the layout used for every date carried on a return.
const ISODate = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD date. A full RFC 3339 timestamp is
// accepted and truncated to its date part.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(ISODate) {
		s = s[:len(ISODate)]
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	return t, nil
}

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysBefore returns the number of days of date's calendar year that fall
// strictly before date (0 for 1 January).
func DaysBefore(date time.Time) int {
	return date.YearDay() - 1
}

// SplitYearDays splits the calendar year containing date into the days
// before it and the days from it onward.
func SplitYearDays(date time.Time) (pre, post, total int) {
	total = DaysInYear(date.Year())
	pre = DaysBefore(date)
	return pre, total - pre, total
}
