package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// saleDateCentury is added to two-digit years. Records from before 2000 or after 2099
// will be misplaced.
const saleDateCentury = 2000

// ParseSaleDate parses a marketplace sale date in month/day/year form (e.g. "10/14/26")
// and returns the last second of that day (23:59:59) in loc.
// Two-digit years always land in the 2000s; four-digit years are used as-is.
func ParseSaleDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid sale date %q: expected month/day/year", value)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid sale date %q: %w", value, err)
		}
		nums[i] = n
	}

	month, day, year := nums[0], nums[1], nums[2]
	if year < 100 {
		year += saleDateCentury
	}

	t := time.Date(year, time.Month(month), day, 23, 59, 59, 0, loc)
	// time.Date normalizes out-of-range values, so reject anything that rolled over
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid sale date %q: day or month out of range", value)
	}
	return t, nil
}
