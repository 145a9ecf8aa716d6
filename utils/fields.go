package utils

import (
	"strconv"
	"strings"

	"hey-sweetie-print/models"
)

// FirstNonEmpty returns the first non-blank value among the candidate columns, in order.
// The value is returned untrimmed.
func FirstNonEmpty(row models.RawRow, candidates []string) string {
	for _, column := range candidates {
		if v, ok := row[column]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// FirstPresent returns the value of the first candidate column the row carries,
// even when that value is blank
func FirstPresent(row models.RawRow, candidates []string) string {
	for _, column := range candidates {
		if v, ok := row[column]; ok {
			return v
		}
	}
	return ""
}

// HasAny reports whether the row carries at least one of the columns
func HasAny(row models.RawRow, columns []string) bool {
	for _, column := range columns {
		if row.Has(column) {
			return true
		}
	}
	return false
}

// StripHelpText drops the marketplace help prompt in front of a personalisation,
// i.e. everything up to and including the first colon.
// "Add a note: Happy Birthday" -> " Happy Birthday". Text without a colon has no
// personalisation after the prompt and yields "".
func StripHelpText(s string) string {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return ""
	}
	return s[idx+1:]
}

// ParseQuantity parses a base-10 quantity, falling back to 1 for blank, invalid or
// non-positive values
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
