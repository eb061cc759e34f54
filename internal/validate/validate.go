package validate

import (
	"errors"
	"regexp"
	"time"
)

// ErrInvalidDate is returned when a date string matches none of the
// accepted formats.
var ErrInvalidDate = errors.New("invalid date format")

var (
	dniPattern  = regexp.MustCompile(`^[0-9]{8}$`)
	cuitPattern = regexp.MustCompile(`^[0-9]{2}-[0-9]{8}-[0-9]$`)
)

// dateLayouts are tried in order; parsing is strict, so a four-digit year
// never matches the two-digit layout and vice versa.
var dateLayouts = []string{"02/01/2006", "02/01/06"}

// DNI reports whether value is exactly 8 ASCII digits.
func DNI(value string) bool {
	return dniPattern.MatchString(value)
}

// CUIT reports whether value matches the NN-NNNNNNNN-N tax id format.
func CUIT(value string) bool {
	return cuitPattern.MatchString(value)
}

// NormalizeDate parses a DD/MM/YYYY or DD/MM/YY date string into a UTC
// timestamp at midnight. Returns ErrInvalidDate when neither layout matches.
func NormalizeDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
