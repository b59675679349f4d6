package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISOLayout is the millisecond-precision UTC layout produced by DateAsISOString
const ISOLayout = "2006-01-02T15:04:05.000Z"

// CalendarLayout is the canonical YYYY-MM-DD draw date layout
const CalendarLayout = "2006-01-02"

const (
	msPerHour   = int64(time.Hour / time.Millisecond)
	msPerMinute = int64(time.Minute / time.Millisecond)
)

// ErrInvalidDate is returned when an upstream date string cannot be decoded
var ErrInvalidDate = errors.New("invalid upstream date")

var digitRuns = regexp.MustCompile(`\d+`)

// DateAsISOString converts an ALC date string such as '/Date(1622255399000-0300)/'
// into an ISO 8601 UTC timestamp such as '2021-05-28T23:29:59.000Z'.
//
// The offset is added to the epoch value, and its sign comes from the presence
// of a '-' anywhere in the input. Upstream consumers depend on this arithmetic.
func DateAsISOString(date string) (string, error) {
	groups := digitRuns.FindAllString(date, -1)
	if len(groups) < 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	epochMs, err := strconv.ParseInt(groups[0], 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
	}

	offset := groups[1]
	hours, err := leadingInt(offset, 2)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
	}
	minutes, err := trailingInt(offset, 2)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
	}

	sign := int64(1)
	if strings.Contains(date, "-") {
		sign = -1
	}

	offsetMs := sign * (hours*msPerHour + minutes*msPerMinute)
	return time.UnixMilli(epochMs + offsetMs).UTC().Format(ISOLayout), nil
}

// CalendarDate returns the YYYY-MM-DD portion of an upstream draw date.
// Dates that already arrive in that form are returned unchanged.
func CalendarDate(date string) (string, error) {
	if IsCalendarDate(date) {
		return date, nil
	}
	iso, err := DateAsISOString(date)
	if err != nil {
		return "", err
	}
	return iso[:len(CalendarLayout)], nil
}

// IsCalendarDate reports whether s is a valid YYYY-MM-DD date
func IsCalendarDate(s string) bool {
	if len(s) != len(CalendarLayout) {
		return false
	}
	_, err := time.Parse(CalendarLayout, s)
	return err == nil
}

func leadingInt(s string, n int) (int64, error) {
	if len(s) > n {
		s = s[:n]
	}
	return strconv.ParseInt(s, 10, 64)
}

func trailingInt(s string, n int) (int64, error) {
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return strconv.ParseInt(s, 10, 64)
}
