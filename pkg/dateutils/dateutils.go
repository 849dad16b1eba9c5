package dateutils

import (
	"errors"
	"time"
)

var ErrUnsupportedDateFormat = errors.New("unsupported date format")

// Accepted formats for date query params, tried in order.
var queryFormats = []string{
	"2006-01-02T15:04",
	"2006-01-02",
}

func ParseQueryString(str string) (time.Time, error) {
	for _, format := range queryFormats {
		if t, err := time.Parse(format, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnsupportedDateFormat
}

func ToString(t time.Time) string {
	return t.Format(time.RFC3339)
}

func ParseString(str string) (time.Time, error) {
	return time.Parse(time.RFC3339, str)
}

func Pretify(t time.Time) string {
	return t.Format("15:04 02-01-2006")
}

func PretifyDate(t time.Time) string {
	return t.Format("2006-01-02")
}
