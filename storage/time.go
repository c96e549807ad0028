package storage

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var timeOfDayRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// UTCNow returns current UTC time with seconds precision.
func UTCNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// LocalNow returns current local time with seconds precision.
func LocalNow() time.Time {
	return time.Now().Truncate(time.Second)
}

// ParseDate parses a YYYY-MM-DD date as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, loc)
}

// ParseTimeOfDay parses a time string in HH:MM format.
func ParseTimeOfDay(value string) (hour, minute int, err error) {
	m := timeOfDayRe.FindStringSubmatch(value)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid time format: %s", value)
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time value: %s", value)
	}
	return hour, minute, nil
}

// ParseWhen parses a point in time given as one of:
//   - RFC3339, e.g. 2024-01-15T14:30:00Z
//   - a local datetime, 2024-01-15T14:30:00 or 2024-01-15 14:30
//   - HH:MM on the day of fallback
//
// Times without a zone take fallback's location. An empty value returns
// fallback.
func ParseWhen(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	loc := fallback.Location()
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	hour, minute, err := ParseTimeOfDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse time: %s", value)
	}
	return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), hour, minute, 0, 0, loc), nil
}

// ToUTC converts t to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}
