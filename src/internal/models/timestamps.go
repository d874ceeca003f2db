package models

import "time"

// TimeLayout is the ISO-8601 layout used for every system-assigned timestamp.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// FormatTime renders t in UTC with millisecond precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses timestamps written by FormatTime or any RFC 3339 value.
func ParseTime(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Timestamps holds the latest modification per collection.
// A nil pointer means the collection is empty.
type Timestamps struct {
	Content  *string `json:"content"`
	Products *string `json:"products"`
	Server   string  `json:"server"`
}
