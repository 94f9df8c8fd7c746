package models

import (
	"encoding/json"
	"time"
)

const isoDateLayout = "2006-01-02"

// Date is a calendar date without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string. Empty or malformed input yields nil.
func ParseDate(s string) *Date {
	if s == "" {
		return nil
	}
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return nil
	}
	return &Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// String formats the date as ISO-8601 (YYYY-MM-DD).
func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(isoDateLayout)
}

// MarshalJSON encodes the date as an ISO-8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
