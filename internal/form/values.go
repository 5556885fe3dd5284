package form

import (
	"net/url"
	"strconv"
	"strings"
)

// FromValues reads a submitted booking form. Counts must be plain integers:
// anything else becomes 0 and fails the range rules in Validate. The lenient
// defaulting in the pricing package is for the live price display only.
func FromValues(v url.Values) BookingForm {
	return BookingForm{
		EventDate:     strings.TrimSpace(v.Get("event_date")),
		EventTime:     strings.TrimSpace(v.Get("event_time")),
		EventDuration: strictInt(v.Get("event_duration")),
		GuestsCount:   strictInt(v.Get("guests_count")),
		EventType:     v.Get("event_type"),
		Phone:         v.Get("phone"),
		Comments:      v.Get("comments"),
		Services:      v["services"],
	}
}

func strictInt(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
