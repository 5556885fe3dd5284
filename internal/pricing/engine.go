package pricing

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultGuestCount    int64 = 0
	DefaultDurationHours int64 = 2
)

type BookingInputs struct {
	GuestCount       int64
	DurationHours    int64
	SelectedServices []ServiceID
}

type PriceBreakdown struct {
	BaseCost     int64 `json:"base_cost"`
	ServicesCost int64 `json:"services_cost"`
	TotalCost    int64 `json:"total_cost"`
}

// ParseInputs builds BookingInputs from raw form values, coercing anything
// unparsable to the defaults instead of rejecting it.
func ParseInputs(guests, duration string, services []string) BookingInputs {
	selected := make([]ServiceID, 0, len(services))
	for _, s := range services {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		selected = append(selected, ServiceID(s))
	}

	return BookingInputs{
		GuestCount:       ParseGuestCount(guests),
		DurationHours:    ParseDuration(duration),
		SelectedServices: selected,
	}
}

func ParseGuestCount(raw string) int64 {
	n, ok := leadingInt(raw)
	if !ok || n < 0 {
		return DefaultGuestCount
	}
	return n
}

func ParseDuration(raw string) int64 {
	n, ok := leadingInt(raw)
	if !ok || n <= 0 {
		return DefaultDurationHours
	}
	return n
}

// leadingInt reads an optionally signed run of digits at the start of raw,
// so "3 hours" yields 3.
func leadingInt(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Compute is pure; unknown services contribute 0. Inputs outside the
// defaulting rule are coerced the way ParseInputs would, and costs saturate at
// math.MaxInt64 so a total is never negative.
func Compute(in BookingInputs, table PriceTable) PriceBreakdown {
	guests, hours := in.GuestCount, in.DurationHours
	if guests < 0 {
		guests = DefaultGuestCount
	}
	if hours <= 0 {
		hours = DefaultDurationHours
	}
	base := mulSat(mulSat(guests, table.BasePerGuestHour()), hours)

	var services int64
	for _, id := range in.SelectedServices {
		price, _ := table.Price(id)
		services = addSat(services, price)
	}

	return PriceBreakdown{
		BaseCost:     base,
		ServicesCost: services,
		TotalCost:    addSat(base, services),
	}
}

// mulSat and addSat take non-negative operands.
func mulSat(a, b int64) int64 {
	if a != 0 && b > math.MaxInt64/a {
		return math.MaxInt64
	}
	return a * b
}

func addSat(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
