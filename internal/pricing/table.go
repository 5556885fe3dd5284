package pricing

import (
	"errors"
	"fmt"
	"sort"
)

type ServiceID string

const (
	ServiceAnimator     ServiceID = "animator"
	ServiceCake         ServiceID = "cake"
	ServiceDecorations  ServiceID = "decorations"
	ServicePhotographer ServiceID = "photographer"
)

var ErrNegativePrice = errors.New("price must not be negative")

// PriceTable is the deployed price list. Build it with NewPriceTable or
// DefaultPriceTable; the zero value prices everything at 0.
type PriceTable struct {
	basePerGuestHour int64
	services         map[ServiceID]int64
}

func NewPriceTable(basePerGuestHour int64, services map[ServiceID]int64) (PriceTable, error) {
	if basePerGuestHour < 0 {
		return PriceTable{}, fmt.Errorf("base per guest-hour %d: %w", basePerGuestHour, ErrNegativePrice)
	}

	copied := make(map[ServiceID]int64, len(services))
	for id, price := range services {
		if price < 0 {
			return PriceTable{}, fmt.Errorf("service %q price %d: %w", id, price, ErrNegativePrice)
		}
		copied[id] = price
	}

	return PriceTable{basePerGuestHour: basePerGuestHour, services: copied}, nil
}

func DefaultPriceTable() PriceTable {
	return PriceTable{
		basePerGuestHour: 500,
		services: map[ServiceID]int64{
			ServiceAnimator:     1000,
			ServiceCake:         1500,
			ServiceDecorations:  2000,
			ServicePhotographer: 2500,
		},
	}
}

func (t PriceTable) BasePerGuestHour() int64 {
	return t.basePerGuestHour
}

// Price returns the flat price of a service; unknown identifiers report false.
func (t PriceTable) Price(id ServiceID) (int64, bool) {
	price, ok := t.services[id]
	return price, ok
}

func (t PriceTable) Known(id ServiceID) bool {
	_, ok := t.services[id]
	return ok
}

// Services lists the service identifiers in sorted order.
func (t PriceTable) Services() []ServiceID {
	ids := make([]ServiceID, 0, len(t.services))
	for id := range t.services {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
