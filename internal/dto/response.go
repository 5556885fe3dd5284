package dto

import (
	"github.com/Eursukkul/venue-booking/internal/pricing"
)

type ServicePrice struct {
	ID    pricing.ServiceID `json:"id"`
	Price int64             `json:"price"`
}

type PriceTableResponse struct {
	BasePerGuestHour int64          `json:"base_per_guest_hour"`
	Services         []ServicePrice `json:"services"`
}

func ToPriceTableResponse(t pricing.PriceTable) PriceTableResponse {
	ids := t.Services()
	services := make([]ServicePrice, len(ids))
	for i, id := range ids {
		price, _ := t.Price(id)
		services[i] = ServicePrice{ID: id, Price: price}
	}
	return PriceTableResponse{BasePerGuestHour: t.BasePerGuestHour(), Services: services}
}

// SubmissionResponse is what the booking modal renders after a submit.
type SubmissionResponse struct {
	State     string                  `json:"state"`
	Message   string                  `json:"message,omitempty"`
	Redirect  string                  `json:"redirect,omitempty"`
	Errors    map[string]string       `json:"errors,omitempty"`
	BookingID string                  `json:"booking_id,omitempty"`
	Reset     *pricing.PriceBreakdown `json:"reset,omitempty"`
}

type PhoneResponse struct {
	Phone string `json:"phone"`
	Valid bool   `json:"valid"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
