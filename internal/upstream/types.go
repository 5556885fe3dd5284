package upstream

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/Eursukkul/venue-booking/internal/availability"
)

type checkResponse struct {
	Success     *bool               `json:"success"`
	Message     string              `json:"message,omitempty"`
	IsAvailable bool                `json:"is_available,omitempty"`
	BookedSlots []availability.Slot `json:"booked_slots,omitempty"`
}

// toResult reports false when the body is not a check response at all
// (a JSON null or an object without "success").
func (r *checkResponse) toResult() (*availability.Result, bool) {
	if r == nil || r.Success == nil {
		return nil, false
	}
	return &availability.Result{
		Success:     *r.Success,
		IsAvailable: r.IsAvailable,
		Message:     r.Message,
		BookedSlots: r.BookedSlots,
	}, true
}

// CreateRequest is the booking form as posted to the backend.
type CreateRequest struct {
	EventDate     string
	EventTime     string
	EventDuration int64
	GuestsCount   int64
	EventType     string
	Phone         string
	Comments      string
	Services      []string
}

type CreateResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	BookingID BookingID         `json:"booking_id,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// BookingID decodes from either a JSON string or a JSON number.
type BookingID string

func (id *BookingID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = BookingID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*id = BookingID(n.String())
	return nil
}
