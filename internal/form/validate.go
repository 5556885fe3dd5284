package form

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/Eursukkul/venue-booking/internal/pricing"
	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	maxDaysAhead = 90
	opensAt      = "10:00"
	lastStartAt  = "20:00"
)

const (
	MsgRequired    = "This field is required"
	MsgPastDate    = "Cannot select a past date"
	MsgTooFarAhead = "Bookings are accepted at most 90 days ahead"
	MsgTooEarly    = "The venue opens at 10:00"
	MsgTooLate     = "The last booking starts at 20:00"
)

var fieldMessages = map[string]string{
	"event_date":     "Enter the date as YYYY-MM-DD",
	"event_time":     "Enter the time as HH:MM",
	"event_duration": "Duration must be between 1 and 8 hours",
	"guests_count":   "Guest count must be between 1 and 50",
	"event_type":     "Unknown event type",
	"phone":          "Please enter a valid phone number (at least 10 digits)",
	"comments":       "Comments are too long",
	"services":       "Unknown service",
}

// BookingForm is the booking modal as submitted by the page.
type BookingForm struct {
	EventDate     string   `form:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime     string   `form:"event_time" validate:"required,datetime=15:04"`
	EventDuration int64    `form:"event_duration" validate:"min=1,max=8"`
	GuestsCount   int64    `form:"guests_count" validate:"min=1,max=50"`
	EventType     string   `form:"event_type" validate:"required,oneof=birthday holiday graduation other"`
	Phone         string   `form:"phone" validate:"required,phone"`
	Comments      string   `form:"comments" validate:"max=1000"`
	Services      []string `form:"services" validate:"dive,service"`
}

func (f BookingForm) PriceInputs() pricing.BookingInputs {
	services := make([]pricing.ServiceID, 0, len(f.Services))
	for _, s := range f.Services {
		services = append(services, pricing.ServiceID(s))
	}
	return pricing.BookingInputs{
		GuestCount:       f.GuestsCount,
		DurationHours:    f.EventDuration,
		SelectedServices: services,
	}
}

// FieldErrors maps a form field name to a message. Empty means valid.
type FieldErrors map[string]string

type Validator struct {
	validate *validator.Validate
}

func NewValidator(table pricing.PriceTable) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("service", func(fl validator.FieldLevel) bool {
		return table.Known(pricing.ServiceID(fl.Field().String()))
	})
	return &Validator{validate: v}
}

// Validate checks the form against the field rules and the booking calendar
// relative to today.
func (v *Validator) Validate(f BookingForm, today time.Time) FieldErrors {
	errs := FieldErrors{}

	if err := v.validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs["form"] = err.Error()
			return errs
		}
		for _, fe := range verrs {
			field := baseField(fe.Field())
			if _, seen := errs[field]; seen {
				continue
			}
			if fe.Tag() == "required" {
				errs[field] = MsgRequired
				continue
			}
			errs[field] = fieldMessages[field]
		}
	}

	if _, bad := errs["event_date"]; !bad {
		if msg := checkDate(f.EventDate, today); msg != "" {
			errs["event_date"] = msg
		}
	}
	if _, bad := errs["event_time"]; !bad {
		if msg := checkTime(f.EventTime); msg != "" {
			errs["event_time"] = msg
		}
	}

	return errs
}

func checkDate(raw string, today time.Time) string {
	date, err := time.ParseInLocation(dateLayout, raw, today.Location())
	if err != nil {
		return fieldMessages["event_date"]
	}

	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	switch {
	case date.Before(start):
		return MsgPastDate
	case date.After(start.AddDate(0, 0, maxDaysAhead)):
		return MsgTooFarAhead
	}
	return ""
}

func checkTime(raw string) string {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return fieldMessages["event_time"]
	}
	open, _ := time.Parse(timeLayout, opensAt)
	last, _ := time.Parse(timeLayout, lastStartAt)
	switch {
	case t.Before(open):
		return MsgTooEarly
	case t.After(last):
		return MsgTooLate
	}
	return ""
}

// baseField strips a slice index, so services[2] reports as services.
func baseField(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}
