package booking

import (
	"context"
	"time"

	"github.com/Eursukkul/venue-booking/internal/form"
	"github.com/Eursukkul/venue-booking/internal/pricing"
	"github.com/Eursukkul/venue-booking/internal/upstream"
	"go.uber.org/zap"
)

const (
	LoginPath = "/login/"

	MsgNetworkError = "An error occurred while submitting the form"
	MsgRejected     = "The booking could not be created"
	MsgCreated      = "Booking created"
)

// Session is what the session layer knows about the visitor.
type Session struct {
	Authenticated bool
	CSRFToken     string
	Cookie        string
}

type Transport interface {
	CreateBooking(ctx context.Context, in upstream.CreateRequest, csrfToken, sessionCookie string) (*upstream.CreateResponse, error)
}

// Receipt is handed to the Recorder after the backend accepted a booking.
type Receipt struct {
	BookingID string
	Form      form.BookingForm
	Price     pricing.PriceBreakdown
}

type Recorder interface {
	Record(ctx context.Context, r Receipt) error
}

type View interface {
	LoginRequired(redirect string)
	FieldErrors(errs map[string]string)
	Rejected(msg string)
	NetworkError(msg string)
	// Created reports success; reset is the price of the cleared form.
	Created(msg, bookingID string, reset pricing.PriceBreakdown)
}

type Outcome string

const (
	OutcomeLoginRequired Outcome = "login_required"
	OutcomeInvalid       Outcome = "invalid"
	OutcomeRejected      Outcome = "rejected"
	OutcomeNetworkError  Outcome = "network_error"
	OutcomeCreated       Outcome = "created"
)

type Submitter struct {
	transport Transport
	validator *form.Validator
	table     pricing.PriceTable
	recorder  Recorder
	now       func() time.Time
	log       *zap.Logger
}

func NewSubmitter(transport Transport, table pricing.PriceTable, recorder Recorder, log *zap.Logger) *Submitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Submitter{
		transport: transport,
		validator: form.NewValidator(table),
		table:     table,
		recorder:  recorder,
		now:       time.Now,
		log:       log,
	}
}

func (s *Submitter) Submit(ctx context.Context, sess Session, f form.BookingForm, view View) Outcome {
	if !sess.Authenticated {
		view.LoginRequired(LoginPath)
		return OutcomeLoginRequired
	}

	if errs := s.validator.Validate(f, s.now()); len(errs) > 0 {
		view.FieldErrors(errs)
		return OutcomeInvalid
	}

	f.Phone = form.FormatPhone(f.Phone)

	resp, err := s.transport.CreateBooking(ctx, upstream.CreateRequest{
		EventDate:     f.EventDate,
		EventTime:     f.EventTime,
		EventDuration: f.EventDuration,
		GuestsCount:   f.GuestsCount,
		EventType:     f.EventType,
		Phone:         f.Phone,
		Comments:      f.Comments,
		Services:      f.Services,
	}, sess.CSRFToken, sess.Cookie)
	if err != nil {
		s.log.Error("create booking failed", zap.String("event_date", f.EventDate), zap.Error(err))
		view.NetworkError(MsgNetworkError)
		return OutcomeNetworkError
	}

	if !resp.Success {
		if len(resp.Errors) > 0 {
			view.FieldErrors(resp.Errors)
			return OutcomeInvalid
		}
		msg := resp.Message
		if msg == "" {
			msg = MsgRejected
		}
		view.Rejected(msg)
		return OutcomeRejected
	}

	receipt := Receipt{
		BookingID: string(resp.BookingID),
		Form:      f,
		Price:     pricing.Compute(f.PriceInputs(), s.table),
	}
	if s.recorder != nil {
		if err := s.recorder.Record(ctx, receipt); err != nil {
			s.log.Warn("record booking receipt", zap.String("booking_id", receipt.BookingID), zap.Error(err))
		}
	}

	msg := resp.Message
	if msg == "" {
		msg = MsgCreated
	}
	reset := pricing.Compute(pricing.ParseInputs("", "", nil), s.table)
	view.Created(msg, receipt.BookingID, reset)
	return OutcomeCreated
}
