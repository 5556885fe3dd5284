package availability

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	MsgPrompt       = "Please select a date and time"
	MsgAvailable    = "Time slot is available!"
	MsgUnavailable  = "Time slot is taken!"
	MsgUnknownError = "Unknown error"
	MsgNetworkError = "Network error. Please try again later."
)

type Query struct {
	Date          string
	StartTime     string
	DurationHours int64
}

type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// String renders the slot as one line of the booked-slot list.
func (s Slot) String() string {
	return fmt.Sprintf("%s - %s", s.Start, s.End)
}

type Result struct {
	Success     bool
	IsAvailable bool
	Message     string
	BookedSlots []Slot
}

type Transport interface {
	CheckAvailability(ctx context.Context, q Query) (*Result, error)
}

// View is the result area of the page. Every Check call ends in exactly one
// of Prompt, Available, Unavailable, Rejected or NetworkError.
type View interface {
	Prompt(msg string)
	Loading()
	Available(msg string)
	Unavailable(msg string, bookedSlots []string)
	Rejected(msg string)
	NetworkError(msg string)
}

// FormFiller receives the checked values when the slot is free.
type FormFiller interface {
	Fill(date, startTime string, durationHours int64)
}

type Outcome string

const (
	OutcomePrompt       Outcome = "prompt"
	OutcomeAvailable    Outcome = "available"
	OutcomeUnavailable  Outcome = "unavailable"
	OutcomeRejected     Outcome = "rejected"
	OutcomeNetworkError Outcome = "network_error"
)

type Checker struct {
	transport Transport
	log       *zap.Logger
}

func NewChecker(transport Transport, log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{transport: transport, log: log}
}

// Check runs one availability check. Failures end up on the view, never as a
// returned error. Concurrent calls are independent.
func (c *Checker) Check(ctx context.Context, q Query, view View, form FormFiller) Outcome {
	if q.Date == "" || q.StartTime == "" {
		view.Prompt(MsgPrompt)
		return OutcomePrompt
	}
	if q.DurationHours <= 0 {
		q.DurationHours = 2
	}

	view.Loading()

	res, err := c.transport.CheckAvailability(ctx, q)
	if err != nil {
		c.log.Warn("availability check failed",
			zap.String("date", q.Date),
			zap.String("start_time", q.StartTime),
			zap.Int64("duration", q.DurationHours),
			zap.Error(err))
		view.NetworkError(MsgNetworkError)
		return OutcomeNetworkError
	}

	c.log.Debug("availability response",
		zap.Bool("success", res.Success),
		zap.Bool("is_available", res.IsAvailable),
		zap.Int("booked_slots", len(res.BookedSlots)))

	if !res.Success {
		view.Rejected(orDefault(res.Message, MsgUnknownError))
		return OutcomeRejected
	}

	if res.IsAvailable {
		view.Available(orDefault(res.Message, MsgAvailable))
		if form != nil {
			form.Fill(q.Date, q.StartTime, q.DurationHours)
		}
		return OutcomeAvailable
	}

	lines := make([]string, 0, len(res.BookedSlots))
	for _, s := range res.BookedSlots {
		lines = append(lines, s.String())
	}
	view.Unavailable(orDefault(res.Message, MsgUnavailable), lines)
	return OutcomeUnavailable
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
