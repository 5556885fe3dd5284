package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/venue-booking/internal/availability"
	"github.com/Eursukkul/venue-booking/internal/booking"
	"github.com/Eursukkul/venue-booking/internal/dto"
	"github.com/Eursukkul/venue-booking/internal/form"
	"github.com/Eursukkul/venue-booking/internal/middleware"
	"github.com/Eursukkul/venue-booking/internal/pricing"
	"github.com/Eursukkul/venue-booking/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	defaultReceiptLimit = 20
	maxReceiptLimit     = 100
)

type AvailabilityChecker interface {
	Check(ctx context.Context, q availability.Query, view availability.View, filler availability.FormFiller) availability.Outcome
}

type BookingSubmitter interface {
	Submit(ctx context.Context, sess booking.Session, f form.BookingForm, view booking.View) booking.Outcome
}

type BookingHandler struct {
	table     pricing.PriceTable
	checker   AvailabilityChecker
	submitter BookingSubmitter
	receipts  service.ReceiptService
}

func NewBookingHandler(table pricing.PriceTable, checker AvailabilityChecker, submitter BookingSubmitter, receipts service.ReceiptService) *BookingHandler {
	return &BookingHandler{table: table, checker: checker, submitter: submitter, receipts: receipts}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/prices", h.GetPrices)
	api.GET("/price", h.GetPrice)
	api.GET("/availability", h.CheckAvailability)
	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings/:id/receipt", h.GetReceipt)
	api.GET("/receipts", h.ListReceipts)
	api.GET("/phone/format", h.FormatPhone)
}

func (h *BookingHandler) GetPrices(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ToPriceTableResponse(h.table))
}

func (h *BookingHandler) GetPrice(c echo.Context) error {
	params := c.QueryParams()
	in := pricing.ParseInputs(params.Get("guests_count"), params.Get("event_duration"), params["services"])
	return c.JSON(http.StatusOK, pricing.Compute(in, h.table))
}

func (h *BookingHandler) CheckAvailability(c echo.Context) error {
	q := availability.Query{
		Date:          c.QueryParam("date"),
		StartTime:     c.QueryParam("start_time"),
		DurationHours: pricing.ParseDuration(c.QueryParam("duration")),
	}

	panel := availability.NewPanel()
	outcome := h.checker.Check(c.Request().Context(), q, panel, panel)

	status := http.StatusOK
	switch outcome {
	case availability.OutcomePrompt:
		status = http.StatusBadRequest
	case availability.OutcomeNetworkError:
		status = http.StatusBadGateway
	}
	return c.JSON(status, panel.Snapshot())
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}

	view := &submissionView{}
	outcome := h.submitter.Submit(c.Request().Context(), middleware.SessionFrom(c), form.FromValues(params), view)

	status := http.StatusOK
	switch outcome {
	case booking.OutcomeLoginRequired:
		status = http.StatusUnauthorized
	case booking.OutcomeInvalid:
		status = http.StatusUnprocessableEntity
	case booking.OutcomeRejected:
		status = http.StatusConflict
	case booking.OutcomeNetworkError:
		status = http.StatusBadGateway
	case booking.OutcomeCreated:
		status = http.StatusCreated
	}
	return c.JSON(status, view.resp)
}

func (h *BookingHandler) GetReceipt(c echo.Context) error {
	receipt, err := h.receipts.GetReceipt(c.Request().Context(), c.Param("id"))
	if err != nil {
		return receiptError(err)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (h *BookingHandler) ListReceipts(c echo.Context) error {
	limit := defaultReceiptLimit
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = min(n, maxReceiptLimit)
	}

	receipts, err := h.receipts.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return receiptError(err)
	}
	return c.JSON(http.StatusOK, receipts)
}

func (h *BookingHandler) FormatPhone(c echo.Context) error {
	raw := c.QueryParam("phone")
	return c.JSON(http.StatusOK, dto.PhoneResponse{
		Phone: form.FormatPhone(raw),
		Valid: form.ValidPhone(raw),
	})
}

func receiptError(err error) error {
	switch {
	case errors.Is(err, service.ErrReceiptNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrReceiptsDisabled):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// submissionView collects the single terminal state of a submit.
type submissionView struct {
	resp dto.SubmissionResponse
}

func (v *submissionView) LoginRequired(redirect string) {
	v.resp = dto.SubmissionResponse{State: string(booking.OutcomeLoginRequired), Message: "Please sign in to book an event", Redirect: redirect}
}

func (v *submissionView) FieldErrors(errs map[string]string) {
	v.resp = dto.SubmissionResponse{State: string(booking.OutcomeInvalid), Errors: errs}
}

func (v *submissionView) Rejected(msg string) {
	v.resp = dto.SubmissionResponse{State: string(booking.OutcomeRejected), Message: msg}
}

func (v *submissionView) NetworkError(msg string) {
	v.resp = dto.SubmissionResponse{State: string(booking.OutcomeNetworkError), Message: msg}
}

func (v *submissionView) Created(msg, bookingID string, reset pricing.PriceBreakdown) {
	v.resp = dto.SubmissionResponse{State: string(booking.OutcomeCreated), Message: msg, BookingID: bookingID, Reset: &reset}
}
