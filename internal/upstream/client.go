package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Eursukkul/venue-booking/internal/availability"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CheckPath  = "/bookings/check/"
	CreatePath = "/bookings/create/"

	HeaderCSRFToken = "X-CSRFToken"
	HeaderRequestID = "X-Request-ID"

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 1 << 20
)

var (
	ErrTransport         = errors.New("upstream transport failure")
	ErrUnexpectedStatus  = errors.New("upstream returned non-success status")
	ErrMalformedResponse = errors.New("upstream response is malformed")
)

// Client talks to the booking backend. It has no retry and no timeout of its
// own; callers bound it through the context.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, log *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{baseURL: u, httpClient: httpClient, log: log}, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) CheckAvailability(ctx context.Context, q availability.Query) (*availability.Result, error) {
	query := url.Values{}
	query.Set("date", q.Date)
	query.Set("start_time", q.StartTime)
	query.Set("duration", strconv.FormatInt(q.DurationHours, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(CheckPath, query), nil)
	if err != nil {
		return nil, fmt.Errorf("build check request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("check availability: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body *checkResponse
	if err := decode(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	res, ok := body.toResult()
	if !ok {
		return nil, fmt.Errorf("check availability: %w: no success field", ErrMalformedResponse)
	}
	return res, nil
}

// CreateBooking posts the form. The body is decoded whatever the status code,
// since the backend reports rejections as JSON.
func (c *Client) CreateBooking(ctx context.Context, in CreateRequest, csrfToken, sessionCookie string) (*CreateResponse, error) {
	form := url.Values{}
	form.Set("event_date", in.EventDate)
	form.Set("event_time", in.EventTime)
	form.Set("event_duration", strconv.FormatInt(in.EventDuration, 10))
	form.Set("guests_count", strconv.FormatInt(in.GuestsCount, 10))
	form.Set("event_type", in.EventType)
	form.Set("phone", in.Phone)
	form.Set("comments", in.Comments)
	for _, s := range in.Services {
		form.Add("services", s)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(CreatePath, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderCSRFToken, csrfToken)
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body *CreateResponse
	if err := decode(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("create booking (status %d): %w", resp.StatusCode, err)
	}
	if body == nil {
		return nil, fmt.Errorf("create booking (status %d): %w: null body", resp.StatusCode, ErrMalformedResponse)
	}
	return body, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %v", req.Method, req.URL.Path, ErrTransport, err)
	}

	c.log.Debug("upstream call",
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode))
	return resp, nil
}

func decode(r io.Reader, v any) error {
	if err := json.NewDecoder(io.LimitReader(r, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
