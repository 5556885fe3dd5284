package middleware

import (
	"github.com/Eursukkul/venue-booking/internal/booking"
	"github.com/labstack/echo/v4"
)

const (
	sessionKey = "booking.session"

	HeaderCSRFToken = "X-CSRFToken"
	FieldCSRFToken  = "csrfmiddlewaretoken"
)

// Session resolves the visitor's session once per request. A request counts
// as authenticated when it carries the backend's session cookie; the backend
// still has the final say when the booking is posted.
func Session(cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := booking.Session{}

			if ck, err := c.Cookie(cookieName); err == nil && ck.Value != "" {
				sess.Authenticated = true
				sess.Cookie = c.Request().Header.Get("Cookie")
			}

			sess.CSRFToken = c.Request().Header.Get(HeaderCSRFToken)
			if sess.CSRFToken == "" {
				sess.CSRFToken = c.FormValue(FieldCSRFToken)
			}

			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// SessionFrom returns the resolved session, or an anonymous one when the
// middleware did not run.
func SessionFrom(c echo.Context) booking.Session {
	sess, _ := c.Get(sessionKey).(booking.Session)
	return sess
}
