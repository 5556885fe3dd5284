package middleware

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/venue-booking/internal/dto"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewErrorHandler renders every error as {"message": ...}. Server-side
// failures are logged; client errors are not.
func NewErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		}

		if code >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err))
		}

		_ = c.JSON(code, dto.ErrorResponse{Message: msg})
	}
}
