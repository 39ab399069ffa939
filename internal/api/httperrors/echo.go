package httperrors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewFromEcho converts an echo error (router 404/405, middleware errors) into
// the service error shape. Framework messages are replaced by fixed ones.
func NewFromEcho(e *echo.HTTPError) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  statusMessage(e.Code),
		Internal: e.Internal,
	}
}

// HTTPErrorHandler is installed as echo's error handler. Unknown errors are
// logged and answered with a generic 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			httpErr = NewFromEcho(echoErr)
		} else {
			httpErr = NewHTTPErrorWithInternal(http.StatusInternalServerError, statusMessage(http.StatusInternalServerError), err)
		}
	}

	logger := log.Ctx(c.Request().Context())
	if logger.GetLevel() == zerolog.Disabled {
		logger = &log.Logger
	}

	if httpErr.Code >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", httpErr.Code).Str("path", c.Path()).Msg("Request failed with internal error")
	} else {
		logger.Debug().Err(err).Int("status", httpErr.Code).Str("path", c.Path()).Msg("Request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.Code)
	} else {
		err = c.JSON(httpErr.Code, httpErr)
	}

	if err != nil {
		logger.Error().Err(err).Msg("Failed to write error response")
	}
}
