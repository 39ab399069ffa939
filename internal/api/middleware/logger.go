package middleware

import (
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LoggerConfig struct {
	Skipper          middleware.Skipper
	Level            zerolog.Level
	LogRequestHeader bool
	LogRequestQuery  bool
	Clock            time2.Clock
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper:          middleware.DefaultSkipper,
	Level:            zerolog.DebugLevel,
	LogRequestHeader: false,
	LogRequestQuery:  false,
	Clock:            time2.DefaultClock,
}

func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

// LoggerWithConfig attaches a request-scoped zerolog logger (carrying the
// request id) to the request context and logs every completed request.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}
	if config.Clock == nil {
		config.Clock = DefaultLoggerConfig.Clock
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			logger := log.With().Str("id", id).Logger()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context())))

			start := config.Clock.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			elapsed := config.Clock.Now().Sub(start)

			event := logger.WithLevel(config.Level).
				Str("method", req.Method).
				Str("url", req.URL.Path).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration_ms", elapsed.Round(time.Microsecond)).
				Str("ip", c.RealIP())

			if config.LogRequestQuery {
				event = event.Str("query", req.URL.RawQuery)
			}

			if config.LogRequestHeader {
				header := zerolog.Dict()
				for k, v := range req.Header {
					header.Strs(k, v)
				}
				event = event.Dict("req_header", header)
			}

			event.Msg("http_request")

			// error already handled by c.Error
			return nil
		}
	}
}
