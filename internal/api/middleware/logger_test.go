package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/agent-tipjar/internal/api/middleware"
	"github/chapool/agent-tipjar/internal/util"
)

func TestLoggerAttachesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = original }()

	e := echo.New()
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Level:           zerolog.InfoLevel,
		LogRequestQuery: true,
		Clock:           time2.NewMockClock(time.Unix(0, 0)),
	}))
	e.GET("/api/check-balance", func(c echo.Context) error {
		util.LogFromEchoContext(c).Info().Msg("inside handler")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/check-balance?address=0xabc", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	out := buf.String()
	assert.Contains(t, out, `"message":"inside handler"`)
	assert.Contains(t, out, `"id":"req-1"`)
	assert.Contains(t, out, `"message":"http_request"`)
	assert.Contains(t, out, `"query":"address=0xabc"`)
	assert.Contains(t, out, `"status":204`)
}
