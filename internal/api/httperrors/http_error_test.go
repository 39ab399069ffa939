package httperrors_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/agent-tipjar/internal/api/httperrors"
)

func handle(t *testing.T, method string, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/api/anything", nil)
	rec := httptest.NewRecorder()
	httperrors.HTTPErrorHandler(err, e.NewContext(req, rec))

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHTTPErrorHandlerServiceError(t *testing.T) {
	rec := handle(t, http.MethodGet, httperrors.ErrBadRequestInvalidAddress)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]interface{}{"error": "Invalid address format"}, decode(t, rec))
}

func TestHTTPErrorHandlerEchoErrors(t *testing.T) {
	rec := handle(t, http.MethodGet, echo.ErrMethodNotAllowed)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", decode(t, rec)["error"])

	rec = handle(t, http.MethodGet, echo.ErrNotFound)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decode(t, rec)["error"])
}

func TestHTTPErrorHandlerUnknownErrorIsGeneric(t *testing.T) {
	rec := handle(t, http.MethodPost, errors.New("connection reset by peer"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestHTTPErrorHandlerHead(t *testing.T) {
	rec := handle(t, http.MethodHead, httperrors.ErrBadRequestAddressRequired)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := httperrors.NewHTTPErrorWithInternal(http.StatusBadRequest, "Invalid address format", errors.New("bad checksum"))
	assert.ErrorIs(t, wrapped, httperrors.ErrBadRequestInvalidAddress)
	assert.NotErrorIs(t, wrapped, httperrors.ErrBadRequestAddressRequired)
	assert.Contains(t, wrapped.Error(), "bad checksum")
}
