package httperrors

import (
	"fmt"
	"net/http"
)

// HTTPError is the single error body shape returned by the service:
//
//	{"error": "<message>"}
type HTTPError struct {
	Code     int    `json:"-"`
	Message  string `json:"error"`
	Internal error  `json:"-"`
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

func NewHTTPErrorWithInternal(code int, message string, internal error) *HTTPError {
	return &HTTPError{
		Code:     code,
		Message:  message,
		Internal: internal,
	}
}

func (e *HTTPError) Error() string {
	if e.Internal == nil {
		return fmt.Sprintf("HTTPError %d: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("HTTPError %d: %s - %v", e.Code, e.Message, e.Internal)
}

func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// Is compares by status code and message so predefined errors can be matched
// with errors.Is regardless of the wrapped internal error.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}

	return e.Code == t.Code && e.Message == t.Message
}

func statusMessage(code int) string {
	switch code {
	case http.StatusMethodNotAllowed:
		return "Method not allowed"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusTooManyRequests:
		return "Too many requests"
	case http.StatusInternalServerError:
		return "Internal server error"
	default:
		return http.StatusText(code)
	}
}
