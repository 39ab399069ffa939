package util

import (
	"net/http"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
	"github/chapool/agent-tipjar/internal/api/httperrors"
)

// BindAndValidateBody binds the JSON request body into v and runs its
// generated-style validation. Both failures surface as 400.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind request body")
		return httperrors.ErrBadRequestInvalidBody
	}

	return validatePayload(c, v)
}

// BindAndValidateQueryParams binds the query string into v and validates it.
func BindAndValidateQueryParams(c echo.Context, v runtime.Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindQueryParams(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind query params")
		return httperrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	return validatePayload(c, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Request payload failed validation")
		return httperrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

// ValidateAndReturn validates a response payload before writing it. A response
// that does not satisfy its own schema is a server bug and results in a 500.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Error().Err(err).Msg("Response payload failed validation")
		return httperrors.NewHTTPErrorWithInternal(http.StatusInternalServerError, "Internal server error", err)
	}

	return c.JSON(code, v)
}
