package httperrors

import "net/http"

var (
	ErrBadRequestInvalidBody = NewHTTPError(http.StatusBadRequest, "Invalid request body")

	ErrBadRequestAgentNameRequired = NewHTTPError(http.StatusBadRequest, "Agent name is required")
	ErrBadRequestAgentNameTooShort = NewHTTPError(http.StatusBadRequest, "Agent name must be at least 2 characters")
	ErrBadRequestAgentNameTooLong  = NewHTTPError(http.StatusBadRequest, "Agent name must be less than 50 characters")

	ErrBadRequestAddressRequired = NewHTTPError(http.StatusBadRequest, "Address is required")
	ErrBadRequestInvalidAddress  = NewHTTPError(http.StatusBadRequest, "Invalid address format")
	ErrBadRequestAmountRequired  = NewHTTPError(http.StatusBadRequest, "Amount is required")
	ErrBadRequestInvalidAmount   = NewHTTPError(http.StatusBadRequest, "Please enter a valid amount")

	ErrMethodNotAllowed = NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
)
