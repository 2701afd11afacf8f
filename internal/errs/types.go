package errs

import (
	"net/http"
)

// statusError builds an HTTPError whose code is derived from the status
// text, e.g. 404 -> NOT_FOUND, unless code overrides it.
func statusError(status int, message string, override bool, code *string) *HTTPError {
	c := MakeUpperCaseWithUnderscores(http.StatusText(status))
	if code != nil {
		c = *code
	}

	return &HTTPError{
		Code:     c,
		Message:  message,
		Status:   status,
		Override: override,
	}
}

// NewUnauthorizedError is returned for missing or rejected bearer tokens
// and failed logins. override marks message as safe to show end users.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return statusError(http.StatusUnauthorized, message, override, nil)
}

func NewForbiddenError(message string, override bool) *HTTPError {
	return statusError(http.StatusForbidden, message, override, nil)
}

// NewBadRequestError creates a 400.
//
// code replaces the default BAD_REQUEST (sqlerr passes codes such as
// USER_ALREADY_EXISTS), errors carries per-field validation failures and
// action an optional client instruction. All three may be nil.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	e := statusError(http.StatusBadRequest, message, override, code)
	e.Errors = errors
	e.Action = action
	return e
}

// NewNotFoundError creates a 404, e.g. "User not found" for a missing
// lookup.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return statusError(http.StatusNotFound, message, override, code)
}

// NewInternalServerError never carries the underlying cause; the global
// error handler logs it instead.
func NewInternalServerError() *HTTPError {
	return statusError(http.StatusInternalServerError,
		http.StatusText(http.StatusInternalServerError), false, nil)
}

// NewServiceUnavailableError is what database outages and cancelled
// queries surface as.
func NewServiceUnavailableError() *HTTPError {
	return statusError(http.StatusServiceUnavailable,
		"The service is temporarily unavailable, please retry", true, nil)
}

func NewTooManyRequestsError() *HTTPError {
	return statusError(http.StatusTooManyRequests, "Too many requests, slow down", true, nil)
}

// ValidationError wraps a validator failure that could not be mapped to
// individual fields.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}
