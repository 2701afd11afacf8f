package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "SERVICE_UNAVAILABLE", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusServiceUnavailable)))
}

func TestConstructors(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	bad := NewBadRequestError("A User with this Email already exists", true, &code, nil, nil)
	assert.Equal(t, http.StatusBadRequest, bad.Status)
	assert.Equal(t, code, bad.Code)
	assert.True(t, bad.Override)

	notFound := NewNotFoundError("User not found", true, nil)
	assert.Equal(t, "NOT_FOUND", notFound.Code)

	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "Internal Server Error", internal.Message)

	unavailable := NewServiceUnavailableError()
	assert.Equal(t, http.StatusServiceUnavailable, unavailable.Status)
}

func TestHTTPErrorIsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", NewUnauthorizedError("Invalid credentials", true))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "Invalid credentials", wrapped.(interface{ Unwrap() error }).Unwrap().Error())
}

func TestNewTooManyRequestsError(t *testing.T) {
	err := NewTooManyRequestsError()

	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
	assert.True(t, err.Override)
}
