package app

import (
	"errors"
	"net/http"
)

// Error is the typed failure returned by repositories and services. It
// carries the HTTP status the transport layer should answer with and a
// message safe to show to the client.
//
// The optional cause is kept for logs and errors.Is checks only; it never
// appears in the JSON form.
type Error struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`

	cause error
}

// Error kinds. Match with errors.Is; the comparison is by status code so any
// message matches its kind.
var (
	ErrInvalidInput      = &Error{StatusCode: http.StatusBadRequest, Message: MsgInvalidInput}
	ErrResourceNotFound  = &Error{StatusCode: http.StatusNotFound, Message: MsgResourceNotFound}
	ErrResourceConflict  = &Error{StatusCode: http.StatusConflict, Message: MsgResourceConflict}
	ErrAuthentication    = &Error{StatusCode: http.StatusUnauthorized, Message: MsgAuthentication}
	ErrAuthorization     = &Error{StatusCode: http.StatusForbidden, Message: MsgAuthorization}
	ErrInternalServer    = &Error{StatusCode: http.StatusInternalServerError, Message: MsgInternalServerError}
	errUnknownStatusCode = errors.New("unknown status code")
)

func newError(statusCode int, reason, fallback string) *Error {
	if reason == "" {
		reason = fallback
	}
	return &Error{StatusCode: statusCode, Message: reason}
}

// NewInvalidInputError reports a caller-supplied value that failed a
// precondition before storage was touched.
func NewInvalidInputError(reason string) *Error {
	return newError(http.StatusBadRequest, reason, MsgInvalidInput)
}

// NewResourceNotFoundError reports a well-formed request for an entity that
// does not exist.
func NewResourceNotFoundError(reason string) *Error {
	return newError(http.StatusNotFound, reason, MsgResourceNotFound)
}

// NewResourceConflictError reports a request that would break a uniqueness
// or immutability rule.
func NewResourceConflictError(reason string) *Error {
	return newError(http.StatusConflict, reason, MsgResourceConflict)
}

// NewAuthenticationError reports a credentials lookup with no match.
func NewAuthenticationError(reason string) *Error {
	return newError(http.StatusUnauthorized, reason, MsgAuthentication)
}

// NewAuthorizationError reports an authenticated caller acting on a resource
// it does not own.
func NewAuthorizationError(reason string) *Error {
	return newError(http.StatusForbidden, reason, MsgAuthorization)
}

// NewInternalServerError reports a failure at or below the storage boundary.
// cause should be a package sentinel, not a raw driver error.
func NewInternalServerError(cause error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		Message:    MsgInternalServerError,
		cause:      cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the cause recorded by [NewInternalServerError].
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.StatusCode == e.StatusCode
}

// StatusFromError returns the status code carried by the first *Error in
// err's chain, or 500 when there is none.
func StatusFromError(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// FromStatusCode rebuilds an *Error from a status code and message received
// over the wire.
func FromStatusCode(statusCode int, message string) (*Error, error) {
	switch statusCode {
	case http.StatusBadRequest:
		return NewInvalidInputError(message), nil
	case http.StatusNotFound:
		return NewResourceNotFoundError(message), nil
	case http.StatusConflict:
		return NewResourceConflictError(message), nil
	case http.StatusUnauthorized:
		return NewAuthenticationError(message), nil
	case http.StatusForbidden:
		return NewAuthorizationError(message), nil
	case http.StatusInternalServerError:
		return newError(http.StatusInternalServerError, message, MsgInternalServerError), nil
	default:
		return nil, errUnknownStatusCode
	}
}
