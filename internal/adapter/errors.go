package adapter

import "errors"

var (
	// ErrInvalidAddress is returned by NewHTTPAdapter for an empty or
	// unparsable server address.
	ErrInvalidAddress = errors.New("invalid server address")

	// ErrUnexpectedStatus wraps answers whose status has no app.Error kind.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrDecodingResponse is returned when a 2xx body cannot be decoded.
	ErrDecodingResponse = errors.New("error decoding response body")

	// ErrMissingToken is returned when Register or Login succeed without a
	// usable bearer token in the "Authorization" header.
	ErrMissingToken = errors.New("response carries no bearer token")
)
