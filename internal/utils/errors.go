package utils

import "errors"

var (
	// ErrInvalidTokenParams is returned by GenerateJWTToken when the issuer,
	// duration or sign key is missing.
	ErrInvalidTokenParams = errors.New("issuer, duration and sign key are required to sign a token")

	// ErrTokenSubject is returned when a token subject is empty or not a
	// base-10 user id.
	ErrTokenSubject = errors.New("token subject is not a user id")

	// ErrMalformedBearer is returned by ParseBearerToken for headers that
	// are not of the form "<scheme> <token>".
	ErrMalformedBearer = errors.New("authorization header is not a bearer token")
)
