// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. They are mapped to
// status codes by statusFromError.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidPathID is returned when a {id} path segment is not a
	// positive integer.
	ErrInvalidPathID = errors.New("path id is not a positive integer")

	// ErrDecodingBody is returned when the request body is not valid JSON
	// for the expected payload.
	ErrDecodingBody = errors.New("error decoding request body")
)
