package service

import "errors"

var (
	// ErrTokenCreationFailed is returned by [AuthService.CreateToken] when the
	// JWT cannot be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned by [AuthService.ParseToken] for
	// any token that fails signature, issuer or expiry validation.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when the
	// configuration carries no version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
