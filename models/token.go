package models

import "github.com/golang-jwt/jwt/v5"

// Token is a signed JWT issued to a user after a successful credentials
// check.
//
// SignedString is the compact form sent back in the "Authorization" header.
// UserID is the parsed "sub" claim; handlers put it into the request context
// so services can run ownership checks.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// BearerHeader returns the "Authorization" header value carrying t.
func (t Token) BearerHeader() string {
	return "Bearer " + t.SignedString
}
