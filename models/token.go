// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by an identity token.
//
// Email duplicates the "sub" claim so that tokens stay readable by clients
// that only look at the payload. Attributes carries the remaining fields of
// the identity payload the token was issued for.
type Claims struct {
	Email      string     `json:"email"`
	Attributes Attributes `json:"attrs,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a signed identity token.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted. The cookie that
	// carries the token gets the same expiry.
	ExpiresAt time.Time `json:"-"`

	// Identity is the identity the token was issued for.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
