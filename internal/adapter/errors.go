// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrAlreadyBorrowed     = errors.New("book is already borrowed")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrNoTokenCookie is returned by Login when the server answered
	// without setting the token cookie.
	ErrNoTokenCookie = errors.New("no token cookie in response")

	ErrEmptyAddress = errors.New("empty address")
)
