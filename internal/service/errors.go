// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidID           = errors.New("malformed identifier")

	ErrAlreadyBorrowed   = errors.New("book is already borrowed by this identity")
	ErrUnauthorized      = errors.New("no verified identity")
	ErrForbiddenIdentity = errors.New("requested identity differs from verified identity")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
