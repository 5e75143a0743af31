// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// lending server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or an identifier is malformed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorized is returned when a guarded route is called without a
	// token cookie.
	MsgUnauthorized = "unauthorized access"

	// MsgTokenIsExpiredOrInvalid is returned when the token cookie is
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgForbiddenIdentity is returned when a caller asks for another
	// borrower's records.
	MsgForbiddenIdentity = "forbidden access"

	// MsgAlreadyBorrowed is returned when the caller already holds an
	// active borrow of the same book. Clients match on this exact text.
	MsgAlreadyBorrowed = "You have already borrowed this book"

	// MsgNoEmailProvided is returned when a token or borrow request carries
	// no email.
	MsgNoEmailProvided = "email is required"

	// MsgNoBookIDProvided is returned when a borrow or return request
	// carries no book id.
	MsgNoBookIDProvided = "bookID is required"

	// MsgNoRecordIDProvided is returned when a return request carries no
	// borrow record id.
	MsgNoRecordIDProvided = "id is required"

	// MsgServiceUnavailable is returned when the catalog database cannot be
	// reached.
	MsgServiceUnavailable = "service unavailable"
)
