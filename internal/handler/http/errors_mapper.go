// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-book-lending/internal/app"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/service"
	"github.com/MKhiriev/go-book-lending/internal/store"
	"github.com/MKhiriev/go-book-lending/internal/utils"
	"github.com/MKhiriev/go-book-lending/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidID:               http.StatusBadRequest,
	service.ErrAlreadyBorrowed:         http.StatusBadRequest,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrForbiddenIdentity:       http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUnavailable:  http.StatusServiceUnavailable,
	store.ErrInvalidInput: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is checked in order: the more specific error wins.
var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrAlreadyBorrowed, app.MsgAlreadyBorrowed},
	{validators.ErrEmptyEmail, app.MsgNoEmailProvided},
	{validators.ErrEmptyBookID, app.MsgNoBookIDProvided},
	{validators.ErrEmptyRecordID, app.MsgNoRecordIDProvided},
	{service.ErrForbiddenIdentity, app.MsgForbiddenIdentity},
	{service.ErrUnauthorized, app.MsgUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	{store.ErrUnavailable, app.MsgServiceUnavailable},
}

func messageFromError(err error, status int) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return app.MsgInvalidDataProvided
}

// writeError logs err and answers with its status and a plain-text message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	utils.WriteText(w, messageFromError(err, status), status)
}
