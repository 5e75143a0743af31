// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/utils"
	"github.com/MKhiriev/go-book-lending/models"
)

// issueToken signs the posted identity and sets it as the token cookie.
// The body may carry any fields besides the email; they travel inside the
// token.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var identity models.Identity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid identity payload")
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, identity)
	if err != nil {
		writeError(w, r, err, "token issuance failed")
		return
	}

	http.SetCookie(w, h.tokenCookie(token.SignedString, token.ExpiresAt))
	log.Debug().Time("expires_at", token.ExpiresAt).Msg("token issued")

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.clearedTokenCookie())
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
