// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-book-lending/internal/service"
	"github.com/MKhiriev/go-book-lending/internal/utils"
	"github.com/MKhiriev/go-book-lending/models"
)

// borrowBook stores the posted borrow record as submitted and decrements
// the book quantity. A second active borrow of the same book by the same
// email is answered with 400 and a fixed text.
func (h *Handler) borrowBook(w http.ResponseWriter, r *http.Request) {
	var record models.BorrowRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid borrow payload")
		return
	}

	result, err := h.services.LendingService.Borrow(r.Context(), record)
	if err != nil {
		writeError(w, r, err, "borrowing book failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// borrowedBooks lists the active borrows of the email in the path, which
// must be the email of the verified identity.
func (h *Handler) borrowedBooks(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "malformed email in path")
		return
	}

	records, err := h.services.LendingService.ListBorrowed(r.Context(), email)
	if err != nil {
		writeError(w, r, err, "listing borrowed books failed")
		return
	}

	utils.WriteJSON(w, nonNil(records), http.StatusOK)
}

func (h *Handler) returnBook(w http.ResponseWriter, r *http.Request) {
	var request models.ReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid return payload")
		return
	}

	result, err := h.services.LendingService.Return(r.Context(), request)
	if err != nil {
		writeError(w, r, err, "returning book failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
