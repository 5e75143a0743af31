// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-book-lending/internal/utils"
	"github.com/MKhiriev/go-book-lending/models"
)

func (h *Handler) allBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.CatalogService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err, "listing books failed")
		return
	}

	utils.WriteJSON(w, nonNil(books), http.StatusOK)
}

// booksByCategory matches the category query parameter exactly. A missing
// parameter is the empty category.
func (h *Handler) booksByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	books, err := h.services.CatalogService.ListByCategory(r.Context(), category)
	if err != nil {
		writeError(w, r, err, "listing books by category failed")
		return
	}

	utils.WriteJSON(w, nonNil(books), http.StatusOK)
}

// getBook answers a missing book with 200 and a null body.
func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.services.CatalogService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "getting book failed")
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) addBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid book payload")
		return
	}

	result, err := h.services.CatalogService.AddBook(r.Context(), book)
	if err != nil {
		writeError(w, r, err, "adding book failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// updateBook replaces the five mutable fields. Fields missing from the body
// are written as zero values, and every other field is ignored.
func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid book payload")
		return
	}

	result, err := h.services.CatalogService.UpdateBook(r.Context(), chi.URLParam(r, "id"), book.Update())
	if err != nil {
		writeError(w, r, err, "updating book failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// nonNil makes empty results render as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
