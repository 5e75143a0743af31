// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-book-lending/internal/app"
	"github.com/MKhiriev/go-book-lending/internal/service"
	"github.com/MKhiriev/go-book-lending/internal/store"
	"github.com/MKhiriev/go-book-lending/models"
)

func TestAllBooks(t *testing.T) {
	tests := []struct {
		name       string
		books      []models.Book
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "empty catalog renders an empty array",
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "store failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
		{
			name:       "store unreachable",
			err:        store.ErrUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   app.MsgServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, nil)
			m.catalog.EXPECT().ListAll(gomock.Any()).Return(tt.books, tt.err)

			rec := doRequest(t, router, http.MethodGet, "/allBooks", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAllBooks_ReturnsBooks(t *testing.T) {
	router, m := newTestRouter(t, nil)
	m.catalog.EXPECT().ListAll(gomock.Any()).Return([]models.Book{
		{ID: testBookID, Title: "Dune", Category: "sci-fi", Quantity: ptr(int64(3))},
	}, nil)

	rec := doRequest(t, router, http.MethodGet, "/allBooks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, testBookID, got[0]["_id"])
	assert.Equal(t, "Dune", got[0]["title"])
	assert.Equal(t, float64(3), got[0]["quantity"])
}

func TestBooksByCategory_PassesQueryThrough(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		category string
	}{
		{name: "exact value", target: "/booksByCategory?category=Sci-Fi", category: "Sci-Fi"},
		{name: "escaped value", target: "/booksByCategory?category=Science%20Fiction", category: "Science Fiction"},
		{name: "missing parameter is the empty category", target: "/booksByCategory", category: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, nil)
			m.catalog.EXPECT().ListByCategory(gomock.Any(), tt.category).Return(nil, nil)

			rec := doRequest(t, router, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, `[]`, rec.Body.String())
		})
	}
}

func TestGetBook(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), testBookID).Return(&models.Book{ID: testBookID, Title: "Dune"}, nil)

		rec := doRequest(t, router, http.MethodGet, "/book/"+testBookID, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Dune", got["title"])
	})

	t.Run("missing book is null", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), testBookID).Return(nil, nil)

		rec := doRequest(t, router, http.MethodGet, "/book/"+testBookID, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", rec.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), "not-an-id").Return(nil, service.ErrInvalidID)

		rec := doRequest(t, router, http.MethodGet, "/book/not-an-id", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidDataProvided, rec.Body.String())
	})
}

func TestAddBook(t *testing.T) {
	t.Run("stores the posted book", func(t *testing.T) {
		router, m := newTestRouter(t, nil)
		m.catalog.EXPECT().AddBook(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, book models.Book) (models.InsertResult, error) {
				assert.Equal(t, "Dune", book.Title)
				assert.Equal(t, ptr(int64(3)), book.Quantity)
				return models.InsertResult{Acknowledged: true, InsertedID: testBookID}, nil
			},
		)

		rec := doRequest(t, router, http.MethodPost, "/addBook", `{"title":"Dune","quantity":3}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"acknowledged":true,"insertedId":"`+testBookID+`"}`, rec.Body.String())
	})

	t.Run("invalid json", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)

		rec := doRequest(t, router, http.MethodPost, "/addBook", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidDataProvided, rec.Body.String())
	})
}

func TestUpdateBook_ReplacesMutableFields(t *testing.T) {
	router, m := newTestRouter(t, nil)

	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{Identity: models.Identity{Email: testEmail}}, nil)
	m.catalog.EXPECT().UpdateBook(gomock.Any(), testBookID, models.BookUpdate{
		CoverImage: "c.png",
		Title:      "Dune Messiah",
		AuthorName: "Frank Herbert",
		Category:   "sci-fi",
		Rating:     4,
	}).Return(models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	body := `{"coverImage":"c.png","title":"Dune Messiah","authorName":"Frank Herbert","category":"sci-fi","rating":4,"quantity":99}`
	rec := doRequest(t, router, http.MethodPatch, "/book/"+testBookID, body, tokenCookie(testToken))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedCount":0,"upsertedId":null}`,
		rec.Body.String())
}

func ptr[T any](v T) *T {
	return &v
}
