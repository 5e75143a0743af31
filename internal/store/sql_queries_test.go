// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-book-lending/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildListBooksQuery(t *testing.T) {
	query, args, err := buildListBooksQuery(dollar)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT id, cover_image, title, author_name, category, rating, quantity, attributes FROM books ORDER BY id",
		query)
}

func Test_buildListBooksByCategoryQuery(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		category    string
		placeholder string
	}{
		{name: "postgres", builder: dollar, category: "History", placeholder: "$1"},
		{name: "sqlite", builder: question, category: "History", placeholder: "?"},
		{name: "empty category is still an equality", builder: dollar, category: "", placeholder: "$1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListBooksByCategoryQuery(tt.builder, tt.category)
			require.NoError(t, err)

			assert.Contains(t, query, "WHERE category = "+tt.placeholder)
			assert.Equal(t, []any{tt.category}, args)
		})
	}
}

func Test_buildInsertBookQuery(t *testing.T) {
	book := models.Book{
		ID:         testBookID,
		Title:      "Dune",
		Category:   "Sci-Fi",
		Rating:     4.5,
		Quantity:   ptr(int64(3)),
		Attributes: models.Attributes{"shortDescription": json.RawMessage(`"spice"`)},
	}

	query, args, err := buildInsertBookQuery(dollar, book)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO books (id,cover_image,title,author_name,category,rating,quantity,attributes)"), query)
	assert.Contains(t, query, "$8")
	require.Len(t, args, 8)
	assert.Equal(t, testBookID, args[0])
	assert.Equal(t, "Dune", args[2])
	assert.Equal(t, book.Quantity, args[6])
	assert.JSONEq(t, `{"shortDescription":"spice"}`, args[7].(string))
}

func Test_buildUpdateBookQuery_OnlyMutableColumns(t *testing.T) {
	update := models.BookUpdate{CoverImage: "c", Title: "t", AuthorName: "a", Category: "x", Rating: 2}

	query, args, err := buildUpdateBookQuery(dollar, testBookID, update)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE books SET cover_image = $1, title = $2, author_name = $3, category = $4, rating = $5 "+
			"WHERE id = $6 AND (cover_image <> $7 OR title <> $8 OR author_name <> $9 OR category <> $10 OR rating <> $11)",
		query)
	assert.Equal(t, []any{"c", "t", "a", "x", float64(2), testBookID, "c", "t", "a", "x", float64(2)}, args)
	assert.NotContains(t, query, "quantity")
}

func Test_buildUpsertBookQuery(t *testing.T) {
	query, args, err := buildUpsertBookQuery(question, testBookID, models.BookUpdate{Title: "t"})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO books (id,cover_image,title,author_name,category,rating) VALUES (?,?,?,?,?,?)")
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET")
	assert.NotContains(t, query, "quantity")
	assert.Len(t, args, 6)
}

func Test_buildBookExistsQuery(t *testing.T) {
	query, args, err := buildBookExistsQuery(dollar, testBookID)
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1 FROM books WHERE id = $1 LIMIT 1", query)
	assert.Equal(t, []any{testBookID}, args)
}

func Test_buildAdjustQuantityQuery(t *testing.T) {
	query, args, err := buildAdjustQuantityQuery(dollar, testBookID, -1)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE books SET quantity = COALESCE(quantity, 0) + $1 WHERE id = $2", query)
	assert.Equal(t, []any{int64(-1), testBookID}, args)
}

func Test_buildBorrowExistsQuery(t *testing.T) {
	query, args, err := buildBorrowExistsQuery(dollar, testEmail, testBookID)
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1 FROM borrows WHERE book_id = $1 AND email = $2 LIMIT 1", query)
	assert.Equal(t, []any{testBookID, testEmail}, args)
}

func Test_buildBorrowQueries(t *testing.T) {
	record := models.BorrowRecord{ID: testRecordID, BookID: testBookID, Email: testEmail}

	query, args, err := buildInsertBorrowQuery(dollar, record)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO borrows (id,book_id,email,attributes) VALUES ($1,$2,$3,$4)", query)
	assert.Equal(t, []any{testRecordID, testBookID, testEmail, "{}"}, args)

	query, args, err = buildListBorrowsQuery(dollar, testEmail)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, book_id, email, attributes FROM borrows WHERE email = $1 ORDER BY id", query)
	assert.Equal(t, []any{testEmail}, args)

	query, args, err = buildDeleteBorrowQuery(dollar, testRecordID)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM borrows WHERE id = $1", query)
	assert.Equal(t, []any{testRecordID}, args)
}
