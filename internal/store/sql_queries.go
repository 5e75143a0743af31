// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-book-lending/models"
)

const (
	booksTable   = "books"
	borrowsTable = "borrows"
)

var bookColumns = []string{
	"id",
	"cover_image",
	"title",
	"author_name",
	"category",
	"rating",
	"quantity",
	"attributes",
}

var borrowColumns = []string{
	"id",
	"book_id",
	"email",
	"attributes",
}

// upsertBookSuffix turns a book insert into an update of the five mutable
// columns when the id already exists. Both PostgreSQL and SQLite (3.24+)
// accept this form.
const upsertBookSuffix = `ON CONFLICT (id) DO UPDATE SET
	cover_image = excluded.cover_image,
	title       = excluded.title,
	author_name = excluded.author_name,
	category    = excluded.category,
	rating      = excluded.rating`

func buildListBooksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(bookColumns...).
		From(booksTable).
		OrderBy("id").
		ToSql()
}

func buildListBooksByCategoryQuery(b sq.StatementBuilderType, category string) (string, []any, error) {
	return b.Select(bookColumns...).
		From(booksTable).
		Where(sq.Eq{"category": category}).
		OrderBy("id").
		ToSql()
}

func buildGetBookQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(bookColumns...).
		From(booksTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertBookQuery(b sq.StatementBuilderType, book models.Book) (string, []any, error) {
	attrs, err := book.Attributes.Value()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return b.Insert(booksTable).
		Columns(bookColumns...).
		Values(
			book.ID,
			book.CoverImage,
			book.Title,
			book.AuthorName,
			book.Category,
			book.Rating,
			book.Quantity,
			attrs,
		).
		ToSql()
}

// buildUpdateBookQuery only touches the row when at least one of the five
// fields differs, so the affected row count is the modified count.
func buildUpdateBookQuery(b sq.StatementBuilderType, id string, update models.BookUpdate) (string, []any, error) {
	return b.Update(booksTable).
		Set("cover_image", update.CoverImage).
		Set("title", update.Title).
		Set("author_name", update.AuthorName).
		Set("category", update.Category).
		Set("rating", update.Rating).
		Where(sq.Eq{"id": id}).
		Where(sq.Or{
			sq.NotEq{"cover_image": update.CoverImage},
			sq.NotEq{"title": update.Title},
			sq.NotEq{"author_name": update.AuthorName},
			sq.NotEq{"category": update.Category},
			sq.NotEq{"rating": update.Rating},
		}).
		ToSql()
}

func buildBookExistsQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("1").
		From(booksTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

// buildUpsertBookQuery creates a book holding only the mutable fields; its
// quantity stays NULL.
func buildUpsertBookQuery(b sq.StatementBuilderType, id string, update models.BookUpdate) (string, []any, error) {
	return b.Insert(booksTable).
		Columns("id", "cover_image", "title", "author_name", "category", "rating").
		Values(id, update.CoverImage, update.Title, update.AuthorName, update.Category, update.Rating).
		Suffix(upsertBookSuffix).
		ToSql()
}

// buildAdjustQuantityQuery increments quantity server-side so concurrent
// adjustments never lose an update. A NULL quantity counts as zero.
func buildAdjustQuantityQuery(b sq.StatementBuilderType, id string, delta int64) (string, []any, error) {
	return b.Update(booksTable).
		Set("quantity", sq.Expr("COALESCE(quantity, 0) + ?", delta)).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildBorrowExistsQuery(b sq.StatementBuilderType, email, bookID string) (string, []any, error) {
	return b.Select("1").
		From(borrowsTable).
		Where(sq.Eq{"email": email, "book_id": bookID}).
		Limit(1).
		ToSql()
}

func buildInsertBorrowQuery(b sq.StatementBuilderType, record models.BorrowRecord) (string, []any, error) {
	attrs, err := record.Attributes.Value()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return b.Insert(borrowsTable).
		Columns(borrowColumns...).
		Values(record.ID, record.BookID, record.Email, attrs).
		ToSql()
}

func buildListBorrowsQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(borrowColumns...).
		From(borrowsTable).
		Where(sq.Eq{"email": email}).
		OrderBy("id").
		ToSql()
}

func buildDeleteBorrowQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(borrowsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
