// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// JSON field names of a book document.
const (
	BookFieldID         = "_id"
	BookFieldCoverImage = "coverImage"
	BookFieldTitle      = "title"
	BookFieldAuthorName = "authorName"
	BookFieldCategory   = "category"
	BookFieldRating     = "rating"
	BookFieldQuantity   = "quantity"
)

// Book is a catalog entry together with the number of copies available for
// lending.
//
// Quantity is nil for books that were created through an update of a
// non-existent identifier: such books only carry the five mutable fields.
// Quantity is never clamped, so it may become negative.
type Book struct {
	ID         string
	CoverImage string
	Title      string
	AuthorName string
	Category   string
	Rating     float64
	Quantity   *int64

	// Attributes holds any other fields the client submitted.
	Attributes Attributes
}

// BookUpdate carries the five fields replaced by a book update.
type BookUpdate struct {
	CoverImage string
	Title      string
	AuthorName string
	Category   string
	Rating     float64
}

// Update returns the mutable part of b.
func (b Book) Update() BookUpdate {
	return BookUpdate{
		CoverImage: b.CoverImage,
		Title:      b.Title,
		AuthorName: b.AuthorName,
		Category:   b.Category,
		Rating:     b.Rating,
	}
}

// MarshalJSON renders the book as a flat document: attributes first, then
// the known fields on top.
func (b Book) MarshalJSON() ([]byte, error) {
	fields := map[string]any{
		BookFieldID:         b.ID,
		BookFieldCoverImage: b.CoverImage,
		BookFieldTitle:      b.Title,
		BookFieldAuthorName: b.AuthorName,
		BookFieldCategory:   b.Category,
		BookFieldRating:     b.Rating,
	}
	if b.Quantity != nil {
		fields[BookFieldQuantity] = *b.Quantity
	}

	return mergeDocument(fields, b.Attributes)
}

// UnmarshalJSON accepts any JSON object. Rating and quantity may be sent as
// numbers or numeric strings. "_id" is decoded; services assign their own
// identifier on insert.
func (b *Book) UnmarshalJSON(data []byte) error {
	fields, attrs, err := splitDocument(data,
		BookFieldID,
		BookFieldCoverImage,
		BookFieldTitle,
		BookFieldAuthorName,
		BookFieldCategory,
		BookFieldRating,
		BookFieldQuantity,
	)
	if err != nil {
		return err
	}

	var book Book
	if book.ID, err = decodeString(fields[BookFieldID]); err != nil {
		return fmt.Errorf("%s: %w", BookFieldID, err)
	}
	if book.CoverImage, err = decodeString(fields[BookFieldCoverImage]); err != nil {
		return fmt.Errorf("%s: %w", BookFieldCoverImage, err)
	}
	if book.Title, err = decodeString(fields[BookFieldTitle]); err != nil {
		return fmt.Errorf("%s: %w", BookFieldTitle, err)
	}
	if book.AuthorName, err = decodeString(fields[BookFieldAuthorName]); err != nil {
		return fmt.Errorf("%s: %w", BookFieldAuthorName, err)
	}
	if book.Category, err = decodeString(fields[BookFieldCategory]); err != nil {
		return fmt.Errorf("%s: %w", BookFieldCategory, err)
	}
	if book.Rating, err = decodeFloat(fields[BookFieldRating]); err != nil {
		return fmt.Errorf("%s: %w", BookFieldRating, err)
	}
	if book.Quantity, err = decodeInt(fields[BookFieldQuantity]); err != nil {
		return fmt.Errorf("%s: %w", BookFieldQuantity, err)
	}
	book.Attributes = attrs

	*b = book
	return nil
}

var _ json.Marshaler = Book{}
