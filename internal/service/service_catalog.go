// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/store"
	"github.com/MKhiriev/go-book-lending/internal/utils"
	"github.com/MKhiriev/go-book-lending/models"
)

// catalogService is the concrete implementation of CatalogService.
// Identifiers are parsed before any store call, so a malformed id never
// reaches the backend.
type catalogService struct {
	books store.BookRepository
	ids   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewCatalogService(books store.BookRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		books:  books,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (c *catalogService) ListAll(ctx context.Context) ([]models.Book, error) {
	books, err := c.books.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing books failed: %w", err)
	}

	return books, nil
}

// ListByCategory matches category exactly and case-sensitively. An empty
// category selects the books that have none, not the whole catalog.
func (c *catalogService) ListByCategory(ctx context.Context, category string) ([]models.Book, error) {
	books, err := c.books.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing books by category failed: %w", err)
	}

	return books, nil
}

func (c *catalogService) GetByID(ctx context.Context, id string) (*models.Book, error) {
	canonical, err := parseID(ctx, id)
	if err != nil {
		return nil, err
	}

	book, err := c.books.GetByID(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("getting book failed: %w", err)
	}

	return book, nil
}

// AddBook stores book under a freshly generated identifier. The payload is
// not checked for required fields.
func (c *catalogService) AddBook(ctx context.Context, book models.Book) (models.InsertResult, error) {
	book.ID = c.ids.Generate()

	result, err := c.books.Insert(ctx, book)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.AddBook").Msg("book insertion failed")
		return models.InsertResult{}, fmt.Errorf("book insertion failed: %w", err)
	}

	return result, nil
}

// UpdateBook replaces the five mutable fields of the book with id, or
// creates a book holding only those fields when none matches.
func (c *catalogService) UpdateBook(ctx context.Context, id string, update models.BookUpdate) (models.UpdateResult, error) {
	canonical, err := parseID(ctx, id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	result, err := c.books.Upsert(ctx, canonical, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.UpdateBook").Str("book_id", canonical).Msg("book update failed")
		return models.UpdateResult{}, fmt.Errorf("book update failed: %w", err)
	}

	return result, nil
}

// parseID returns the canonical form of id or an error wrapping
// ErrInvalidID.
func parseID(ctx context.Context, id string) (string, error) {
	canonical, err := utils.ParseID(id)
	if err != nil {
		logger.FromContext(ctx).Debug().Str("func", "parseID").Str("id", id).Msg("malformed identifier")
		return "", fmt.Errorf("%w: %w", ErrInvalidID, err)
	}

	return canonical, nil
}
