// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/utils"
	"github.com/MKhiriev/go-book-lending/models"
)

const tokenCookieName = "token"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises adapterCfg.HTTPAddress into a base URL and applies the
// request timeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs identity to /jwt and keeps the
// value of the token cookie from the response.
func (h *httpServerAdapter) Login(ctx context.Context, identity models.Identity) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(identity).
		Post("/jwt")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == tokenCookieName && cookie.Value != "" {
			h.SetToken(cookie.Value)
			h.logger.Debug().Str("func", "*httpServerAdapter.Login").Time("expires", cookie.Expires).Msg("token received")
			return nil
		}
	}

	return ErrNoTokenCookie
}

// Logout implements [ServerAdapter]. The local token is forgotten even when
// the request fails.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.SetToken("")

	resp, err := h.request(ctx).Get("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := h.getJSON(ctx, h.request(ctx), "/allBooks", &books); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (h *httpServerAdapter) ListBooksByCategory(ctx context.Context, category string) ([]models.Book, error) {
	var books []models.Book
	req := h.request(ctx).SetQueryParam("category", category)
	if err := h.getJSON(ctx, req, "/booksByCategory", &books); err != nil {
		return nil, fmt.Errorf("list books by category: %w", err)
	}
	return books, nil
}

// GetBook implements [ServerAdapter]. The server answers a missing book with
// null, which decodes to a nil book.
func (h *httpServerAdapter) GetBook(ctx context.Context, id string) (*models.Book, error) {
	var book *models.Book
	req := h.request(ctx).SetPathParam("id", id)
	if err := h.getJSON(ctx, req, "/book/{id}", &book); err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

func (h *httpServerAdapter) AddBook(ctx context.Context, book models.Book) (models.InsertResult, error) {
	var result models.InsertResult
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(book).
		Post("/addBook")
	if err = decodeResponse(resp, err, &result); err != nil {
		return models.InsertResult{}, fmt.Errorf("add book: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) UpdateBook(ctx context.Context, id string, book models.Book) (models.UpdateResult, error) {
	var result models.UpdateResult
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(book).
		Patch("/book/{id}")
	if err = decodeResponse(resp, err, &result); err != nil {
		return models.UpdateResult{}, fmt.Errorf("update book: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) Borrow(ctx context.Context, record models.BorrowRecord) (models.InsertResult, error) {
	var result models.InsertResult
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/borrowBook")
	if err = decodeResponse(resp, err, &result); err != nil {
		return models.InsertResult{}, fmt.Errorf("borrow book: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) Return(ctx context.Context, request models.ReturnRequest) (models.DeleteResult, error) {
	var result models.DeleteResult
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/return")
	if err = decodeResponse(resp, err, &result); err != nil {
		return models.DeleteResult{}, fmt.Errorf("return book: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) Borrowed(ctx context.Context, email string) ([]models.BorrowRecord, error) {
	var records []models.BorrowRecord
	req := h.request(ctx).SetPathParam("email", email)
	if err := h.getJSON(ctx, req, "/borrowedBooks/{email}", &records); err != nil {
		return nil, fmt.Errorf("list borrowed books: %w", err)
	}
	return records, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// request starts a request carrying the token cookie when one is known.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetCookie(&http.Cookie{Name: tokenCookieName, Value: token})
	}
	return req
}

func (h *httpServerAdapter) getJSON(ctx context.Context, req *resty.Request, path string, v any) error {
	resp, err := req.Get(path)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*httpServerAdapter.getJSON").Str("path", path).Msg("request failed")
	}
	return decodeResponse(resp, err, v)
}

func decodeResponse(resp *resty.Response, err error, v any) error {
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
