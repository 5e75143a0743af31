// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-book-lending/internal/config"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
	}
	router.Use(middleware.Recoverer)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	router.Get("/", h.greeting)
	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// token issuance
	router.Post("/jwt", h.issueToken)
	router.Get("/logout", h.logout)

	// catalog
	router.Get("/allBooks", h.allBooks)
	router.Get("/booksByCategory", h.booksByCategory)
	router.Get("/book/{id}", h.getBook)
	router.Post("/addBook", h.addBook)
	router.With(h.updateBookGuard()...).Patch("/book/{id}", h.updateBook)

	// lending
	router.Post("/borrowBook", h.borrowBook)
	router.With(h.auth).Get("/borrowedBooks/{email}", h.borrowedBooks)
	router.Post("/return", h.returnBook)

	return router
}

// updateBookGuard returns the middleware in front of the book update
// route. When the route is guarded an identity is required in every auth
// mode; when it is configured open nothing is checked.
func (h *Handler) updateBookGuard() []func(http.Handler) http.Handler {
	if h.app.UpdateBookAuth == config.UpdateBookAuthNone {
		return nil
	}
	return []func(http.Handler) http.Handler{h.auth, h.requireIdentity}
}

// withCORS allows credentialed requests from the configured origins so that
// browsers send the token cookie.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
