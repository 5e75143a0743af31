// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"
)

const tokenCookieName = "token"

// tokenCookie carries a signed token. In production the cookie is sent on
// cross-site requests, which browsers only allow for Secure cookies.
func (h *Handler) tokenCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     tokenCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if h.app.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}

	return cookie
}

// clearedTokenCookie has the attributes of tokenCookie and Max-Age=0.
func (h *Handler) clearedTokenCookie() *http.Cookie {
	cookie := h.tokenCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1

	return cookie
}
