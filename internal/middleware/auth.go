// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// AdminCookieName is the cookie that marks a browser as logged in to the
// admin area. Its value must equal the configured sentinel.
const AdminCookieName = "admin-auth"

// IsAdmin reports whether r carries the admin cookie with the sentinel
// value. The comparison is constant-time.
func IsAdmin(r *http.Request, sentinel string) bool {
	if sentinel == "" {
		return false
	}
	c, err := r.Cookie(AdminCookieName)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Value), []byte(sentinel)) == 1
}

// RequireAdmin rejects requests without a valid admin cookie with 401 and
// the JSON error body {"error":"Unauthorized"}.
func RequireAdmin(sentinel string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdmin(r, sentinel) {
				WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WriteJSONError writes {"error": msg} with the given status.
func WriteJSONError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
