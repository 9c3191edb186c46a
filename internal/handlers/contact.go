// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
)

// contactForm is the body of POST /api/email.
type contactForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Message   string `json:"message"`
}

// Contact handles POST /api/email. Submissions are validated and logged;
// nothing is delivered.
func Contact(w http.ResponseWriter, r *http.Request) {
	var f contactForm
	if !decodeJSON(w, r, &f) {
		return
	}
	if msg := validateContact(f); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	slog.Info("contact form submission",
		"first_name", strings.TrimSpace(f.FirstName),
		"last_name", strings.TrimSpace(f.LastName),
		"email", strings.TrimSpace(f.Email),
		"company", strings.TrimSpace(f.Company),
		"message_len", len(f.Message),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Form submission received",
	})
}
