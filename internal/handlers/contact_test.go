// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func validContact() contactForm {
	return contactForm{
		FirstName: "Amna",
		LastName:  "Khan",
		Email:     "amna@example.com",
		Company:   "Khan Imports",
		Message:   "Please send a price list for sella rice.",
	}
}

func TestContactSubmission(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/email", validContact())
	expectStatus(t, rec, http.StatusOK)

	body := decode[map[string]any](t, rec)
	if body["success"] != true || body["message"] != "Form submission received" {
		t.Errorf("body = %v", body)
	}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*contactForm)
		want   string
	}{
		{"valid", func(*contactForm) {}, ""},
		{"missing first name", func(f *contactForm) { f.FirstName = "" }, "All fields are required"},
		{"blank company", func(f *contactForm) { f.Company = "  " }, "All fields are required"},
		{"missing message", func(f *contactForm) { f.Message = "" }, "All fields are required"},
		{"bad email", func(f *contactForm) { f.Email = "not-an-email" }, "A valid email address is required"},
		{"long name", func(f *contactForm) { f.LastName = strings.Repeat("k", 201) }, "Fields are too long (max 200 characters)"},
		{"long message", func(f *contactForm) { f.Message = strings.Repeat("m", 5001) }, "Message is too long (max 5,000 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validContact()
			tt.modify(&f)
			if got := validateContact(f); got != tt.want {
				t.Errorf("validateContact() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContactMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/email", map[string]string{"firstName": "Amna"})
	expectStatus(t, rec, http.StatusBadRequest)
	if got := errorOf(t, rec); got != "All fields are required" {
		t.Errorf("error = %q", got)
	}
}
