// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// fallbackBase is used by WithSuffix when the text yields an empty slug.
const fallbackBase = "hero"

// nonAlphanumeric matches every run of characters outside [a-z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given string.
// Example: "Al Razak Pink Salt!" → "al-razak-pink-salt"
func Generate(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// WithSuffix returns the slug of s followed by the last six digits of the
// millisecond timestamp t. Titles may repeat or be empty, so the suffix
// lowers the chance of two records sharing an id. It does not rule it out.
func WithSuffix(s string, t time.Time) string {
	base := Generate(s)
	if base == "" {
		base = fallbackBase
	}
	ms := fmt.Sprintf("%d", t.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return base + "-" + ms
}
