// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts the short Markdown descriptions of products and
// hero images into HTML using goldmark. Raw HTML in the source is omitted
// and dangerous link schemes are dropped.
package markdown

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Linkify,
		extension.Typographer, // Smart quotes and dashes
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(), // Admins type descriptions in a textarea; keep their line breaks
	),
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Safe renders source for direct use in a template. If conversion fails
// the escaped source is returned instead.
func Safe(source string) template.HTML {
	out, err := ToHTML(source)
	if err != nil {
		slog.Warn("markdown conversion failed", "error", err)
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(out)
}
