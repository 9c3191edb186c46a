// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// maxUploadSize is the maximum allowed upload size (10 MB).
	maxUploadSize = 10 << 20

	// maxImagePixels caps decoded dimensions to refuse decompression bombs.
	maxImagePixels = 50_000_000
)

// allowedExtensions maps accepted file extensions to the sniffed content
// types they may carry.
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Upload stores images posted by the admin UI.
type Upload struct {
	files Uploader
}

// NewUpload creates an Upload handler writing through files.
func NewUpload(files Uploader) *Upload {
	return &Upload{files: files}
}

// Create handles POST /api/upload with a multipart "file" field.
func (u *Upload) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, "File too large. Maximum size is 10 MB.", http.StatusRequestEntityTooLarge)
			return
		}
		writeError(w, "No file uploaded", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, "File too large. Maximum size is 10 MB.", http.StatusRequestEntityTooLarge)
		return
	}
	if declared := header.Header.Get("Content-Type"); !declaredImage(declared) {
		writeError(w, "Only image files are allowed", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		internalError(w, r, "Failed to read file", err)
		return
	}

	// The declared type is client controlled; trust the sniffed one.
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, "Only image files are allowed", http.StatusBadRequest)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	if want, ok := allowedExtensions[ext]; !ok || want != contentType {
		writeError(w, "Only jpg, jpeg, png, gif, and webp files are allowed", http.StatusBadRequest)
		return
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		writeError(w, "Invalid image file", http.StatusBadRequest)
		return
	}
	if cfg.Width*cfg.Height > maxImagePixels {
		writeError(w, "Image dimensions are too large", http.StatusBadRequest)
		return
	}

	name := uuid.New().String() + ext
	url, err := u.files.Put(r.Context(), name, contentType, data)
	if err != nil {
		internalError(w, r, "Failed to upload file", err)
		return
	}

	slog.Info("file uploaded", "name", name, "size", len(data), "type", contentType,
		"width", cfg.Width, "height", cfg.Height)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"filePath": url,
	})
}

// declaredImage reports whether the client-declared part type allows an
// image. Missing and generic binary types are left to sniffing.
func declaredImage(contentType string) bool {
	switch {
	case contentType == "", contentType == "application/octet-stream":
		return true
	default:
		return strings.HasPrefix(contentType, "image/")
	}
}

func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
