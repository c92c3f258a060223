// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"gigfin/internal/storage"
)

// maxUploadSize limits media uploads to 10 MiB.
const maxUploadSize = 10 << 20

// allowedMediaTypes are the content types accepted for article media.
var allowedMediaTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Media groups the media upload endpoints backed by S3-compatible storage.
type Media struct {
	storage *storage.Client
}

// NewMedia creates a new Media handler group. storage may be nil, in
// which case uploads are rejected with 503.
func NewMedia(s *storage.Client) *Media {
	return &Media{storage: s}
}

// Upload accepts a multipart file and stores it in the public bucket
// under a date-prefixed random key.
//
// POST /admin/media (multipart, field "file")
func (m *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if m.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "media storage not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedMediaTypes[contentType]
	if !ok {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported media type")
		return
	}

	key := path.Join(
		"media",
		time.Now().UTC().Format("2006/01"),
		strings.ReplaceAll(uuid.NewString(), "-", "")+ext,
	)

	if err := m.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		slog.Error("media upload failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	slog.Info("media uploaded", "key", key, "size", header.Size)
	writeJSON(w, http.StatusCreated, map[string]any{
		"key": key,
		"url": m.storage.FileURL(key),
	})
}

// Delete removes a stored media object by its key or public URL.
//
// DELETE /admin/media {"key": ...} or {"url": ...}
func (m *Media) Delete(w http.ResponseWriter, r *http.Request) {
	if m.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "media storage not configured")
		return
	}

	var req struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	key := req.Key
	if key == "" && req.URL != "" {
		var ok bool
		if key, ok = m.storage.ExtractKey(req.URL); !ok {
			writeError(w, http.StatusBadRequest, "url does not belong to this storage")
			return
		}
	}
	if key == "" {
		writeError(w, http.StatusBadRequest, "key or url required")
		return
	}

	if err := m.storage.Delete(r.Context(), key); err != nil {
		slog.Error("media delete failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}
