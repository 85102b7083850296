// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"greenpress/internal/export"
	"greenpress/internal/models"
)

// exportRequest carries the caller-supplied batch to render. Items are
// passed in full, not re-fetched: export operates on whatever the caller
// has, including unsaved edits.
type exportRequest struct {
	Items []models.ContentItem `json:"items"`
}

// decodeExport validates and decodes an export request body.
func decodeExport(r *http.Request) ([]models.ContentItem, error) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON body")
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("items is required")
	}
	if len(req.Items) > maxExportItems {
		return nil, fmt.Errorf("too many items (max %d)", maxExportItems)
	}
	return req.Items, nil
}

// ExportCSV renders the batch as a blog-import CSV. When the S3 archive
// is configured, a copy is stored there as well; archive failures never
// fail the download.
func (h *Handlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	items, err := decodeExport(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, items, h.author); err != nil {
		slog.Error("csv export failed", "items", len(items), "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	if h.archive != nil {
		key := fmt.Sprintf("exports/%s/content-%s.csv",
			time.Now().Format("2006/01"), time.Now().Format("20060102-150405"))
		if err := h.archive.Upload(r.Context(), key, "text/csv", bytes.NewReader(buf.Bytes()), int64(buf.Len())); err != nil {
			slog.Warn("export archive failed", "key", key, "error", err)
		} else {
			slog.Info("export archived", "key", key, "url", h.archive.ObjectURL(key))
		}
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="content-export.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// ExportHTML renders the batch as the click-to-copy distribution page.
func (h *Handlers) ExportHTML(w http.ResponseWriter, r *http.Request) {
	items, err := decodeExport(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := export.WriteHTML(&buf, items); err != nil {
		slog.Error("html export failed", "items", len(items), "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
