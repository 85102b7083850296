// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"greenpress/internal/models"
)

// Publish pushes a blog item to the external blog platform. Publish
// failures are surfaced verbatim and leave the item's status unchanged;
// only a confirmed success transitions the item to published.
func (h *Handlers) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content id")
		return
	}

	item, err := h.content.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("find content failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "content not found")
		return
	}

	if item.Platform != models.PlatformBlog {
		writeError(w, http.StatusNotImplemented,
			"publishing is only implemented for blog items; use the export endpoints for "+string(item.Platform))
		return
	}

	if h.publisher == nil {
		writeError(w, http.StatusServiceUnavailable, "blog platform is not configured")
		return
	}

	result, err := h.publisher.PublishArticle(r.Context(), item)
	if err != nil {
		slog.Error("publish failed", "id", id, "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	if _, err := h.content.UpdateStatus(r.Context(), id, models.StatusPublished); err != nil {
		// The article is live; report success but flag the stale status.
		slog.Error("persist published status failed", "id", id, "error", err)
	}

	if h.weekCache != nil {
		h.weekCache.Invalidate(r.Context(), item.WeekID)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"id":        id.String(),
		"status":    models.StatusPublished,
		"remote_id": result.RemoteID,
		"url":       result.URL,
	})
}
