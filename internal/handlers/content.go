// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"greenpress/internal/models"
)

// GetContent returns one item with its full body.
func (h *Handlers) GetContent(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"item":    fullView(item),
	})
}

// GetWeek returns all items for a week id, ordered by scheduled time.
// Warm lookups are served from the week cache.
func (h *Handlers) GetWeek(w http.ResponseWriter, r *http.Request) {
	weekID := chi.URLParam(r, "weekID")

	var items []models.ContentItem
	cached := false
	if h.weekCache != nil {
		items, cached = h.weekCache.Get(r.Context(), weekID)
	}
	if !cached {
		var err error
		items, err = h.content.ListByWeek(r.Context(), weekID)
		if err != nil {
			slog.Error("list week failed", "week_id", weekID, "error", err)
			writeError(w, http.StatusInternalServerError, "lookup failed")
			return
		}
		if h.weekCache != nil {
			h.weekCache.Set(r.Context(), weekID, items)
		}
	}

	views := make([]itemView, 0, len(items))
	for i := range items {
		views = append(views, fullView(&items[i]))
	}

	response := map[string]any{
		"success": true,
		"week_id": weekID,
		"count":   len(items),
		"items":   views,
	}

	// Attach the weekly package metadata when the week was generated as a
	// full week (single-day runs never write one).
	if week, err := h.weeks.FindWeek(r.Context(), weekID); err != nil {
		slog.Warn("find weekly package failed", "week_id", weekID, "error", err)
	} else if week != nil {
		response["week"] = week
	}

	writeJSON(w, http.StatusOK, response)
}

// GetRange returns items scheduled in [start, end], both bounds
// inclusive; the end date covers its whole day.
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		writeError(w, http.StatusBadRequest, "start and end are required")
		return
	}

	start, err := parseDate(startStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDate(endStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateRange(start, end); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// A bare end date means "through the end of that day".
	if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 {
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	items, err := h.content.ListByRange(r.Context(), start, end)
	if err != nil {
		slog.Error("list range failed", "start", startStr, "end", endStr, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	views := make([]itemView, 0, len(items))
	for i := range items {
		views = append(views, fullView(&items[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(items),
		"items":   views,
	})
}

// statusRequest is the body of PUT /api/content/{id}/status.
type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an item to the named lifecycle state. Any defined
// state is accepted as a target: transition ordering is deliberately not
// enforced, matching the editorial workflow where operators jump items
// back to draft or straight to approved.
func (h *Handlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content id")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
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

	if _, err := h.content.UpdateStatus(r.Context(), id, status); err != nil {
		slog.Error("update status failed", "id", id, "status", status, "error", err)
		writeError(w, http.StatusInternalServerError, "status update failed")
		return
	}

	if h.weekCache != nil {
		h.weekCache.Invalidate(r.Context(), item.WeekID)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      id.String(),
		"status":  status,
	})
}

// ListWeeks returns recent weekly packages, newest first.
func (h *Handlers) ListWeeks(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.weeks.ListWeeks(r.Context(), 52)
	if err != nil {
		slog.Error("list weeks failed", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if weeks == nil {
		weeks = []models.WeeklyPackage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(weeks),
		"weeks":   weeks,
	})
}
