// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"greenpress/internal/models"
	"greenpress/internal/planner"
)

// bodyPreviewLen is how much of an item body the batch response carries;
// the full body is available via the single-item lookup.
const bodyPreviewLen = 200

// generateRequest is the body of POST /api/content/generate.
type generateRequest struct {
	Date string `json:"date"`
}

// itemView is the per-item shape returned by batch and lookup endpoints.
type itemView struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	Body             string                  `json:"body,omitempty"`
	BodyPreview      string                  `json:"body_preview,omitempty"`
	Platform         models.Platform         `json:"platform"`
	Subtype          models.Subtype          `json:"subtype"`
	Status           models.Status           `json:"status"`
	ScheduledAt      *time.Time              `json:"scheduled_at,omitempty"`
	Keywords         []string                `json:"keywords"`
	Hashtags         []string                `json:"hashtags"`
	MediaSuggestions []string                `json:"media_suggestions"`
	Source           models.GenerationSource `json:"generation_source"`
	WeekID           string                  `json:"week_id"`
	HolidayContext   string                  `json:"holiday_context"`
	Summary          *string                 `json:"summary,omitempty"`
	QualityScore     *int                    `json:"quality_score,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// previewView converts an item for batch responses (truncated body).
func previewView(item *models.ContentItem) itemView {
	v := fullView(item)
	v.Body = ""
	v.BodyPreview = item.BodyPreview(bodyPreviewLen)
	return v
}

// fullView converts an item for single-item responses.
func fullView(item *models.ContentItem) itemView {
	return itemView{
		ID:               item.ID.String(),
		Title:            item.Title,
		Body:             item.Body,
		Platform:         item.Platform,
		Subtype:          item.Subtype,
		Status:           item.Status,
		ScheduledAt:      item.ScheduledAt,
		Keywords:         item.Keywords,
		Hashtags:         item.Hashtags,
		MediaSuggestions: item.MediaSuggestions,
		Source:           item.Source,
		WeekID:           item.WeekID,
		HolidayContext:   item.HolidayContext,
		Summary:          item.Summary,
		QualityScore:     item.QualityScore,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

// GenerateContent runs the content plan for the requested date: a Monday
// yields the full week, any other day yields that day's package. Partial
// item failures are absorbed by the planner; the call fails only on bad
// input.
func (h *Handlers) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Date == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.planner.GenerateForDate(r.Context(), date)
	if err != nil {
		slog.Error("content generation failed", "date", req.Date, "error", err)
		writeError(w, http.StatusInternalServerError, "content generation failed")
		return
	}

	// The week's cached item list is stale as soon as new items land.
	if h.weekCache != nil {
		h.weekCache.Invalidate(r.Context(), res.WeekID)
	}

	items := make([]itemView, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, previewView(&res.Items[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"mode":              res.Mode,
		"week_id":           res.WeekID,
		"season":            res.Season,
		"theme":             res.Theme,
		"holidays":          holidaysView(res),
		"items_generated":   res.ItemCount,
		"content_breakdown": res.Breakdown,
		"generation_source": res.Source,
		"items":             items,
	})
}

// holidaysView keeps the holidays key an empty list rather than null.
func holidaysView(res *planner.BatchResult) []models.Holiday {
	if res.Holidays == nil {
		return []models.Holiday{}
	}
	return res.Holidays
}
