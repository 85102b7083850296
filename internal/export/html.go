// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"greenpress/internal/markdown"
	"greenpress/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// htmlTemplate is parsed once at init; the template is fixed and embedded.
var htmlTemplate = template.Must(template.New("export.html").Funcs(template.FuncMap{
	"joinTags": func(tags []string) string { return strings.Join(tags, " ") },
	"schedule": func(t *time.Time) string {
		if t == nil {
			return "unscheduled"
		}
		return t.Format("Mon Jan 2, 15:04")
	},
}).ParseFS(templateFS, "templates/export.html"))

// htmlItem is one item prepared for the export page.
type htmlItem struct {
	Item     *models.ContentItem
	Rendered template.HTML // body converted to HTML for the preview pane
	CopyText string        // raw text placed in the copy block
}

// htmlPage is the data passed to the export template.
type htmlPage struct {
	GeneratedAt time.Time
	Items       []htmlItem
}

// WriteHTML renders the items as a standalone page with a preview and a
// click-to-copy block per item.
func WriteHTML(w io.Writer, items []models.ContentItem) error {
	page := htmlPage{GeneratedAt: time.Now()}

	for i := range items {
		item := &items[i]
		rendered, err := markdown.ToHTML(item.Body)
		if err != nil {
			return fmt.Errorf("render export body %s: %w", item.ID, err)
		}
		page.Items = append(page.Items, htmlItem{
			Item:     item,
			Rendered: template.HTML(rendered),
			CopyText: copyText(item),
		})
	}

	if err := htmlTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render export page: %w", err)
	}
	return nil
}

// copyText assembles the paste-ready text for one item: body plus
// hashtags for social platforms, body only for blog and video scripts.
func copyText(item *models.ContentItem) string {
	var b strings.Builder
	b.WriteString(item.Body)
	switch item.Platform {
	case models.PlatformInstagram, models.PlatformFacebook,
		models.PlatformTikTok, models.PlatformLinkedIn:
		if len(item.Hashtags) > 0 {
			b.WriteString("\n\n")
			b.WriteString(strings.Join(item.Hashtags, " "))
		}
	}
	return b.String()
}
