// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export renders batches of content items into human-copyable
// formats: a blog-import CSV and an HTML page with click-to-copy blocks
// for platforms that have no API integration.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"greenpress/internal/markdown"
	"greenpress/internal/models"
	"greenpress/internal/slug"
)

// csvHeader is the blog-import column set, in order.
var csvHeader = []string{
	"Title", "Content", "Excerpt", "Handle", "Published", "Tags",
	"Author", "Created At", "Updated At", "Status", "SEO Title",
	"SEO Description",
}

// WriteCSV renders the items as a blog-import CSV. The Handle column is
// a slug of the title; Content is the body converted to HTML.
func WriteCSV(w io.Writer, items []models.ContentItem, author string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range items {
		item := &items[i]

		body, err := markdown.ToHTML(item.Body)
		if err != nil {
			return fmt.Errorf("render csv body %s: %w", item.ID, err)
		}

		excerpt := ""
		if item.Summary != nil {
			excerpt = *item.Summary
		}

		record := []string{
			item.Title,
			body,
			excerpt,
			slug.Handle(item.Title),
			strconv.FormatBool(item.IsPublished()),
			strings.Join(item.Keywords, ", "),
			author,
			item.CreatedAt.Format(time.RFC3339),
			item.UpdatedAt.Format(time.RFC3339),
			string(item.Status),
			item.Title,
			excerpt,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record %s: %w", item.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
