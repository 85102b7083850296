// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// maxHandleLen is the handle length limit imposed by blog import formats.
const maxHandleLen = 255

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Handle creates the CSV-export handle for a title: a slug truncated to
// 255 characters, trimmed so it never ends on a bare hyphen.
// Example: "Spring Garden Tips & Tricks!" → "spring-garden-tips-tricks"
func Handle(title string) string {
	h := Generate(title)
	if len(h) > maxHandleLen {
		h = h[:maxHandleLen]
		h = strings.TrimRight(h, "-")
	}
	return h
}
