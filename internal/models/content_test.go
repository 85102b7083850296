// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestParseStatus(t *testing.T) {
	valid := []string{"draft", "preview", "approved", "scheduled", "published", "failed"}
	for _, s := range valid {
		got, err := ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q): unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q", s, got)
		}
	}

	invalid := []string{"", "Draft", "live", "published ", "archived"}
	for _, s := range invalid {
		if _, err := ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q): expected error", s)
		}
	}
}

func TestIsPublished(t *testing.T) {
	c := &ContentItem{Status: StatusDraft}
	if c.IsPublished() {
		t.Error("draft reported published")
	}
	c.Status = StatusPublished
	if !c.IsPublished() {
		t.Error("published not reported")
	}
}

func TestBodyPreview(t *testing.T) {
	c := &ContentItem{Body: "short"}
	if got := c.BodyPreview(10); got != "short" {
		t.Errorf("short body: %q", got)
	}

	c.Body = "0123456789abcdef"
	if got := c.BodyPreview(10); got != "0123456789..." {
		t.Errorf("truncated body: %q", got)
	}

	// Rune-safe truncation.
	c.Body = "héllo wörld"
	got := c.BodyPreview(4)
	if got != "héll..." {
		t.Errorf("unicode body: %q", got)
	}
}
