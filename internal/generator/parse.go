// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// maxSummaryLen is the meta-description limit shared by all strategies.
const maxSummaryLen = 160

// maxMediaSuggestions caps the remote path's image suggestion list.
const maxMediaSuggestions = 5

// remotePayload is the structured shape the model is asked to return.
type remotePayload struct {
	Content          string   `json:"content"`
	MetaDescription  string   `json:"meta_description"`
	ImageSuggestions []string `json:"image_suggestions"`
	QualityScore     int      `json:"quality_score"`
}

var (
	// codeFence strips ```json ... ``` wrappers models love to add.
	codeFence = regexp.MustCompile("(?s)^\\s*```(?:json)?\\s*(.*?)\\s*```\\s*$")
	// metaDescLine matches a loose "meta description: ..." line in prose.
	metaDescLine = regexp.MustCompile(`(?im)^\s*"?meta[ _-]?description"?\s*[:\-]\s*"?(.+?)"?\s*$`)
	// imageLine matches image-suggestion-like lines in prose output.
	imageLine = regexp.MustCompile(`(?im)^\s*(?:[-*\d.]+\s*)?(?:image|photo|picture|visual)[^:]*:\s*(.+)$`)
)

// parseRemoteResponse turns raw model output into a Result via three
// stages: strict JSON parse, best-effort field scraping, and finally a
// synthesized HTML shell around the raw text. No stage returns an error;
// every input yields a Result satisfying the output contract.
func parseRemoteResponse(raw string, req Request) *Result {
	trimmed := strings.TrimSpace(raw)
	if m := codeFence.FindStringSubmatch(trimmed); m != nil {
		trimmed = m[1]
	}

	if res, ok := parseStrict(trimmed); ok {
		return normalize(res, req)
	}
	if res, ok := parseScrape(trimmed); ok {
		return normalize(res, req)
	}
	return normalize(synthesizeShell(trimmed, req), req)
}

// parseStrict attempts a direct unmarshal of the expected payload.
func parseStrict(raw string) (*Result, bool) {
	var p remotePayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, false
	}
	if strings.TrimSpace(p.Content) == "" {
		return nil, false
	}
	return &Result{
		Body:             p.Content,
		Summary:          p.MetaDescription,
		MediaSuggestions: p.ImageSuggestions,
		QualityScore:     p.QualityScore,
	}, true
}

// parseScrape is the best-effort stage: pull known fields out of
// semi-structured text with gjson (tolerates JSON buried in prose or with
// trailing junk) and regex line scraping.
func parseScrape(raw string) (*Result, bool) {
	body := gjson.Get(raw, "content").String()
	summary := gjson.Get(raw, "meta_description").String()
	score := int(gjson.Get(raw, "quality_score").Int())

	var media []string
	gjson.Get(raw, "image_suggestions").ForEach(func(_, v gjson.Result) bool {
		media = append(media, v.String())
		return true
	})

	if summary == "" {
		if m := metaDescLine.FindStringSubmatch(raw); m != nil {
			summary = strings.TrimSpace(m[1])
		}
	}
	if len(media) == 0 {
		for _, m := range imageLine.FindAllStringSubmatch(raw, maxMediaSuggestions) {
			media = append(media, strings.TrimSpace(m[1]))
		}
	}

	if strings.TrimSpace(body) == "" {
		return nil, false
	}
	return &Result{
		Body:             body,
		Summary:          summary,
		MediaSuggestions: media,
		QualityScore:     score,
	}, true
}

// synthesizeShell wraps raw model text in a minimal HTML shell when no
// structure could be recovered at all.
func synthesizeShell(raw string, req Request) *Result {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>\n", req.Title)
	for _, para := range strings.Split(raw, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		fmt.Fprintf(&b, "<p>%s</p>\n", para)
	}
	if strings.TrimSpace(raw) == "" {
		fmt.Fprintf(&b, "<p>Seasonal inspiration for the %s garden.</p>\n", req.Season)
	}
	return &Result{
		Body:         b.String(),
		QualityScore: 85,
	}
}

// normalize enforces the output contract on any stage's result:
// non-empty body, summary capped at 160 characters, 1-5 media suggestions,
// and a sane quality score.
func normalize(res *Result, req Request) *Result {
	if strings.TrimSpace(res.Body) == "" {
		res.Body = fmt.Sprintf("<h2>%s</h2>\n<p>Seasonal %s ideas from the garden center.</p>", req.Title, req.Season)
	}
	if res.Summary == "" {
		res.Summary = fmt.Sprintf("%s — %s gardening ideas and inspiration.", req.Title, req.Season)
	}
	res.Summary = Truncate(res.Summary, maxSummaryLen)

	if len(res.MediaSuggestions) == 0 {
		res.MediaSuggestions = defaultMediaSuggestions(req)
	}
	if len(res.MediaSuggestions) > maxMediaSuggestions {
		res.MediaSuggestions = res.MediaSuggestions[:maxMediaSuggestions]
	}

	if res.QualityScore <= 0 || res.QualityScore > 100 {
		res.QualityScore = 90
	}
	return res
}

// defaultMediaSuggestions gives the remote path a usable imagery list when
// the model supplied none.
func defaultMediaSuggestions(req Request) []string {
	return []string{
		fmt.Sprintf("Hero shot of a %s garden in full %s color", req.Season, req.Season),
		fmt.Sprintf("Close-up of hands working with %s plants", req.Season),
		"Wide shot of the garden center's seasonal display",
	}
}

// Truncate shortens s to at most n runes, never splitting a rune.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
