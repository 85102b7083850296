package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"greenpress/internal/models"
)

// RemoteConfig holds credentials and settings for the remote LLM backend.
type RemoteConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Remote implements Generator against an OpenAI-compatible chat
// completions API (POST /chat/completions).
type Remote struct {
	config RemoteConfig
	client *http.Client
}

// NewRemote creates the remote strategy.
func NewRemote(cfg RemoteConfig) *Remote {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return &Remote{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (r *Remote) Name() string { return "remote" }

// SelfTest verifies connectivity and credentials by listing models. Called
// once at initialization; a failure disables the remote path.
func (r *Remote) SelfTest(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.config.BaseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("remote self-test request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.config.APIKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("remote self-test: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("remote self-test: status %d", resp.StatusCode)
	}
	return nil
}

// Generate sends the assembled prompt to the chat completions endpoint and
// parses the response through the staged parser.
func (r *Remote) Generate(ctx context.Context, req Request) (*Result, error) {
	body := chatRequest{
		Model: r.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(req)},
			{Role: "user", Content: userPrompt(req)},
		},
	}

	raw, err := r.doChat(ctx, body)
	if err != nil {
		return nil, err
	}

	res := parseRemoteResponse(raw, req)
	res.Source = models.SourceRemote
	return res, nil
}

// doChat performs the HTTP call to the chat completions endpoint.
func (r *Remote) doChat(ctx context.Context, body chatRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("remote marshal: %w", err)
	}

	url := r.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("remote request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.config.APIKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("remote http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("remote read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("remote API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("remote unmarshal: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("remote: no choices returned")
	}

	return result.Choices[0].Message.Content, nil
}

// systemPrompt sets the writer persona and the required output shape.
func systemPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("You are an expert marketing copywriter for a garden center. ")
	if req.BrandVoice != "" {
		b.WriteString("Brand voice: " + req.BrandVoice + ". ")
	}
	b.WriteString(`Respond with a single JSON object and nothing else, using the keys:
"content" (the full body, HTML for blog posts, plain text otherwise),
"meta_description" (max 160 characters),
"image_suggestions" (array of short strings describing imagery),
"quality_score" (integer 85-100, your own estimate).`)
	return b.String()
}

// userPrompt assembles the per-item brief.
func userPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s %s titled %q.\n", req.Platform, req.Subtype, req.Title)
	fmt.Fprintf(&b, "Season: %s. Day: %s. Theme: %s.\n", req.Season, req.Day, req.Theme)
	if req.HolidayContext != "" {
		fmt.Fprintf(&b, "Context: %s.\n", req.HolidayContext)
	}
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Work in these keywords naturally: %s.\n", strings.Join(req.Keywords, ", "))
	}
	if len(req.Products) > 0 {
		fmt.Fprintf(&b, "Mention where relevant: %s.\n", strings.Join(req.Products, ", "))
	}
	if req.MinWords > 0 && req.MaxWords > 0 {
		fmt.Fprintf(&b, "Length: %d-%d words.\n", req.MinWords, req.MaxWords)
	}
	return b.String()
}

// --- OpenAI-compatible request/response types ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}
