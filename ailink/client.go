package ailink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"github.com/lwch/logging"

	"github.com/fenci-dev/fenci/config"
)

const tokenizeInstruction = "Split the user's text into tokens for display. " +
	"Return a JSON array of strings only, covering the text in order. " +
	"No explanation, no markdown, no keys - just the array."

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	cfg config.AI
	hc  *http.Client
	url string
	key string
}

// NewClient builds a client from the AI configuration. It returns nil when
// no API key is resolvable, which callers treat as "AI not configured".
func NewClient(cfg config.AI) *Client {
	key := cfg.APIKey
	if key == "" && cfg.APIKeyEnv != "" {
		key = os.Getenv(cfg.APIKeyEnv)
	}
	if key == "" {
		return nil
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: timeout},
		url: strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
		key: key,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Tokenize sends text upstream and parses the reply as a token array. The
// outgoing text is capped at the configured prompt token limit.
func (c *Client) Tokenize(ctx context.Context, text string) ([]string, error) {
	text = TruncateToTokens(text, c.cfg.PromptTokens)
	logging.Info("ai prompt: %d tokens, model %s", CountTokens(text), c.cfg.Model)

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: tokenizeInstruction},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upstream %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, err
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("upstream: empty choices")
	}
	return parseTokenArray(cr.Choices[0].Message.Content)
}

// parseTokenArray parses the model reply as a JSON string array, repairing
// almost-JSON (code fences, trailing commas, single quotes) first.
func parseTokenArray(content string) ([]string, error) {
	content = strings.TrimSpace(content)
	var tokens []string
	if err := json.Unmarshal([]byte(content), &tokens); err == nil {
		return tokens, nil
	}
	repaired, err := jsonrepair.JSONRepair(content)
	if err != nil {
		return nil, fmt.Errorf("repair reply: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &tokens); err != nil {
		return nil, fmt.Errorf("parse reply: %w", err)
	}
	return tokens, nil
}

// Segment runs the full AI mode: link extraction, the upstream call on the
// residual text, and the ordered merge of links and returned tokens. Any
// failure, including a nil client, falls back to the local fallback on the
// original text.
func Segment(ctx context.Context, c *Client, text string, fallback func(string) []string) []string {
	if c == nil {
		return fallback(text)
	}
	links, residual := ExtractLinks(text)

	tokens, err := c.Tokenize(ctx, residual)
	if err != nil {
		logging.Error("ai tokenize failed, falling back: %v", err)
		return fallback(text)
	}

	result := make([]string, 0, len(links)+len(tokens))
	for _, link := range links {
		result = append(result, link.URL)
	}
	for _, tok := range tokens {
		if tok == "" || IsPlaceholder(tok) {
			continue
		}
		result = append(result, tok)
	}
	if len(result) == 0 {
		return fallback(text)
	}
	return result
}
