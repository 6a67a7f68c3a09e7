// Package gemini wraps the Google GenAI SDK behind the small surface the
// generation orchestrator needs: one prompt in, raw text out.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Sampling settings for slide generation. Temperature leans
// deterministic without being zero; output is bounded and requested as
// JSON. The response is still stored verbatim, the hints are best-effort.
const (
	temperature     = 0.5
	maxOutputTokens = 1000
	responseMIME    = "application/json"
)

// Client generates slide content through the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed content generator.
// apiKey must be non-empty; model falls back to DefaultModel.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Generate invokes the model exactly once with the user prompt and the
// system instruction passed as a distinct system-level instruction. It
// returns the raw response text without any parsing or validation.
func (c *Client) Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(userPrompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](temperature),
			MaxOutputTokens:   maxOutputTokens,
			ResponseMIMEType:  responseMIME,
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no content")
	}
	return text, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}
