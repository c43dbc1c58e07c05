package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when GEMINI_MODEL is not set.
const DefaultModel = "gemini-2.5-flash"

// Client calls the Gemini API to generate website markup.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a generation client bound to one model.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Generate combines the fixed system instruction with the caller's prompt,
// issues one GenerateContent call and strips markdown fences from the result.
// The caller is expected to have rejected empty prompts already.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	full := fmt.Sprintf("%s\n\nUser request: %s", websitePrompt, prompt)

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(full), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	code := StripFences(result.Text())
	if code == "" {
		return "", fmt.Errorf("gemini returned empty content")
	}
	return code, nil
}
