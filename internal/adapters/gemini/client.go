// Package gemini implements ports.ChatModel over the Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/resumeai/platform/internal/core/domain"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-pro-exp-03-25"

// Client generates assistant replies against a Gemini model.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates the Gemini client. An empty model selects DefaultModel.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: c, model: model}, nil
}

// Generate sends the conversation history with the resume-assistant system
// instruction and returns the model's reply.
func (c *Client) Generate(ctx context.Context, history []domain.Turn) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, convertHistory(history), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", domain.ErrEmptyResponse
	}
	return text, nil
}

// convertHistory maps conversation turns to API content. Gemini only knows
// the user and model roles, so anything unexpected is sent as user.
func convertHistory(history []domain.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	return contents
}
