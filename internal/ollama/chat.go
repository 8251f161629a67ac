package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the request body for /api/chat.
type ChatRequest struct {
	Model    string          `json:"model"`
	Messages []Message       `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   json.RawMessage `json:"format,omitempty"` // "json" or a JSON schema
	Options  *Options        `json:"options,omitempty"`
}

// Options are model-specific options.
type Options struct {
	Temperature float64 `json:"temperature,omitempty"`
}

// ChatResponse is the response from /api/chat.
type ChatResponse struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
	Done    bool    `json:"done"`
}

// Schema is a JSON schema for an object with required string properties.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property describes one schema property.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ChatJSON sends a chat request constrained to schema and returns the raw
// JSON content of the reply. A nil schema requests plain JSON mode.
func (c *Client) ChatJSON(ctx context.Context, model string, messages []Message, schema *Schema, opts *Options) (json.RawMessage, error) {
	format := json.RawMessage(`"json"`)
	if schema != nil {
		encoded, err := json.Marshal(schema)
		if err != nil {
			return nil, fmt.Errorf("marshal schema: %w", err)
		}
		format = encoded
	}

	result, err := c.chat(ctx, ChatRequest{
		Model:    model,
		Messages: messages,
		Format:   format,
		Options:  opts,
	})
	if err != nil {
		return nil, err
	}

	return json.RawMessage(result.Message.Content), nil
}

func (c *Client) chat(ctx context.Context, reqBody ChatRequest) (*ChatResponse, error) {
	reqBody.Stream = false

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("chat request: status %d: %s", resp.StatusCode, string(respBody))
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &result, nil
}
