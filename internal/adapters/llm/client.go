// Package llm talks to an OpenAI-compatible chat completion API.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/ports/clients"
	"github.com/go-resty/resty/v2"
)

const completionsPath = "/chat/completions"

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type completionAnswer struct {
	Model   string `json:"model"`
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type chatClient struct {
	client *resty.Client
	model  string
}

// NewClient returns a ChatClient for the API rooted at baseURL, e.g. "https://api.openai.com/v1".
func NewClient(baseURL, apiKey, model string, timeout time.Duration) clients.ChatClient {
	return &chatClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(apiKey).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		model: model,
	}
}

func (c *chatClient) Complete(ctx context.Context, messages []clients.ChatMessage) (*clients.ChatCompletion, error) {
	body := completionRequest{Model: c.model, Messages: make([]message, len(messages))}
	for i, m := range messages {
		body.Messages[i] = message{Role: m.Role, Content: m.Content}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(completionsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: chat request: %v", apperrors.ErrUpstream, err)
	}

	var answer completionAnswer
	decodeErr := json.Unmarshal(resp.Body(), &answer)

	if resp.StatusCode() != http.StatusOK {
		if decodeErr == nil && answer.Error != nil && answer.Error.Message != "" {
			return nil, fmt.Errorf("%w: chat request status %d: %s", apperrors.ErrUpstream, resp.StatusCode(), answer.Error.Message)
		}
		return nil, fmt.Errorf("%w: chat request status %d", apperrors.ErrUpstream, resp.StatusCode())
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decoding chat answer: %v", apperrors.ErrUpstream, decodeErr)
	}
	if len(answer.Choices) == 0 {
		return nil, fmt.Errorf("%w: chat answer has no choices", apperrors.ErrUpstream)
	}

	model := answer.Model
	if model == "" {
		model = c.model
	}
	return &clients.ChatCompletion{Content: answer.Choices[0].Message.Content, Model: model}, nil
}
