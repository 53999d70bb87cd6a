// Package clients declares the outbound dependencies the core calls over the network.
package clients

import (
	"context"

	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// RateSource produces complete rate tables expressed in a given base currency.
type RateSource interface {
	FetchRates(ctx context.Context, base domain.Currency) (*domain.RateTable, error)
}

// ChatMessage is one turn sent to a chat completion API.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatCompletion is the assistant's answer and the model that produced it.
type ChatCompletion struct {
	Content string
	Model   string
}

// ChatClient sends a conversation to a chat completion API.
type ChatClient interface {
	Complete(ctx context.Context, messages []ChatMessage) (*ChatCompletion, error)
}
