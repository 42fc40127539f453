package ai

import (
	"context"
	"errors"
	"fmt"
)

// ChatModel — the external intelligence; knows nothing about bookings or HTTP
type ChatModel interface {
	Complete(ctx context.Context, history []Message) (string, error)
}

// Message — provider-neutral dialog format
type Message struct {
	Role string // "user" | "assistant" | "system"
	Text string
}

// ErrMissingAPIKey: process started without a key. The chat handler reports
// it per request, before reading the body.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// GatewayError — non-success status from the provider, body kept for
// diagnostics. No retry happens here; resubmission is the caller's problem.
type GatewayError struct {
	Status int
	Body   string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("model gateway: status=%d body=%s", e.Status, e.Body)
}
