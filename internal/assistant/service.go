package assistant

import (
	"context"
	"log"

	"github.com/autocare-labs/booking-assistant/internal/ai"
)

type service struct {
	model ai.ChatModel
	ready error
}

// NewService wires the chat pipeline. readyErr is non-nil when the gateway
// cannot work at all (no API key); it is reported per request rather than
// killing the process.
func NewService(model ai.ChatModel, readyErr error) Service {
	return &service{model: model, ready: readyErr}
}

func (s *service) Ready() error {
	return s.ready
}

// Chat runs one stateless turn: prompt assembly, one model call, strict
// decode with fallback, completeness guard. The only suspension point is the
// model call; nothing here is shared between requests.
func (s *service) Chat(ctx context.Context, messages []ChatMessage) (ChatResponse, error) {
	log.Printf("[chat] turn with %d message(s)", len(messages))

	raw, err := s.model.Complete(ctx, buildPrompt(messages))
	if err != nil {
		return ChatResponse{}, err
	}

	resp := decodeResponse(raw)
	resp = guardProposal(resp)

	log.Printf("[chat] action=%s", resp.Intent.Action)
	return resp, nil
}
