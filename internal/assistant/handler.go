package assistant

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/autocare-labs/booking-assistant/internal/ai"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleChat — the booking-assistant turn endpoint.
// Contract: {"messages": [...]} in, ChatResponse out. Model misbehavior is
// absorbed into a normal reply; only config, payload and provider failures
// become error statuses.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	// Config check comes first, before the body is even read.
	if err := h.svc.Ready(); err != nil {
		writeError(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}

	var payload struct {
		Messages []ChatMessage `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Messages == nil {
		writeError(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid payload: messages[] required",
		})
		return
	}

	resp, err := h.svc.Chat(r.Context(), payload.Messages)
	if err != nil {
		var gatewayErr *ai.GatewayError
		if errors.As(err, &gatewayErr) {
			writeError(w, http.StatusInternalServerError, map[string]string{
				"error":  "OpenAI API error",
				"detail": gatewayErr.Body,
			})
			return
		}
		log.Println("[chat] internal error:", err)
		writeError(w, http.StatusInternalServerError, map[string]string{
			"error": "Internal error",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
