package assistant

import "context"

type Action string

const (
	ActionProposeBooking Action = "propose_booking"
	ActionNone           Action = "none"
)

// ChatMessage — one turn of the conversation. The caller resends the full
// transcript on every request, so the server keeps no per-chat state.
type ChatMessage struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// BookingIntent is the structured extraction result. Action is only
// propose_booking after the completeness guard has approved it.
type BookingIntent struct {
	Action        Action `json:"action"`
	ServiceName   string `json:"service_name,omitempty"`
	VehicleMake   string `json:"vehicle_make,omitempty"`
	VehicleModel  string `json:"vehicle_model,omitempty"`
	VehicleYear   int    `json:"vehicle_year,omitempty"`
	PreferredDate string `json:"preferred_date,omitempty"` // YYYY-MM-DD
	PreferredTime string `json:"preferred_time,omitempty"` // e.g. 09:00 AM
	Location      string `json:"location,omitempty"`       // branch name or "Mobile Service"
}

// ChatResponse always carries both fields: reply defaults to "" and intent
// to {action: none} no matter what the model returned.
type ChatResponse struct {
	Reply  string        `json:"reply"`
	Intent BookingIntent `json:"intent"`
}

// Service — orchestration of a single chat turn
type Service interface {
	// Ready reports whether the model gateway is usable at all.
	Ready() error
	Chat(ctx context.Context, messages []ChatMessage) (ChatResponse, error)
}
