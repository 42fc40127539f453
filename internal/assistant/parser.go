package assistant

import (
	"encoding/json"
	"log"
)

const fallbackApology = "Sorry, I couldn't parse that."

type wireResponse struct {
	Reply  string         `json:"reply"`
	Intent *BookingIntent `json:"intent"`
}

// decodeResponse turns the raw model text into a ChatResponse. It never
// fails: non-JSON output becomes a plain reply with a none intent, a missing
// reply defaults to "", a missing intent defaults to {action: none}. The
// invariant that action is one of the two known values holds on every path.
func decodeResponse(raw string) ChatResponse {
	var parsed wireResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("[chat] model output is not JSON: %v", err)
		reply := raw
		if reply == "" {
			reply = fallbackApology
		}
		return ChatResponse{
			Reply:  reply,
			Intent: BookingIntent{Action: ActionNone},
		}
	}

	out := ChatResponse{Reply: parsed.Reply}
	if parsed.Intent != nil {
		out.Intent = *parsed.Intent
	}
	if out.Intent.Action != ActionProposeBooking {
		// covers absent intent, absent action, and anything made up
		out.Intent.Action = ActionNone
	}
	return out
}
