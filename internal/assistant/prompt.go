package assistant

import "github.com/autocare-labs/booking-assistant/internal/ai"

const SystemPrompt = `You are a helpful automotive service booking assistant.
- Understand user requests like service type (e.g., "Tire Rotation & Balance"), vehicle details, preferred date/time, and location.
- Always be concise and friendly.
- Do not assume you can directly book; you must propose a booking first.
- Output MUST be a JSON object with two fields: "reply" (natural language for the user) and "intent".
- If you have enough details to propose a booking, set intent.action to "propose_booking" and include fields: service_name, vehicle_make, vehicle_model, vehicle_year, preferred_date (YYYY-MM-DD), preferred_time (e.g., 09:00 AM), and location (like "Downtown Service Center", "North Branch", "South Branch", or "Mobile Service").
- If not ready, set intent.action to "none" and ask only one or two clarifying questions.
- Never include any fields other than reply and intent at top-level.
- Dates must be future dates. If user says "next Saturday", resolve to the upcoming Saturday date in YYYY-MM-DD.
`

// Forced-output guard, sent as the final user turn so it is the last thing
// the model sees before answering.
const outputDirective = `Respond ONLY as strict JSON with keys 'reply' and 'intent'.`

// buildPrompt assembles the full message sequence: system instruction first,
// the transcript unchanged and in order, the JSON directive last.
func buildPrompt(messages []ChatMessage) []ai.Message {
	prompt := make([]ai.Message, 0, len(messages)+2)

	prompt = append(prompt, ai.Message{Role: "system", Text: SystemPrompt})
	for _, m := range messages {
		prompt = append(prompt, ai.Message{Role: m.Role, Text: m.Content})
	}
	prompt = append(prompt, ai.Message{Role: "user", Text: outputDirective})

	return prompt
}
