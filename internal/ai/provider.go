package ai

import "strings"

// Provider — closed set of compatible chat-completions backends.
type Provider int

const (
	ProviderOpenAI Provider = iota
	ProviderOpenRouter
)

func (p Provider) String() string {
	if p == ProviderOpenRouter {
		return "openrouter"
	}
	return "openai"
}

// ProviderProfile is everything the client needs to talk to one backend.
type ProviderProfile struct {
	BaseURL      string
	Model        string
	ExtraHeaders map[string]string
}

// ClassifyKey picks the backend from the key shape alone. OpenRouter keys
// start with "sk-or-"; everything else goes to OpenAI.
func ClassifyKey(apiKey string) Provider {
	if strings.HasPrefix(apiKey, "sk-or-") {
		return ProviderOpenRouter
	}
	return ProviderOpenAI
}

func (p Provider) Profile() ProviderProfile {
	switch p {
	case ProviderOpenRouter:
		return ProviderProfile{
			BaseURL: "https://openrouter.ai/api/v1",
			Model:   "openai/gpt-4o-mini",
			ExtraHeaders: map[string]string{
				"HTTP-Referer": "https://autocare.example.com",
				"X-Title":      "Booking Assistant",
			},
		}
	default:
		return ProviderProfile{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4o-mini",
		}
	}
}
