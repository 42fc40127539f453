package ai

import (
	"context"
	"errors"
	"log"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Temperature is pinned low: the model is asked for strict JSON and we want
// it as deterministic as the API allows.
const completionTemperature = 0.2

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// headerTransport injects the extra identifying headers OpenRouter expects.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	rt := t.base
	if rt == nil {
		rt = http.DefaultTransport
	}
	return rt.RoundTrip(req)
}

// NewOpenAIClient builds a client for whichever backend the key belongs to.
// An empty key is tolerated here; Complete reports it per call.
func NewOpenAIClient(apiKey, modelOverride string) *OpenAIClient {
	if apiKey == "" {
		return &OpenAIClient{}
	}

	provider := ClassifyKey(apiKey)
	profile := provider.Profile()

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = profile.BaseURL
	if len(profile.ExtraHeaders) > 0 {
		cfg.HTTPClient = &http.Client{
			Transport: &headerTransport{headers: profile.ExtraHeaders},
		}
	}

	model := profile.Model
	if modelOverride != "" {
		model = modelOverride
	}

	log.Printf("[ai] provider=%s model=%s", provider, model)

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIClient) Complete(
	ctx context.Context,
	history []Message,
) (string, error) {

	if c.client == nil {
		return "", ErrMissingAPIKey
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: completionTemperature,
	})
	if err != nil {
		log.Println("[ai] provider error:", err)

		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &GatewayError{Status: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", &GatewayError{Status: reqErr.HTTPStatusCode, Body: reqErr.Error()}
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		log.Println("[ai] empty choices")
		return "", nil
	}

	raw := resp.Choices[0].Message.Content

	log.Println("[ai] RAW MODEL RESPONSE >>>")
	log.Println(raw)
	log.Println("<<< END MODEL RESPONSE")

	return raw, nil
}
