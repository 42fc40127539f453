package config

import "os"

// Config is read once at startup and injected into the modules that need it.
type Config struct {
	Port        string
	DatabaseURL string

	// OpenAIAPIKey may be empty: the chat endpoint reports that per request
	// instead of taking the whole service down.
	OpenAIAPIKey string

	// OpenAIModel overrides the per-provider default model when set.
	OpenAIModel string
}

func Load() Config {
	cfg := Config{
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}
