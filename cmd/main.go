package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/autocare-labs/booking-assistant/internal/ai"
	"github.com/autocare-labs/booking-assistant/internal/assistant"
	"github.com/autocare-labs/booking-assistant/internal/booking"
	"github.com/autocare-labs/booking-assistant/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// --- DB ---
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Client-Info", "Apikey"},
	}))

	// --- Assistant module wiring ---
	// A missing key is not fatal: the chat endpoint reports it per request.
	var readyErr error
	if cfg.OpenAIAPIKey == "" {
		readyErr = ai.ErrMissingAPIKey
		log.Println("[ai] OPENAI_API_KEY is not set; chat endpoint will refuse requests")
	}
	aiClient := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	chatService := assistant.NewService(aiClient, readyErr)
	chatHandler := assistant.NewHandler(chatService)
	assistant.RegisterRoutes(r, chatHandler)

	// --- Booking module wiring ---
	bookingRepo := booking.NewRepo(db)
	bookingHandler := booking.NewHandler(bookingRepo)
	booking.RegisterRoutes(r, bookingHandler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
