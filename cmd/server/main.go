package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/moodmate/moodmate-backend/internal/clients"
	"github.com/moodmate/moodmate-backend/internal/config"
	"github.com/moodmate/moodmate-backend/internal/database"
	"github.com/moodmate/moodmate-backend/internal/handlers"
	"github.com/moodmate/moodmate-backend/internal/middleware"
	"github.com/moodmate/moodmate-backend/internal/routes"
	"github.com/moodmate/moodmate-backend/internal/services"
	"github.com/moodmate/moodmate-backend/internal/store"
)

const giphyBaseURL = "https://api.giphy.com"

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if cfg.GiphyAPIKey == "" {
		log.Println("⚠️  WARNING: GIPHY_API_KEY not set. The GIF endpoint will return provider errors.")
	}

	// Connect to PostgreSQL (user accounts)
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis (sessions, rate limiting)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Connect to MongoDB (mood entries)
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// The unique (user_id, date) index is what enforces one entry per
	// user per day under concurrent writers, so it must exist up front.
	moodStore := store.NewMongoMoodStore(database.DB)
	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := moodStore.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to ensure MongoDB mood indexes:", err)
	}
	log.Println("✅ MongoDB mood indexes ensured")

	// Wire services and handlers
	moodService := services.NewMoodService(moodStore)
	recommender := services.NewRecommender(
		clients.NewQuotableClient(cfg.QuoteAPIURL),
		clients.NewGiphyClient(giphyBaseURL, cfg.GiphyAPIKey),
	)
	moodHandler := handlers.NewMoodHandler(moodService)
	contentHandler := handlers.NewContentHandler(recommender)
	requireAuth := middleware.RequireAuth(services.ValidateSession)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Production: SecurityHeaders → HostCheck → GlobalRateLimit → LoginRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost) {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP + login rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, requireAuth, moodHandler, contentHandler)

	log.Println("📋 Registered routes:")
	log.Println("  GET    /health")
	log.Println("  POST   /auth/signup")
	log.Println("  POST   /auth/signin")
	log.Println("  GET    /auth/me")
	log.Println("  POST   /moods")
	log.Println("  GET    /moods")
	log.Println("  GET    /moods/range")
	log.Println("  GET    /moods/{id}")
	log.Println("  DELETE /moods/{id}")
	log.Println("  GET    /moods/quote/{moodRating}")
	log.Println("  GET    /moods/gif/{moodRating}")

	log.Printf("🚀 MoodMate backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
