package main

import (
	"context"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/Sumanraj-P/quizgenie-api/internal/config"
	"github.com/Sumanraj-P/quizgenie-api/internal/database"
	"github.com/Sumanraj-P/quizgenie-api/internal/generator"
	"github.com/Sumanraj-P/quizgenie-api/internal/logger"
	"github.com/Sumanraj-P/quizgenie-api/internal/middleware"
	"github.com/Sumanraj-P/quizgenie-api/internal/quizzes"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		// Logger mode comes from config; fall back to development output.
		boot, _ := logger.New("development")
		boot.Fatal("Failed to load config", "error", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Initialize generator
	llm, model, err := generator.NewLLMClient(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to create LLM client", "provider", cfg.LLMProvider, "error", err)
	}
	if c, ok := llm.(io.Closer); ok {
		defer c.Close()
	}
	gen := generator.NewGenerator(llm, model, log)

	// Initialize quiz store
	var source quizzes.QuizSource
	switch cfg.StoreBackend {
	case config.StoreFirestore:
		client, err := quizzes.NewFirestoreClient(ctx, cfg.FirebaseCredentials, cfg.FirebaseProjectID)
		if err != nil {
			log.Fatal("Failed to connect to Firestore", "credentials", cfg.FirebaseCredentials, "error", err)
		}
		defer client.Close()
		source = quizzes.NewFirestoreStore(client)
	case config.StorePostgres:
		db, err := database.Connect(database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database", "error", err)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to run migrations", "error", err)
		}
		source = quizzes.NewPostgresStore(db)
	}
	log.Info("Quiz store ready", "backend", cfg.StoreBackend)

	// Initialize handlers
	service := quizzes.NewService(gen, source, log)
	handler := quizzes.NewHandler(service, log)

	// Setup router
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	logged := middleware.RequestID(middleware.RequestLogger(log)(r))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	log.Info("Server starting", "port", cfg.Port, "env", cfg.AppEnv, "model", gen.ModelName())
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(logged)); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
