package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career-compass-backend/internal/config"
	"career-compass-backend/internal/database"
	"career-compass-backend/internal/handlers"
	"career-compass-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

func main() {
	cfg := config.Load()

	// Connect to MongoDB. The server still starts without it: store-backed
	// routes answer 500 until the process is restarted.
	db, err := database.Connect(context.Background(), cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Printf("❌ Failed to connect to MongoDB: %v", err)
	}

	var (
		users       handlers.UserStore
		assessments handlers.AssessmentStore
		ping        func(context.Context) error
	)
	if db != nil {
		userRepo := repository.NewUserRepo(db)
		assessmentRepo := repository.NewAssessmentRepo(db)
		ensureIndexes(userRepo, assessmentRepo)

		users = userRepo
		assessments = assessmentRepo
		ping = func(ctx context.Context) error { return database.Ping(ctx, db) }
	}

	router := handlers.NewRouter(
		handlers.NewHealthHandler(ping),
		handlers.NewAuthHandler(users),
		handlers.NewAssessmentHandler(assessments),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Career Compass backend starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server")
	shutdown(server, db)
}

func ensureIndexes(userRepo *repository.UserRepo, assessmentRepo *repository.AssessmentRepo) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}
	if err := assessmentRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create assessment indexes: %v", err)
	}
}

func shutdown(server *http.Server, db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
	}
	if db != nil {
		if err := database.Disconnect(ctx, db); err != nil {
			log.Printf("❌ MongoDB disconnect error: %v", err)
		}
	}
	log.Println("👋 Server stopped")
}
