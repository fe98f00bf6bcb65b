package routes

import (
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"jobboard/internal/config"
	"jobboard/internal/handlers"
	"jobboard/internal/middleware"
	"jobboard/internal/repository"
	"jobboard/internal/services"
)

func RegisterAuthRoutes(router chi.Router, db *mongo.Database, cfg *config.Config) {
	users := repository.NewUserRepository(db)
	mailer := services.NewSMTPSender(cfg)
	authHandler := handlers.NewAuthHandler(users, mailer, cfg)

	// Credential endpoints share a strict per-IP limit.
	limited := middleware.RateLimit(5, 5)

	router.Route("/user", func(r chi.Router) {
		r.With(limited).Post("/register", authHandler.Register)
		r.With(limited).Post("/login", authHandler.Login)
		r.With(limited).Post("/forget", authHandler.ForgotPassword)
		r.With(limited).Post("/reset/password", authHandler.ResetPassword)
	})
}
