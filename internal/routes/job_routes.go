package routes

import (
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"jobboard/internal/config"
	"jobboard/internal/handlers"
	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/repository"
)

func RegisterJobRoutes(router chi.Router, db *mongo.Database, cfg *config.Config) {
	users := repository.NewUserRepository(db)
	jobs := repository.NewJobRepository(db)
	jobHandler := handlers.NewJobHandler(jobs)

	anyUser := middleware.Authenticator(users, cfg.JWTSecret, middleware.RoleAny)
	seeker := middleware.Authenticator(users, cfg.JWTSecret, models.RoleSeeker)
	recruiter := middleware.Authenticator(users, cfg.JWTSecret, models.RoleRecruiter)
	owned := middleware.JobOwnership(jobs)

	router.With(recruiter).Post("/register/job", jobHandler.CreateJob)
	router.With(anyUser, middleware.RequireObjectID).Get("/job/details/{id}", jobHandler.GetJob)

	// Gate order on mutations: role first, then id syntax, then ownership.
	// Wrong-role callers and malformed ids never trigger a job lookup.
	router.With(recruiter, middleware.RequireObjectID, owned).Put("/job/edit/{id}", jobHandler.UpdateJob)
	router.With(recruiter, middleware.RequireObjectID, owned).Delete("/job/delete/{id}", jobHandler.DeleteJob)

	router.With(seeker).Post("/job/seeker/list", jobHandler.SeekerList)
	router.With(recruiter).Post("/job/recruiter/list", jobHandler.RecruiterList)
}
