package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"jobboard/internal/models"
)

type ctxKey string

const (
	ctxUser ctxKey = "user"
	ctxJob  ctxKey = "job"
)

// WithUser stores the resolved account on the context. Exported for
// handler tests that bypass the auth middleware.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxUser, u)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ctxUser).(*models.User)
	return u, ok
}

// WithJob stores the ownership-checked posting so the handler does not
// fetch it again.
func WithJob(ctx context.Context, j *models.Job) context.Context {
	return context.WithValue(ctx, ctxJob, j)
}

func JobFromContext(ctx context.Context) (*models.Job, bool) {
	j, ok := ctx.Value(ctxJob).(*models.Job)
	return j, ok
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"message": message})
}
