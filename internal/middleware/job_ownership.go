package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard/internal/repository"
)

// JobOwnership resolves the posting named by {id} and lets the request
// through only when the authenticated caller owns it. Absent posting is
// 404, someone else's posting is 403. The resolved posting is stored on
// the context so the handler works on the same document without another
// fetch.
//
// Must run after Authenticator and RequireObjectID.
func JobOwnership(jobs repository.JobRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, "Invalid job id.")
				return
			}

			job, err := jobs.GetByID(r.Context(), id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					writeJSONError(w, http.StatusNotFound, "Job not found.")
					return
				}
				log.Println("Error resolving job for ownership check:", err)
				writeJSONError(w, http.StatusInternalServerError, "Internal Server Error.")
				return
			}

			user, ok := UserFromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			// Canonical string comparison: the same id must compare equal
			// whatever form each side was decoded from.
			if job.UserID.Hex() != user.ID.Hex() {
				writeJSONError(w, http.StatusForbidden, "You are not authorized to perform this action.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithJob(r.Context(), job)))
		})
	}
}
