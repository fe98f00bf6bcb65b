package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// RequireObjectID rejects requests whose {id} path parameter is not a
// well-formed ObjectID hex string. Runs before any middleware or handler
// that would look the id up, so malformed input never reaches storage.
func RequireObjectID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := bson.ObjectIDFromHex(chi.URLParam(r, "id")); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid job id.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
