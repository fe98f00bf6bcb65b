package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"jobboard/internal/auth"
	"jobboard/internal/models"
	"jobboard/internal/repository"
)

// RoleAny accepts any authenticated account; only token verification and
// the account lookup must succeed.
const RoleAny models.Role = ""

// A missing account and a wrong role produce the same response on purpose:
// callers must not learn which of the two failed.
const msgUnauthorized = "Unauthorized - User not found or not permitted."

// Authenticator verifies the bearer token, resolves the account behind the
// token's email claim and checks the required role, in that order. No
// account lookup happens for tokens that fail verification.
func Authenticator(users repository.UserRepository, secret string, role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized - Invalid or missing token format.")
				return
			}

			email, err := auth.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized - Invalid token.")
				return
			}

			user, err := users.GetByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					writeJSONError(w, http.StatusUnauthorized, msgUnauthorized)
					return
				}
				log.Println("Error resolving token identity:", err)
				writeJSONError(w, http.StatusInternalServerError, "Internal Server Error.")
				return
			}

			if role != RoleAny && user.Role != role {
				writeJSONError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
