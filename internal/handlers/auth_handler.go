package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/services"
)

type AuthHandler struct {
	users  repository.UserRepository
	mailer services.EmailSender
	cfg    *config.Config
	v      *validator.Validate
}

func NewAuthHandler(users repository.UserRepository, mailer services.EmailSender, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		users:  users,
		mailer: mailer,
		cfg:    cfg,
		v:      validator.New(),
	}
}

// @Tags Auth
// @Summary Register a new account
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "Account details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if _, err := h.users.GetByEmail(r.Context(), req.Email); err == nil {
		writeJSONError(w, http.StatusConflict, "duplicate_email", "User with this email already exists.")
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Println("Error checking existing user:", err)
		writeJSONError(w, http.StatusInternalServerError, "register_failed", "Internal Server Error.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "register_failed", "Internal Server Error.")
		return
	}

	u := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Role:         models.Role(req.Role),
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.users.Create(r.Context(), u); err != nil {
		// The unique index is the backstop against concurrent registration
		// with the same email.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeJSONError(w, http.StatusConflict, "duplicate_email", "User with this email already exists.")
			return
		}
		log.Println("Error creating user:", err)
		writeJSONError(w, http.StatusInternalServerError, "register_failed", "Internal Server Error.")
		return
	}

	writeJSONMessage(w, http.StatusCreated, "User is registered successfully.")
}

// @Tags Auth
// @Summary Log in and obtain a bearer token
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	// Unknown email and wrong password produce the same response.
	u, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials.")
			return
		}
		log.Println("Error fetching user for login:", err)
		writeJSONError(w, http.StatusInternalServerError, "login_failed", "Internal Server Error.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		writeJSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials.")
		return
	}

	ttl := time.Duration(h.cfg.JWTExpiresInSeconds) * time.Second
	token, err := auth.IssueToken(u.Email, h.cfg.JWTSecret, ttl)
	if err != nil {
		log.Println("Error issuing token:", err)
		writeJSONError(w, http.StatusInternalServerError, "login_failed", "Internal Server Error.")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Message: "Login successful.",
		Token:   token,
		User:    u,
	})
}

// @Tags Auth
// @Summary Request a password-reset email
// @Accept json
// @Produce json
// @Param body body models.ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/user/forget [post]
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	u, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "user_not_found", "User not found.")
			return
		}
		log.Println("Error fetching user for password reset:", err)
		writeJSONError(w, http.StatusInternalServerError, "forgot_failed", "Internal server error.")
		return
	}

	token, err := auth.NewResetCredential()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "forgot_failed", "Internal server error.")
		return
	}

	expires := time.Now().UTC().Add(h.cfg.ResetTokenTTL)
	if err := h.users.SetResetCredential(r.Context(), u.ID, token, expires); err != nil {
		log.Println("Error storing reset credential:", err)
		writeJSONError(w, http.StatusInternalServerError, "forgot_failed", "Internal server error.")
		return
	}

	resetLink := h.cfg.ResetLinkBaseURL + "/" + token
	subject := "Password Reset Request"
	body := "You are receiving this because you (or someone else) have requested the reset of the password for your account.\n\n" +
		"Please open the link below to reset your password:\n\n" + resetLink + "\n\n" +
		"The link expires in " + h.cfg.ResetTokenTTL.String() + "."
	if err := h.mailer.Send(u.Email, subject, body); err != nil {
		// Transport detail stays in the log; the caller sees a generic 500.
		log.Println("Error sending reset email:", err)
		writeJSONError(w, http.StatusInternalServerError, "forgot_failed", "Internal server error.")
		return
	}

	resp := map[string]any{"message": "Reset link sent to your email."}
	if h.cfg.AuthReturnResetToken {
		resp["token"] = token
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Tags Auth
// @Summary Reset the password with a reset token
// @Accept json
// @Produce json
// @Param body body models.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/user/reset/password [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "reset_failed", "Internal server error.")
		return
	}

	// One storage round trip: match the live credential, set the new hash
	// and clear the credential. Expired or reused tokens match nothing.
	if _, err := h.users.ConsumeResetCredential(r.Context(), req.Token, string(hash), time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSONError(w, http.StatusBadRequest, "invalid_token", "Invalid or expired token.")
			return
		}
		log.Println("Error consuming reset credential:", err)
		writeJSONError(w, http.StatusInternalServerError, "reset_failed", "Internal server error.")
		return
	}

	writeJSONMessage(w, http.StatusOK, "Password reset successfully.")
}
