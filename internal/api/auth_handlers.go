package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"chefbook/internal/auth"
	"chefbook/internal/database"
	"chefbook/internal/models"

	"github.com/google/uuid"
)

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.allowAuthAttempt(w, r) {
		return
	}

	var body registerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	if body.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if len(body.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(body.Password, s.cfg.Auth.BcryptCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to register")
		return
	}

	profile := &models.Profile{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(body.FirstName),
		LastName:     strings.TrimSpace(body.LastName),
		Email:        body.Email,
		Phone:        strings.TrimSpace(body.Phone),
		Role:         models.RoleUser,
		PasswordHash: hash,
	}
	if err := s.db.CreateProfile(r.Context(), profile); err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		s.logger.Error().Err(err).Msg("register: create profile")
		writeError(w, http.StatusInternalServerError, "failed to register")
		return
	}

	token, err := s.issueSession(r, profile)
	if err != nil {
		s.logger.Error().Err(err).Msg("register: issue session")
		writeError(w, http.StatusInternalServerError, "failed to register")
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: token, Profile: profile})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.allowAuthAttempt(w, r) {
		return
	}

	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	email := strings.TrimSpace(strings.ToLower(body.Email))
	profile, err := s.db.GetProfileByEmail(r.Context(), email)
	if err != nil {
		// Не раскрываем, существует ли адрес
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !auth.VerifyPassword(profile.PasswordHash, body.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.issueSession(r, profile)
	if err != nil {
		s.logger.Error().Err(err).Msg("login: issue session")
		writeError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, Profile: profile})
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	claims, _ := claimsFromContext(r.Context())
	if err := s.sessions.ClearSession(r.Context(), claims.TokenID); err != nil {
		s.logger.Error().Err(err).Msg("logout: clear session")
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// issueSession signs a token and caches the session under its token id.
func (s *HTTPServer) issueSession(r *http.Request, profile *models.Profile) (string, error) {
	token, claims, err := auth.NewAccessToken(s.cfg.Auth.JWTSecret, profile.ID, profile.Role, s.cfg.Auth.AccessTTLMin)
	if err != nil {
		return "", err
	}

	session := &models.Session{
		Token:     claims.TokenID,
		UserID:    profile.ID,
		Role:      profile.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(r.Context(), session); err != nil {
		return "", err
	}
	return token, nil
}

// allowAuthAttempt throttles register/login per client through the session
// repository, so the limit survives across instances when redis is up.
func (s *HTTPServer) allowAuthAttempt(w http.ResponseWriter, r *http.Request) bool {
	allowed, err := s.sessions.CheckRateLimit(r.Context(), "auth:"+clientKey(r),
		models.RateLimitRequests, models.RateLimitWindow*time.Second)
	if err != nil {
		s.logger.Error().Err(err).Msg("auth rate limit check failed")
		return true
	}
	if !allowed {
		writeError(w, http.StatusTooManyRequests, "too many attempts, try again later")
		return false
	}
	return true
}
